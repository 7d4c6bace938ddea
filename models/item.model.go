package models

import (
	"gorm.io/gorm"
)

// Item is a marketplace listing. IsSold only ever moves false -> true.
type Item struct {
	gorm.Model
	SellerID    uint   `gorm:"not null;index" json:"sellerId"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;default:''" json:"description"`
	Price       int64  `gorm:"not null" json:"price"` // points
	ImageURL    string `gorm:"default:''" json:"imageUrl"`
	Category    string `gorm:"default:''" json:"category"`
	Rarity      string `gorm:"default:''" json:"rarity"`
	IsSold      bool   `gorm:"default:false;index" json:"isSold"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`

	Seller User `gorm:"foreignKey:SellerID" json:"-"`
}
