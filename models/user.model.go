package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username      string `gorm:"unique;not null" json:"username"`
	Password      string `gorm:"not null" json:"-"`
	Email         string `gorm:"default:''" json:"email"`
	Bio           string `gorm:"type:text;default:''" json:"bio"`
	ProfileAvatar string `gorm:"default:''" json:"profileAvatar"`
	Role          string `gorm:"default:'USER'" json:"role"` // USER, ADMIN

	// Balance is held in whole points, never fractional currency.
	Balance int64 `gorm:"not null;default:0" json:"balance"`

	ReferralCode string `gorm:"unique;not null" json:"referralCode"`
	ReferredBy   *uint  `gorm:"default:NULL" json:"referredBy"`

	IsDeleted bool `gorm:"default:false" json:"-"`
}
