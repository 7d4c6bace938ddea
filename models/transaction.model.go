package models

import (
	"gorm.io/gorm"
)

// TransactionType defines the type of ledger transaction
type TransactionType string

const (
	TransactionTypeTopUp    TransactionType = "top_up"
	TransactionTypePurchase TransactionType = "purchase"
)

// Transaction is the append-only audit log reconciling balance changes.
// Rows are immutable once written; there is no soft delete here.
type Transaction struct {
	gorm.Model
	BuyerID  *uint           `gorm:"index" json:"buyerId"`
	SellerID *uint           `gorm:"index" json:"sellerId"`
	ItemID   *uint           `gorm:"index" json:"itemId"`
	Amount   int64           `gorm:"not null" json:"amount"` // points
	Type     TransactionType `gorm:"type:varchar(20);not null" json:"type"`
}
