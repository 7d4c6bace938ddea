package models

import (
	"time"

	"gorm.io/gorm"
)

// WithdrawalStatus defines the status of a withdrawal request
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
)

// Withdrawal is a request to pay out balance to an external account.
// The balance debit commits in the same unit as the pending row, so the
// row doubles as the audit record for the debit. A row leaves pending
// exactly once.
type Withdrawal struct {
	gorm.Model
	UserID         uint             `gorm:"not null;index" json:"userId"`
	Amount         int64            `gorm:"not null" json:"amount"` // points
	Status         WithdrawalStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentMethod  string           `gorm:"type:varchar(50);default:'card'" json:"paymentMethod"`
	PaymentDetails string           `gorm:"type:text;default:''" json:"paymentDetails"`
	ProcessedAt    *time.Time       `json:"processedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
