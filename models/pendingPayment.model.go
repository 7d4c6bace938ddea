package models

import (
	"gorm.io/gorm"
)

// PaymentStatus defines the status of a pending gateway payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// PendingPayment is created when a top-up is initiated with the payment
// gateway and completed exactly once when the gateway confirms it.
type PendingPayment struct {
	gorm.Model
	UserID         uint          `gorm:"not null;index" json:"userId"`
	Amount         int64         `gorm:"not null" json:"amount"` // points
	Status         PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	GatewayOrderID string        `gorm:"type:varchar(64);index" json:"gatewayOrderId"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
