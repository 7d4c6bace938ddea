package models

import (
	"gorm.io/gorm"
)

// Referral records a one-time bonus credit for inviting a user. The
// composite unique index makes a duplicate application a constraint
// violation instead of a second credit.
type Referral struct {
	gorm.Model
	ReferrerID  uint  `gorm:"not null;uniqueIndex:idx_referrer_referred" json:"referrerId"`
	ReferredID  uint  `gorm:"not null;uniqueIndex:idx_referrer_referred" json:"referredId"`
	BonusAmount int64 `gorm:"not null" json:"bonusAmount"` // points
}
