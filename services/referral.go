package services

import (
	"errors"
	"time"

	"gim/models"

	"gorm.io/gorm"
)

// ReferralService settles the one-time invite bonus. Idempotency rides
// on the unique (referrer_id, referred_id) index: a second application
// surfaces as a duplicate-key error, never a second credit.
type ReferralService struct {
	db    *gorm.DB
	bonus int64
}

func NewReferralService(db *gorm.DB, bonus int64) *ReferralService {
	return &ReferralService{db: db, bonus: bonus}
}

// Apply credits the referrer with the fixed bonus and links the new user
// to them, in one unit. Returns the bonus amount credited.
func (s *ReferralService) Apply(code string, newUserID uint) (int64, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	var referrer models.User
	if err := tx.Where("referral_code = ? AND is_deleted = false", code).First(&referrer).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidReferralCode
		}
		return 0, err
	}
	if referrer.ID == newUserID {
		// Applying your own code is never a bonus.
		tx.Rollback()
		return 0, ErrInvalidReferralCode
	}

	if err := tx.Where("id = ? AND is_deleted = false", newUserID).First(&models.User{}).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}

	referral := models.Referral{
		ReferrerID:  referrer.ID,
		ReferredID:  newUserID,
		BonusAmount: s.bonus,
	}
	if err := tx.Create(&referral).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrReferralAlreadyApplied
		}
		return 0, err
	}

	if err := tx.Model(&models.User{}).
		Where("id = ?", referrer.ID).
		Update("balance", gorm.Expr("balance + ?", s.bonus)).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Model(&models.User{}).
		Where("id = ?", newUserID).
		Update("referred_by", referrer.ID).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	return s.bonus, nil
}

// ReferralEntry is one invited user in the stats view.
type ReferralEntry struct {
	Username    string    `json:"username"`
	BonusAmount int64     `json:"bonusAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ReferralStats summarizes a user's referral program standing.
type ReferralStats struct {
	ReferralCode   string          `json:"referralCode"`
	TotalReferrals int64           `json:"totalReferrals"`
	TotalEarned    int64           `json:"totalEarned"`
	Referrals      []ReferralEntry `json:"referrals"`
}

// Stats returns the user's code, counts and the 10 most recent referrals.
func (s *ReferralService) Stats(userID uint) (*ReferralStats, error) {
	var user models.User
	if err := s.db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	stats := &ReferralStats{ReferralCode: user.ReferralCode}

	if err := s.db.Model(&models.Referral{}).
		Where("referrer_id = ?", userID).
		Count(&stats.TotalReferrals).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Referral{}).
		Where("referrer_id = ?", userID).
		Select("COALESCE(SUM(bonus_amount), 0)").
		Scan(&stats.TotalEarned).Error; err != nil {
		return nil, err
	}

	if err := s.db.Table("referrals").
		Select("users.username, referrals.bonus_amount, referrals.created_at").
		Joins("JOIN users ON users.id = referrals.referred_id").
		Where("referrals.referrer_id = ?", userID).
		Order("referrals.created_at DESC").
		Limit(10).
		Scan(&stats.Referrals).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
