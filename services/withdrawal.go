package services

import (
	"errors"
	"time"

	"gim/models"

	"gorm.io/gorm"
)

// WithdrawalService debits balance and records a pending payout request
// in the same unit. The actual money movement happens out of band; an
// admin (or the payout collaborator) later moves the request to a
// terminal state exactly once.
type WithdrawalService struct {
	db *gorm.DB
}

func NewWithdrawalService(db *gorm.DB) *WithdrawalService {
	return &WithdrawalService{db: db}
}

// Request debits the account and creates a pending withdrawal atomically.
func (s *WithdrawalService) Request(userID uint, amount int64, method, details string) (*models.Withdrawal, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if method == "" {
		method = "card"
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var user models.User
	if err := tx.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	// Guarded debit: the balance check and the subtraction are one
	// statement, so a concurrent spend cannot slip in between.
	res := tx.Model(&models.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrInsufficientBalance
	}

	withdrawal := models.Withdrawal{
		UserID:         userID,
		Amount:         amount,
		Status:         models.WithdrawalStatusPending,
		PaymentMethod:  method,
		PaymentDetails: details,
	}
	if err := tx.Create(&withdrawal).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &withdrawal, nil
}

// Process moves a pending withdrawal to completed or rejected, exactly
// once. Rejection returns the debited amount to the account in the same
// unit.
func (s *WithdrawalService) Process(id uint, approve bool) (*models.Withdrawal, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var withdrawal models.Withdrawal
	if err := tx.Where("id = ?", id).First(&withdrawal).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWithdrawalNotFound
		}
		return nil, err
	}

	status := models.WithdrawalStatusCompleted
	if !approve {
		status = models.WithdrawalStatusRejected
	}
	processedAt := time.Now()

	res := tx.Model(&models.Withdrawal{}).
		Where("id = ? AND status = ?", id, models.WithdrawalStatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"processed_at": processedAt,
		})
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrWithdrawalAlreadyProcessed
	}

	if !approve {
		if err := tx.Model(&models.User{}).
			Where("id = ?", withdrawal.UserID).
			Update("balance", gorm.Expr("balance + ?", withdrawal.Amount)).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	withdrawal.Status = status
	withdrawal.ProcessedAt = &processedAt
	return &withdrawal, nil
}

// List returns the user's 10 most recent withdrawal requests.
func (s *WithdrawalService) List(userID uint) ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(10).
		Find(&withdrawals).Error; err != nil {
		return nil, err
	}
	return withdrawals, nil
}
