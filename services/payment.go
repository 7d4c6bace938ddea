package services

import (
	"errors"

	"gim/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService tracks gateway top-up payments. A payment is created
// pending and confirmed exactly once; confirmation credits the account
// and appends the top_up audit record in the same unit.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// Create registers a pending payment for the user.
func (s *PaymentService) Create(userID uint, amount int64) (*models.PendingPayment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if err := s.db.Where("id = ? AND is_deleted = false", userID).First(&models.User{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	payment := models.PendingPayment{
		UserID:         userID,
		Amount:         amount,
		Status:         models.PaymentStatusPending,
		GatewayOrderID: uuid.NewString(),
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

// Confirm settles a pending payment. Re-confirming a completed payment
// fails with ErrPaymentAlreadyProcessed and credits nothing.
func (s *PaymentService) Confirm(paymentID uint) (*models.PendingPayment, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var payment models.PendingPayment
	if err := tx.Where("id = ?", paymentID).First(&payment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	// pending -> completed happens through a guarded update; only one
	// confirmation can match the row.
	res := tx.Model(&models.PendingPayment{}).
		Where("id = ? AND status = ?", paymentID, models.PaymentStatusPending).
		Update("status", models.PaymentStatusCompleted)
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrPaymentAlreadyProcessed
	}

	if err := tx.Model(&models.User{}).
		Where("id = ?", payment.UserID).
		Update("balance", gorm.Expr("balance + ?", payment.Amount)).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	transaction := models.Transaction{
		BuyerID: &payment.UserID,
		Amount:  payment.Amount,
		Type:    models.TransactionTypeTopUp,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	payment.Status = models.PaymentStatusCompleted
	return &payment, nil
}
