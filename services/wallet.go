package services

import (
	"errors"

	"gim/models"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// WalletService handles top-ups, balance reads and the transaction
// history. Every balance credit commits together with exactly one
// top_up transaction record.
type WalletService struct {
	db *gorm.DB
}

func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{db: db}
}

// Balance returns the account owning the balance.
func (s *WalletService) Balance(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &user, nil
}

// TopUp credits amount points to the account and appends the audit record.
func (s *WalletService) TopUp(userID uint, amount int64) (*models.User, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	res := tx.Model(&models.User{}).
		Where("id = ? AND is_deleted = false", userID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrAccountNotFound
	}

	transaction := models.Transaction{
		BuyerID: &userID,
		Amount:  amount,
		Type:    models.TransactionTypeTopUp,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.Balance(userID)
}

// History returns the user's transactions, newest first.
func (s *WalletService) History(userID uint, page, limit int) ([]models.Transaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := s.db.Model(&models.Transaction{}).
		Where("buyer_id = ? OR seller_id = ?", userID, userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []models.Transaction
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// WalletStats is the admin aggregate view over the ledger.
type WalletStats struct {
	TotalUsers          int64 `json:"totalUsers"`
	TotalBalance        int64 `json:"totalBalance"`
	TopUpVolumeToday    int64 `json:"topUpVolumeToday"`
	TopUpVolumeWeek     int64 `json:"topUpVolumeWeek"`
	TopUpVolumeMonth    int64 `json:"topUpVolumeMonth"`
	PurchaseVolumeToday int64 `json:"purchaseVolumeToday"`
	PurchaseVolumeWeek  int64 `json:"purchaseVolumeWeek"`
	PurchaseVolumeMonth int64 `json:"purchaseVolumeMonth"`
	PendingWithdrawals  int64 `json:"pendingWithdrawals"`
}

// Stats aggregates ledger volumes for the admin dashboard.
func (s *WalletService) Stats() (*WalletStats, error) {
	stats := &WalletStats{}

	if err := s.db.Model(&models.User{}).
		Where("is_deleted = false").
		Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.User{}).
		Where("is_deleted = false").
		Select("COALESCE(SUM(balance), 0)").
		Scan(&stats.TotalBalance).Error; err != nil {
		return nil, err
	}

	today := now.BeginningOfDay()
	week := now.BeginningOfWeek()
	month := now.BeginningOfMonth()

	volume := func(txnType models.TransactionType, since interface{}) (int64, error) {
		var sum int64
		err := s.db.Model(&models.Transaction{}).
			Where("type = ? AND created_at >= ?", txnType, since).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&sum).Error
		return sum, err
	}

	var err error
	if stats.TopUpVolumeToday, err = volume(models.TransactionTypeTopUp, today); err != nil {
		return nil, err
	}
	if stats.TopUpVolumeWeek, err = volume(models.TransactionTypeTopUp, week); err != nil {
		return nil, err
	}
	if stats.TopUpVolumeMonth, err = volume(models.TransactionTypeTopUp, month); err != nil {
		return nil, err
	}
	if stats.PurchaseVolumeToday, err = volume(models.TransactionTypePurchase, today); err != nil {
		return nil, err
	}
	if stats.PurchaseVolumeWeek, err = volume(models.TransactionTypePurchase, week); err != nil {
		return nil, err
	}
	if stats.PurchaseVolumeMonth, err = volume(models.TransactionTypePurchase, month); err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Withdrawal{}).
		Where("status = ?", models.WithdrawalStatusPending).
		Count(&stats.PendingWithdrawals).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
