package services

import (
	"errors"

	"gim/models"

	"gorm.io/gorm"
)

// PurchaseResult is returned on a successful buy.
type PurchaseResult struct {
	TransactionID uint        `json:"transactionId"`
	Item          models.Item `json:"item"`
}

// PurchaseService orchestrates the atomic buy operation: debit buyer,
// credit seller, mark the item sold and append the audit transaction,
// all in one database transaction.
type PurchaseService struct {
	db *gorm.DB
}

func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

// Purchase validates and executes a buy of itemID by buyerID. Exactly one
// of N concurrent calls for the same item can succeed; the rest fail with
// ErrItemAlreadySold.
func (s *PurchaseService) Purchase(buyerID, itemID uint) (*PurchaseResult, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var item models.Item
	if err := tx.Where("id = ? AND is_deleted = false", itemID).First(&item).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if item.IsSold {
		tx.Rollback()
		return nil, ErrItemAlreadySold
	}
	if item.SellerID == buyerID {
		tx.Rollback()
		return nil, ErrSelfPurchase
	}

	var buyer models.User
	if err := tx.Where("id = ? AND is_deleted = false", buyerID).First(&buyer).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if buyer.Balance < item.Price {
		tx.Rollback()
		return nil, ErrInsufficientBalance
	}

	// The sold flag flips through a guarded update so that two concurrent
	// buyers cannot both win: the loser's update matches zero rows.
	res := tx.Model(&models.Item{}).
		Where("id = ? AND is_sold = false", itemID).
		Update("is_sold", true)
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrItemAlreadySold
	}

	// The debit re-checks the balance in its predicate; the read above is
	// only a fast-path check and must not be trusted here.
	res = tx.Model(&models.User{}).
		Where("id = ? AND balance >= ?", buyerID, item.Price).
		Update("balance", gorm.Expr("balance - ?", item.Price))
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrInsufficientBalance
	}

	if err := tx.Model(&models.User{}).
		Where("id = ?", item.SellerID).
		Update("balance", gorm.Expr("balance + ?", item.Price)).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	transaction := models.Transaction{
		BuyerID:  &buyerID,
		SellerID: &item.SellerID,
		ItemID:   &item.ID,
		Amount:   item.Price,
		Type:     models.TransactionTypePurchase,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	item.IsSold = true
	return &PurchaseResult{TransactionID: transaction.ID, Item: item}, nil
}
