package services

import (
	"testing"

	"gim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopUpCreditsBalanceAndAppendsRecord(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 25)

	updated, err := NewWalletService(db).TopUp(user.ID, 75)
	require.NoError(t, err)
	assert.Equal(t, int64(100), updated.Balance)

	var txn models.Transaction
	require.NoError(t, db.Where("type = ?", models.TransactionTypeTopUp).First(&txn).Error)
	assert.Equal(t, int64(75), txn.Amount)
	require.NotNil(t, txn.BuyerID)
	assert.Equal(t, user.ID, *txn.BuyerID)
	assert.EqualValues(t, 1, countTransactions(t, db, models.TransactionTypeTopUp))
}

func TestTopUpRejectsNonPositiveAmount(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 25)
	svc := NewWalletService(db)

	_, err := svc.TopUp(user.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.TopUp(user.ID, -10)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Equal(t, int64(25), reload[models.User](t, db, user.ID).Balance)
	assert.EqualValues(t, 0, countTransactions(t, db, models.TransactionTypeTopUp))
}

func TestTopUpUnknownAccount(t *testing.T) {
	db := newTestDB(t)

	_, err := NewWalletService(db).TopUp(404, 50)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestBalanceUnknownAccount(t *testing.T) {
	db := newTestDB(t)

	_, err := NewWalletService(db).Balance(404)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestHistoryReturnsBothSidesOfTrades(t *testing.T) {
	db := newTestDB(t)
	buyer := createUser(t, db, "alice", 200)
	seller := createUser(t, db, "bob", 0)
	item := createItem(t, db, seller.ID, 40)

	svc := NewWalletService(db)
	_, err := svc.TopUp(buyer.ID, 50)
	require.NoError(t, err)
	_, err = NewPurchaseService(db).Purchase(buyer.ID, item.ID)
	require.NoError(t, err)

	buyerTxns, buyerTotal, err := svc.History(buyer.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, buyerTotal)
	assert.Len(t, buyerTxns, 2)

	sellerTxns, sellerTotal, err := svc.History(seller.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, sellerTotal)
	require.Len(t, sellerTxns, 1)
	assert.Equal(t, models.TransactionTypePurchase, sellerTxns[0].Type)
}

func TestHistoryPagination(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 0)
	svc := NewWalletService(db)

	for i := 0; i < 5; i++ {
		_, err := svc.TopUp(user.ID, 10)
		require.NoError(t, err)
	}

	txns, total, err := svc.History(user.ID, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, txns, 2)
}

func TestStatsAggregates(t *testing.T) {
	db := newTestDB(t)
	buyer := createUser(t, db, "alice", 100)
	seller := createUser(t, db, "bob", 50)
	item := createItem(t, db, seller.ID, 40)

	walletSvc := NewWalletService(db)
	_, err := walletSvc.TopUp(buyer.ID, 30)
	require.NoError(t, err)
	_, err = NewPurchaseService(db).Purchase(buyer.ID, item.ID)
	require.NoError(t, err)
	_, err = NewWithdrawalService(db).Request(seller.ID, 20, "card", "4111")
	require.NoError(t, err)

	stats, err := walletSvc.Stats()
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.Equal(t, int64(160), stats.TotalBalance) // 150 start +30 topup -20 withdrawal
	assert.Equal(t, int64(30), stats.TopUpVolumeToday)
	assert.Equal(t, int64(30), stats.TopUpVolumeMonth)
	assert.Equal(t, int64(40), stats.PurchaseVolumeToday)
	assert.EqualValues(t, 1, stats.PendingWithdrawals)
}
