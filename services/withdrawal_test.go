package services

import (
	"testing"

	"gim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawalRequestDebitsAndQueues(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 100)

	withdrawal, err := NewWithdrawalService(db).Request(user.ID, 60, "card", "4111 1111 1111 1111")
	require.NoError(t, err)

	assert.Equal(t, models.WithdrawalStatusPending, withdrawal.Status)
	assert.Equal(t, int64(60), withdrawal.Amount)
	assert.Nil(t, withdrawal.ProcessedAt)
	assert.Equal(t, int64(40), reload[models.User](t, db, user.ID).Balance)
}

func TestWithdrawalRequestInsufficientBalance(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 30)

	_, err := NewWithdrawalService(db).Request(user.ID, 60, "card", "4111")
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Balance untouched, nothing queued.
	assert.Equal(t, int64(30), reload[models.User](t, db, user.ID).Balance)
	var count int64
	require.NoError(t, db.Model(&models.Withdrawal{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestWithdrawalRequestInvalidAmount(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 30)

	_, err := NewWithdrawalService(db).Request(user.ID, 0, "card", "4111")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestWithdrawalRequestUnknownAccount(t *testing.T) {
	db := newTestDB(t)

	_, err := NewWithdrawalService(db).Request(404, 10, "card", "4111")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestWithdrawalCannotDriveBalanceNegative(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 50)
	svc := NewWithdrawalService(db)

	_, err := svc.Request(user.ID, 50, "card", "4111")
	require.NoError(t, err)

	_, err = svc.Request(user.ID, 1, "card", "4111")
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, int64(0), reload[models.User](t, db, user.ID).Balance)
}

func TestWithdrawalProcessApproveExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 100)
	svc := NewWithdrawalService(db)

	withdrawal, err := svc.Request(user.ID, 60, "card", "4111")
	require.NoError(t, err)

	processed, err := svc.Process(withdrawal.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusCompleted, processed.Status)
	require.NotNil(t, processed.ProcessedAt)

	// Second settlement attempt is a no-op failure.
	_, err = svc.Process(withdrawal.ID, true)
	assert.ErrorIs(t, err, ErrWithdrawalAlreadyProcessed)
	assert.Equal(t, int64(40), reload[models.User](t, db, user.ID).Balance)
}

func TestWithdrawalProcessRejectRefunds(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 100)
	svc := NewWithdrawalService(db)

	withdrawal, err := svc.Request(user.ID, 60, "card", "4111")
	require.NoError(t, err)
	require.Equal(t, int64(40), reload[models.User](t, db, user.ID).Balance)

	processed, err := svc.Process(withdrawal.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusRejected, processed.Status)
	assert.Equal(t, int64(100), reload[models.User](t, db, user.ID).Balance)

	// A rejected request cannot be flipped to completed later.
	_, err = svc.Process(withdrawal.ID, true)
	assert.ErrorIs(t, err, ErrWithdrawalAlreadyProcessed)
	assert.Equal(t, int64(100), reload[models.User](t, db, user.ID).Balance)
}

func TestWithdrawalProcessNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := NewWithdrawalService(db).Process(404, true)
	assert.ErrorIs(t, err, ErrWithdrawalNotFound)
}

func TestWithdrawalListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 1000)
	svc := NewWithdrawalService(db)

	for i := int64(1); i <= 12; i++ {
		_, err := svc.Request(user.ID, i, "card", "4111")
		require.NoError(t, err)
	}

	withdrawals, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, withdrawals, 10)
}
