package services

import (
	"testing"

	"gim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentCreatePending(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 0)

	payment, err := NewPaymentService(db).Create(user.ID, 500)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, int64(500), payment.Amount)
	assert.NotEmpty(t, payment.GatewayOrderID)

	// Creation alone must not touch the balance.
	assert.Equal(t, int64(0), reload[models.User](t, db, user.ID).Balance)
}

func TestPaymentCreateInvalidAmount(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 0)

	_, err := NewPaymentService(db).Create(user.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestPaymentCreateUnknownAccount(t *testing.T) {
	db := newTestDB(t)

	_, err := NewPaymentService(db).Create(404, 500)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestPaymentConfirmCreditsExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 0)
	svc := NewPaymentService(db)

	payment, err := svc.Create(user.ID, 500)
	require.NoError(t, err)

	confirmed, err := svc.Confirm(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, confirmed.Status)
	assert.Equal(t, int64(500), reload[models.User](t, db, user.ID).Balance)
	assert.EqualValues(t, 1, countTransactions(t, db, models.TransactionTypeTopUp))

	// A replayed confirmation is rejected and credits nothing.
	_, err = svc.Confirm(payment.ID)
	assert.ErrorIs(t, err, ErrPaymentAlreadyProcessed)
	assert.Equal(t, int64(500), reload[models.User](t, db, user.ID).Balance)
	assert.EqualValues(t, 1, countTransactions(t, db, models.TransactionTypeTopUp))
}

func TestPaymentConfirmNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := NewPaymentService(db).Confirm(404)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
