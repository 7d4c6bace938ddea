package services

import (
	"testing"

	"gim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferralApplyCreditsOnce(t *testing.T) {
	db := newTestDB(t)
	referrer := createUser(t, db, "alice", 0)
	invited := createUser(t, db, "bob", 0)
	svc := NewReferralService(db, 50)

	bonus, err := svc.Apply(referrer.ReferralCode, invited.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), bonus)

	assert.Equal(t, int64(50), reload[models.User](t, db, referrer.ID).Balance)
	updated := reload[models.User](t, db, invited.ID)
	require.NotNil(t, updated.ReferredBy)
	assert.Equal(t, referrer.ID, *updated.ReferredBy)

	// A duplicate application is a no-op failure, never a second credit.
	_, err = svc.Apply(referrer.ReferralCode, invited.ID)
	assert.ErrorIs(t, err, ErrReferralAlreadyApplied)
	assert.Equal(t, int64(50), reload[models.User](t, db, referrer.ID).Balance)

	var count int64
	require.NoError(t, db.Model(&models.Referral{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestReferralApplyInvalidCode(t *testing.T) {
	db := newTestDB(t)
	invited := createUser(t, db, "bob", 0)

	_, err := NewReferralService(db, 50).Apply("NOSUCHCODE", invited.ID)
	assert.ErrorIs(t, err, ErrInvalidReferralCode)
}

func TestReferralApplyOwnCode(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", 0)

	_, err := NewReferralService(db, 50).Apply(user.ReferralCode, user.ID)
	assert.ErrorIs(t, err, ErrInvalidReferralCode)
	assert.Equal(t, int64(0), reload[models.User](t, db, user.ID).Balance)
}

func TestReferralApplyUnknownNewUser(t *testing.T) {
	db := newTestDB(t)
	referrer := createUser(t, db, "alice", 0)

	_, err := NewReferralService(db, 50).Apply(referrer.ReferralCode, 404)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Equal(t, int64(0), reload[models.User](t, db, referrer.ID).Balance)
}

func TestReferralStats(t *testing.T) {
	db := newTestDB(t)
	referrer := createUser(t, db, "alice", 0)
	first := createUser(t, db, "bob", 0)
	second := createUser(t, db, "carol", 0)
	svc := NewReferralService(db, 50)

	_, err := svc.Apply(referrer.ReferralCode, first.ID)
	require.NoError(t, err)
	_, err = svc.Apply(referrer.ReferralCode, second.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(referrer.ID)
	require.NoError(t, err)

	assert.Equal(t, referrer.ReferralCode, stats.ReferralCode)
	assert.EqualValues(t, 2, stats.TotalReferrals)
	assert.Equal(t, int64(100), stats.TotalEarned)
	require.Len(t, stats.Referrals, 2)

	usernames := []string{stats.Referrals[0].Username, stats.Referrals[1].Username}
	assert.Contains(t, usernames, "bob")
	assert.Contains(t, usernames, "carol")
}

func TestReferralStatsUnknownUser(t *testing.T) {
	db := newTestDB(t)

	_, err := NewReferralService(db, 50).Stats(404)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
