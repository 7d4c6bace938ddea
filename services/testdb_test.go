package services

import (
	"fmt"
	"strings"
	"testing"

	"gim/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh shared in-memory SQLite database per test.
// A single connection keeps the database alive for the whole test and
// serializes concurrent transactions the way Postgres row locks would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Transaction{},
		&models.Withdrawal{},
		&models.Referral{},
		&models.PendingPayment{},
	))

	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, balance int64) models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Password:     "hash",
		Balance:      balance,
		ReferralCode: strings.ToUpper(username) + "REF",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createItem(t *testing.T, db *gorm.DB, sellerID uint, price int64) models.Item {
	t.Helper()
	item := models.Item{
		SellerID: sellerID,
		Title:    "Dragon Blade",
		Price:    price,
		Category: "Weapons",
		Rarity:   "Legendary",
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func reload[T any](t *testing.T, db *gorm.DB, id uint) T {
	t.Helper()
	var value T
	require.NoError(t, db.First(&value, id).Error)
	return value
}

func totalBalance(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var sum int64
	require.NoError(t, db.Model(&models.User{}).
		Select("COALESCE(SUM(balance), 0)").Scan(&sum).Error)
	return sum
}

func countTransactions(t *testing.T, db *gorm.DB, txnType models.TransactionType) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).
		Where("type = ?", txnType).Count(&count).Error)
	return count
}
