package services

import "errors"

// Typed failures returned by the transactional core. Controllers map
// these to HTTP statuses; none of them is fatal to the process.
var (
	ErrAccountNotFound            = errors.New("account not found")
	ErrItemNotFound               = errors.New("item not found")
	ErrItemAlreadySold            = errors.New("item already sold")
	ErrSelfPurchase               = errors.New("cannot buy your own item")
	ErrInsufficientBalance        = errors.New("insufficient balance")
	ErrInvalidAmount              = errors.New("amount must be greater than zero")
	ErrInvalidReferralCode        = errors.New("invalid referral code")
	ErrReferralAlreadyApplied     = errors.New("referral already applied")
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrPaymentAlreadyProcessed    = errors.New("payment already processed")
	ErrWithdrawalNotFound         = errors.New("withdrawal not found")
	ErrWithdrawalAlreadyProcessed = errors.New("withdrawal already processed")
)
