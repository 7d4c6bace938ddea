package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/shopspring/decimal"
)

// Ambiguous characters (0/O, 1/I) are left out of referral codes.
const referralCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const referralCodeLength = 8

// GenerateReferralCode generates a random 8-character referral code
func GenerateReferralCode() string {
	code := make([]byte, referralCodeLength)
	max := big.NewInt(int64(len(referralCodeCharset)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			code[i] = referralCodeCharset[0]
			continue
		}
		code[i] = referralCodeCharset[n.Int64()]
	}
	return string(code)
}

// PointsPerRuble is the canonical conversion between the internal
// balance unit (points) and rubles shown at the payment edges. Balances,
// prices and transaction amounts are always whole points; rubles exist
// only in gateway-facing responses.
const PointsPerRuble = 10

// PointsToRubles converts whole points to a ruble amount for display.
func PointsToRubles(points int64) decimal.Decimal {
	return decimal.NewFromInt(points).Div(decimal.NewFromInt(PointsPerRuble))
}
