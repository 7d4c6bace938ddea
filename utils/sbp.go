package utils

import (
	"encoding/base64"
	"fmt"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

// BuildSBPLink builds the SBP payment deep link for the given ruble amount.
func BuildSBPLink(baseURL string, rubles decimal.Decimal) string {
	return fmt.Sprintf("%s?type=02&bank=100000000111&sum=%s&cur=RUB&crc=B68B", baseURL, rubles.String())
}

// GenerateQRCodeBase64 renders the payment link as a base64-encoded PNG.
func GenerateQRCodeBase64(link string) (string, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
