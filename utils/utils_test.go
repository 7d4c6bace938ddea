package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferralCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateReferralCode()
		assert.Len(t, code, referralCodeLength)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(referralCodeCharset, ch), "unexpected character %q", ch)
		}
		seen[code] = true
	}
	// 100 draws from a 32^8 space colliding down to a handful would mean
	// the generator is broken.
	assert.Greater(t, len(seen), 90)
}

func TestPointsToRubles(t *testing.T) {
	assert.Equal(t, "50", PointsToRubles(500).String())
	assert.Equal(t, "10.5", PointsToRubles(105).String())
	assert.Equal(t, "0.1", PointsToRubles(1).String())
}

func TestBuildSBPLink(t *testing.T) {
	link := BuildSBPLink("https://qr.nspk.ru/TEST", PointsToRubles(500))
	assert.Equal(t, "https://qr.nspk.ru/TEST?type=02&bank=100000000111&sum=50&cur=RUB&crc=B68B", link)
}

func TestGenerateQRCodeBase64(t *testing.T) {
	qr, err := GenerateQRCodeBase64("https://qr.nspk.ru/TEST")
	assert.NoError(t, err)
	assert.NotEmpty(t, qr)
}
