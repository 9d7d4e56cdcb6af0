package smartcar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testAMT = "amt-577e1bc8-65e0-4ad2-a2d9-093441aca741"

func TestHashChallenge(t *testing.T) {
	// Reference digest computed with an independent HMAC-SHA256
	// implementation.
	assert.Equal(t,
		"7a0701900c4c2b66c5597e947fe24afae7d9adc2a91475e896a7a46bcd260e5f",
		HashChallenge(testAMT, "9c9c9c9c"),
	)
}

func TestVerifyPayload(t *testing.T) {
	body := map[string]any{
		"vehicleId": "vid-123",
		"data":      map[string]any{"odometer": 104.32},
	}
	// HMAC of {"data":{"odometer":104.32},"vehicleId":"vid-123"} keyed by
	// testAMT.
	sig := "a2f1cf35882624023007a0bb55beff6415e9565b0e07d2b77143aff3e0324d94"

	assert.True(t, VerifyPayload(testAMT, sig, body))
	assert.False(t, VerifyPayload(testAMT, sig, map[string]any{"vehicleId": "vid-456"}))
	assert.False(t, VerifyPayload("wrong-token", sig, body))
	// Hex comparison is case-sensitive.
	assert.False(t, VerifyPayload(testAMT, "A2F1CF35882624023007A0BB55BEFF6415E9565B0E07D2B77143AFF3E0324D94", body))
}

func TestVerifyPayload_RawBody(t *testing.T) {
	raw := `{"eventName":"verify"}`
	assert.True(t, VerifyPayload(testAMT, HashChallenge(testAMT, raw), raw))
	assert.True(t, VerifyPayload(testAMT, HashChallenge(testAMT, raw), []byte(raw)))
}
