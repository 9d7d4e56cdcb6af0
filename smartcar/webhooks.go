package smartcar

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashChallenge answers a webhook verification challenge: the HMAC-SHA256
// hex digest of the challenge string, keyed by the application management
// token.
func HashChallenge(amt, challenge string) string {
	mac := hmac.New(sha256.New, []byte(amt))
	mac.Write([]byte(challenge))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPayload reports whether signature matches the HMAC-SHA256 hex
// digest of the serialized payload body. A string or []byte body is signed
// as-is; anything else is serialized as compact JSON first. Hex comparison
// is exact and case-sensitive.
func VerifyPayload(amt, signature string, body any) bool {
	var raw []byte
	switch b := body.(type) {
	case []byte:
		raw = b
	case json.RawMessage:
		raw = b
	case string:
		raw = []byte(b)
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			return false
		}
		raw = encoded
	}
	expected := HashChallenge(amt, string(raw))
	return hmac.Equal([]byte(expected), []byte(signature))
}
