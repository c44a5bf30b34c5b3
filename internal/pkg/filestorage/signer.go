package filestorage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// signatureWindow bounds how old a signed-upload timestamp may be.
const signatureWindow = 10 * time.Minute

// Signer produces the timestamp+signature pair for the direct-upload
// handshake, so clients can push media straight to the storage service.
type Signer struct {
	secret []byte
}

// NewSigner creates a Signer over a shared secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the hex HMAC-SHA256 of the given unix timestamp.
func (s *Signer) Sign(timestamp int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "timestamp=%d", timestamp)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a signature produced by Sign and rejects stale
// timestamps outside the allowed window.
func (s *Signer) VerifySignature(timestamp int64, signature string, now time.Time) bool {
	issued := time.Unix(timestamp, 0)
	if now.Sub(issued) > signatureWindow || issued.Sub(now) > signatureWindow {
		return false
	}
	expected := s.Sign(timestamp)
	return hmac.Equal([]byte(expected), []byte(signature))
}
