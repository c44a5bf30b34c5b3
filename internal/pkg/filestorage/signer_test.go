package filestorage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	signer := NewSigner("upload-secret")
	now := time.Now()
	ts := now.Unix()

	sig := signer.Sign(ts)
	assert.NotEmpty(t, sig)
	assert.True(t, signer.VerifySignature(ts, sig, now))
}

func TestSignIsDeterministic(t *testing.T) {
	signer := NewSigner("upload-secret")
	assert.Equal(t, signer.Sign(1700000000), signer.Sign(1700000000))
	assert.NotEqual(t, signer.Sign(1700000000), signer.Sign(1700000001))
}

func TestVerifyRejectsWrongSignature(t *testing.T) {
	signer := NewSigner("upload-secret")
	now := time.Now()

	assert.False(t, signer.VerifySignature(now.Unix(), "deadbeef", now))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	now := time.Now()
	sig := NewSigner("secret-a").Sign(now.Unix())

	assert.False(t, NewSigner("secret-b").VerifySignature(now.Unix(), sig, now))
}

func TestVerifyRejectsStaleTimestamp(t *testing.T) {
	signer := NewSigner("upload-secret")
	now := time.Now()
	stale := now.Add(-11 * time.Minute).Unix()

	assert.False(t, signer.VerifySignature(stale, signer.Sign(stale), now))
}

func TestVerifyRejectsFutureTimestamp(t *testing.T) {
	signer := NewSigner("upload-secret")
	now := time.Now()
	future := now.Add(11 * time.Minute).Unix()

	assert.False(t, signer.VerifySignature(future, signer.Sign(future), now))
}

func TestVerifyAcceptsWithinWindow(t *testing.T) {
	signer := NewSigner("upload-secret")
	now := time.Now()
	recent := now.Add(-9 * time.Minute).Unix()

	assert.True(t, signer.VerifySignature(recent, signer.Sign(recent), now))
}
