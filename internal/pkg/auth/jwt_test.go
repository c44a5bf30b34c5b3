package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
)

func testJWTService(ttl time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:  "test-secret",
		SessionExp: ttl,
		Issuer:     "test-issuer",
	})
}

func TestIssueAndVerify(t *testing.T) {
	svc := testJWTService(time.Hour)

	user := &models.User{
		ID:    42,
		Email: "jane@example.com",
		Role:  models.RolePublisher,
	}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, string(models.RolePublisher), claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestVerifyTamperedToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, err := svc.Issue(&models.User{ID: 1, Email: "a@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := testJWTService(time.Hour).Issue(&models.User{ID: 1, Email: "a@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", SessionExp: time.Hour, Issuer: "test-issuer"})
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, err := svc.Issue(&models.User{ID: 1, Email: "a@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyGarbage(t *testing.T) {
	svc := testJWTService(time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
