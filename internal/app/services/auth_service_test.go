package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/auth"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/oauth"
)

type mockProvider struct {
	identity *oauth.Identity
	err      error
}

func (m *mockProvider) Exchange(_ context.Context, _ string) (*oauth.Identity, error) {
	return m.identity, m.err
}

type mockUserUpserter struct {
	users    map[string]*models.User
	nextID   int64
	lastRole models.Role
}

func newMockUserUpserter() *mockUserUpserter {
	return &mockUserUpserter{users: map[string]*models.User{}, nextID: 1}
}

func (m *mockUserUpserter) UpsertByEmail(_ context.Context, email, name string, pictureURL *string, role models.Role) (*models.User, error) {
	m.lastRole = role
	if existing, ok := m.users[email]; ok {
		// A sign-in refreshes the profile but never touches the role.
		existing.Name = name
		existing.PictureURL = pictureURL
		return existing, nil
	}
	user := &models.User{ID: m.nextID, Email: email, Name: name, PictureURL: pictureURL, Role: role}
	m.nextID++
	m.users[email] = user
	return user, nil
}

func (m *mockUserUpserter) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func newAuthServiceForTest(provider oauth.Provider, repo *mockUserUpserter, adminEmails []string) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:  "test-secret",
		SessionExp: time.Hour,
		Issuer:     "notesfind-test",
	})
	return NewAuthService(provider, repo, jwtService, adminEmails)
}

func TestLoginProvisionsNewUser(t *testing.T) {
	repo := newMockUserUpserter()
	svc := newAuthServiceForTest(&mockProvider{identity: &oauth.Identity{
		Email:      "ada@example.com",
		Name:       "Ada Lovelace",
		PictureURL: "https://lh3.example.com/ada.jpg",
	}}, repo, nil)

	user, token, err := svc.Login(context.Background(), "auth-code")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEmpty(t, token)
	require.NotNil(t, user.PictureURL)
	assert.Equal(t, "https://lh3.example.com/ada.jpg", *user.PictureURL)
}

func TestLoginAdminListedEmail(t *testing.T) {
	repo := newMockUserUpserter()
	svc := newAuthServiceForTest(&mockProvider{identity: &oauth.Identity{
		Email: "root@example.com",
		Name:  "Root",
	}}, repo, []string{"root@example.com"})

	user, _, err := svc.Login(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestLoginDoesNotDemoteOnRepeat(t *testing.T) {
	repo := newMockUserUpserter()
	repo.users["pub@example.com"] = &models.User{ID: 1, Email: "pub@example.com", Role: models.RolePublisher}
	repo.nextID = 2

	svc := newAuthServiceForTest(&mockProvider{identity: &oauth.Identity{
		Email: "pub@example.com",
		Name:  "Publisher",
	}}, repo, nil)

	user, _, err := svc.Login(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, models.RolePublisher, user.Role)
}

func TestLoginUpstreamFailure(t *testing.T) {
	svc := newAuthServiceForTest(&mockProvider{err: apperrors.NewUpstreamError("identity provider rejected the authorization code")}, newMockUserUpserter(), nil)

	_, _, err := svc.Login(context.Background(), "bad-code")
	assert.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
}

func TestLoginSessionTokenRoundTrips(t *testing.T) {
	repo := newMockUserUpserter()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:  "test-secret",
		SessionExp: time.Hour,
		Issuer:     "notesfind-test",
	})
	svc := NewAuthService(&mockProvider{identity: &oauth.Identity{
		Email: "ada@example.com",
		Name:  "Ada",
	}}, repo, jwtService, nil)

	user, token, err := svc.Login(context.Background(), "auth-code")
	require.NoError(t, err)

	claims, err := jwtService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}
