package services

import (
	"context"
	"time"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/auth"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/logger"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/oauth"
)

type userUpserter interface {
	UpsertByEmail(ctx context.Context, email, name string, pictureURL *string, role models.Role) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthService exchanges a Google authorization code for a session.
type AuthService struct {
	provider    oauth.Provider
	userRepo    userUpserter
	jwtService  *auth.JWTService
	adminEmails map[string]struct{}
}

// NewAuthService creates a new auth service instance. adminEmails lists
// accounts that sign in straight into the admin role.
func NewAuthService(provider oauth.Provider, userRepo userUpserter, jwtService *auth.JWTService, adminEmails []string) *AuthService {
	emails := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		emails[e] = struct{}{}
	}
	return &AuthService{
		provider:    provider,
		userRepo:    userRepo,
		jwtService:  jwtService,
		adminEmails: emails,
	}
}

// Login completes the OAuth code exchange, provisions or refreshes the
// account and issues the session token. First-time users get the user
// role unless their email is on the admin list.
func (s *AuthService) Login(ctx context.Context, code string) (*models.User, string, error) {
	identity, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, "", err
	}

	role := models.RoleUser
	if _, ok := s.adminEmails[identity.Email]; ok {
		role = models.RoleAdmin
	}

	var picture *string
	if identity.PictureURL != "" {
		picture = &identity.PictureURL
	}

	user, err := s.userRepo.UpsertByEmail(ctx, identity.Email, identity.Name, picture, role)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.Issue(user)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error issuing session token")
		return nil, "", err
	}

	return user, token, nil
}

// CurrentUser loads the full account behind a verified session.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// SessionTTL exposes the cookie lifetime matching the token's expiry.
func (s *AuthService) SessionTTL() time.Duration {
	return s.jwtService.SessionTTL()
}
