package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
)

const userInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// Identity is the verified real-world identity resolved at login. The rest
// of the system is agnostic to how it was established.
type Identity struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	PictureURL string `json:"picture"`
}

// Provider performs the one-time authorization-code exchange with Google
// and fetches the user's profile.
type Provider interface {
	Exchange(ctx context.Context, code string) (*Identity, error)
}

// GoogleProvider implements Provider against Google's OAuth2 endpoints.
type GoogleProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

// NewGoogleProvider creates a Google OAuth provider.
func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: userInfoEndpoint,
	}
}

// Exchange trades an authorization code for tokens and resolves the user's
// email, name and picture. Any upstream failure is reported as such; no
// retries are attempted.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("identity provider rejected the authorization code: %v", err))
	}

	client := p.config.Client(ctx, token)
	resp, err := client.Get(p.userInfoURL)
	if err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("failed to fetch user info: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("user info request returned status %d", resp.StatusCode))
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("failed to decode user info: %v", err))
	}
	if identity.Email == "" {
		return nil, apperrors.NewUpstreamError("identity provider returned no email")
	}

	return &identity, nil
}
