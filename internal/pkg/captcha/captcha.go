package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
)

// Verifier checks challenge tokens against the reCAPTCHA siteverify
// service before contact/request submissions are accepted.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// HTTPVerifier implements Verifier over the siteverify HTTP API.
type HTTPVerifier struct {
	secret   string
	endpoint string
	client   *http.Client
}

// NewHTTPVerifier creates a verifier. An empty secret disables
// verification, which is only intended for local development.
func NewHTTPVerifier(secret, endpoint string) *HTTPVerifier {
	return &HTTPVerifier{
		secret:   secret,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify posts the challenge token with the shared secret and interprets
// the boolean result. Transport failures are UpstreamFailure; a negative
// verdict is a captcha rejection.
func (v *HTTPVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if v.secret == "" {
		return nil
	}
	if token == "" {
		return apperrors.ErrCaptchaRejected
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return apperrors.NewUpstreamError(fmt.Sprintf("failed to build captcha request: %v", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError(fmt.Sprintf("captcha service unreachable: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewUpstreamError(fmt.Sprintf("captcha service returned status %d", resp.StatusCode))
	}

	var result siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return apperrors.NewUpstreamError(fmt.Sprintf("failed to decode captcha response: %v", err))
	}
	if !result.Success {
		return apperrors.ErrCaptchaRejected
	}

	return nil
}
