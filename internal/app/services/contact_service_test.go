package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
)

type mockContactRepo struct {
	created  []*models.ContactMessage
	resolved map[int64]bool
}

func newMockContactRepo() *mockContactRepo {
	return &mockContactRepo{resolved: map[int64]bool{}}
}

func (m *mockContactRepo) Create(_ context.Context, msg *models.ContactMessage) (int64, error) {
	msg.ID = int64(len(m.created) + 1)
	m.created = append(m.created, msg)
	return msg.ID, nil
}

func (m *mockContactRepo) List(_ context.Context, kind *models.MessageKind, resolved *bool, _, _ int) ([]*models.ContactMessage, error) {
	out := []*models.ContactMessage{}
	for _, msg := range m.created {
		if kind != nil && msg.Kind != *kind {
			continue
		}
		if resolved != nil && msg.Resolved != *resolved {
			continue
		}
		out = append(out, msg)
	}
	return out, nil
}

func (m *mockContactRepo) Count(ctx context.Context, kind *models.MessageKind, resolved *bool) (int64, error) {
	messages, _ := m.List(ctx, kind, resolved, 1, 100)
	return int64(len(messages)), nil
}

func (m *mockContactRepo) MarkResolved(_ context.Context, id int64, resolved bool) error {
	m.resolved[id] = resolved
	return nil
}

func (m *mockContactRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

type mockVerifier struct {
	err       error
	lastToken string
	lastIP    string
}

func (m *mockVerifier) Verify(_ context.Context, token, remoteIP string) error {
	m.lastToken = token
	m.lastIP = remoteIP
	return m.err
}

func TestSubmitStoresMessage(t *testing.T) {
	repo := newMockContactRepo()
	verifier := &mockVerifier{}
	svc := NewContactService(repo, verifier)

	msg, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:         "Ada",
		Email:        "ada@example.com",
		Message:      "Please add notes on lambda calculus.",
		Kind:         "request",
		CaptchaToken: "tok-1",
	}, "203.0.113.9")
	require.NoError(t, err)

	assert.Equal(t, models.MessageKindRequest, msg.Kind)
	assert.Equal(t, "tok-1", verifier.lastToken)
	assert.Equal(t, "203.0.113.9", verifier.lastIP)
	require.Len(t, repo.created, 1)
}

func TestSubmitDefaultsKindToContact(t *testing.T) {
	repo := newMockContactRepo()
	svc := NewContactService(repo, &mockVerifier{})

	msg, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Just saying hello.",
	}, "203.0.113.9")
	require.NoError(t, err)
	assert.Equal(t, models.MessageKindContact, msg.Kind)
}

func TestSubmitRejectedCaptchaNeverStored(t *testing.T) {
	repo := newMockContactRepo()
	svc := NewContactService(repo, &mockVerifier{err: apperrors.ErrCaptchaRejected})

	_, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:         "Eve",
		Email:        "eve@example.com",
		Message:      "Definitely not a bot.",
		CaptchaToken: "bad",
	}, "203.0.113.9")

	assert.ErrorIs(t, err, apperrors.ErrCaptchaRejected)
	assert.Empty(t, repo.created)
}

func TestSubmitCaptchaUpstreamFailure(t *testing.T) {
	repo := newMockContactRepo()
	svc := NewContactService(repo, &mockVerifier{err: apperrors.NewUpstreamError("captcha service unreachable")})

	_, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:         "Ada",
		Email:        "ada@example.com",
		Message:      "Hello again.",
		CaptchaToken: "tok-2",
	}, "203.0.113.9")

	assert.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
	assert.Empty(t, repo.created)
}

func TestListFiltersByKind(t *testing.T) {
	repo := newMockContactRepo()
	svc := NewContactService(repo, &mockVerifier{})

	for _, kind := range []string{"contact", "request", "request"} {
		_, err := svc.Submit(context.Background(), &dto.ContactRequest{
			Name:    "Ada",
			Email:   "ada@example.com",
			Message: "A message long enough.",
			Kind:    kind,
		}, "203.0.113.9")
		require.NoError(t, err)
	}

	kind := models.MessageKindRequest
	messages, total, err := svc.List(context.Background(), &kind, nil, 1, 20)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, int64(2), total)
}
