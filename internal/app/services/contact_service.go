package services

import (
	"context"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/captcha"
)

type contactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) (int64, error)
	List(ctx context.Context, kind *models.MessageKind, resolved *bool, page, size int) ([]*models.ContactMessage, error)
	Count(ctx context.Context, kind *models.MessageKind, resolved *bool) (int64, error)
	MarkResolved(ctx context.Context, id int64, resolved bool) error
	Delete(ctx context.Context, id int64) error
}

// ContactService handles the captcha-gated public inbox.
type ContactService struct {
	contactRepo contactRepository
	verifier    captcha.Verifier
}

// NewContactService creates a new contact service instance.
func NewContactService(contactRepo contactRepository, verifier captcha.Verifier) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		verifier:    verifier,
	}
}

// Submit verifies the captcha upstream before anything is stored. A
// rejected token never reaches the database.
func (s *ContactService) Submit(ctx context.Context, req *dto.ContactRequest, remoteIP string) (*models.ContactMessage, error) {
	if err := s.verifier.Verify(ctx, req.CaptchaToken, remoteIP); err != nil {
		return nil, err
	}

	kind := models.MessageKind(req.Kind)
	if kind == "" {
		kind = models.MessageKindContact
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Kind:    kind,
	}

	if _, err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// List returns one page of inbox messages with the total count.
func (s *ContactService) List(ctx context.Context, kind *models.MessageKind, resolved *bool, page, size int) ([]*models.ContactMessage, int64, error) {
	messages, err := s.contactRepo.List(ctx, kind, resolved, page, size)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.contactRepo.Count(ctx, kind, resolved)
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// MarkResolved flips a message's resolved flag.
func (s *ContactService) MarkResolved(ctx context.Context, id int64, resolved bool) error {
	return s.contactRepo.MarkResolved(ctx, id, resolved)
}

// Delete removes a message from the inbox.
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	return s.contactRepo.Delete(ctx, id)
}
