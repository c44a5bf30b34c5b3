package auth

import (
	"context"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
)

type noteOwnerGetter interface {
	GetOwnerID(ctx context.Context, noteID int64) (int64, error)
}

// AuthorizationService decides who may mutate which note. An admin can
// act on anyone's note; a publisher only on their own.
type AuthorizationService struct {
	notes noteOwnerGetter
}

// NewAuthorizationService creates a new AuthorizationService.
func NewAuthorizationService(notes noteOwnerGetter) *AuthorizationService {
	return &AuthorizationService{notes: notes}
}

// CanModifyNote reports whether the caller may update or delete the note.
func (s *AuthorizationService) CanModifyNote(ctx context.Context, noteID, userID int64, role models.Role) (bool, error) {
	if role == models.RoleAdmin {
		return true, nil
	}
	if role != models.RolePublisher {
		return false, nil
	}

	ownerID, err := s.notes.GetOwnerID(ctx, noteID)
	if err != nil {
		return false, err
	}
	return ownerID == userID, nil
}

// ValidateNoteOwnership returns ErrPermissionDenied unless the caller may
// modify the note.
func (s *AuthorizationService) ValidateNoteOwnership(ctx context.Context, noteID, userID int64, role models.Role) error {
	allowed, err := s.CanModifyNote(ctx, noteID, userID, role)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.NewForbiddenError("you do not have permission to modify this note")
	}
	return nil
}
