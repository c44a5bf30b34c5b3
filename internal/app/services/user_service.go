package services

import (
	"context"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
)

type userRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, name *string, bio *string, socials map[string]string) error
	UpdateRole(ctx context.Context, id int64, role models.Role) error
	List(ctx context.Context, page, size int) ([]*models.User, error)
	Count(ctx context.Context) (int64, error)
	Downloads(ctx context.Context, userID int64) ([]*models.Download, error)
}

// UserService handles profile management and the admin user directory.
type UserService struct {
	userRepo userRepository
}

// NewUserService creates a new user service instance.
func NewUserService(userRepo userRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies a merge-patch to the caller's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	var socials map[string]string
	if req.Socials != nil {
		socials = *req.Socials
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, req.Name, req.Bio, socials); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// UpdateRole sets another user's role. Admins cannot demote themselves;
// losing the last admin through a self-service click is not recoverable
// from the UI.
func (s *UserService) UpdateRole(ctx context.Context, actorID, targetID int64, role models.Role) (*models.User, error) {
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("unknown role")
	}
	if actorID == targetID && role != models.RoleAdmin {
		return nil, apperrors.NewValidationError("admins cannot change their own role")
	}

	if err := s.userRepo.UpdateRole(ctx, targetID, role); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, targetID)
}

// ListUsers returns one page of the user directory.
func (s *UserService) ListUsers(ctx context.Context, page, size int) ([]*models.User, int64, error) {
	users, err := s.userRepo.List(ctx, page, size)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Downloads returns the caller's download history.
func (s *UserService) Downloads(ctx context.Context, userID int64) ([]*models.Download, error) {
	return s.userRepo.Downloads(ctx, userID)
}
