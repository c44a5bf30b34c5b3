package dto

import "github.com/Amber-bisht/notesfind-sub000/internal/app/models"

// LoginRequest carries the Google authorization code obtained by the
// frontend redirect flow.
type LoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserResponse is the session user returned by login and /auth/me.
type UserResponse struct {
	ID         int64       `json:"id"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	PictureURL *string     `json:"pictureUrl,omitempty"`
	Role       models.Role `json:"role"`
}

// NewUserResponse projects a user for API output.
func NewUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		PictureURL: user.PictureURL,
		Role:       user.Role,
	}
}

// UpdateProfileRequest is a merge-patch of the caller's own profile.
type UpdateProfileRequest struct {
	Name    *string            `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Bio     *string            `json:"bio,omitempty" binding:"omitempty,max=500"`
	Socials *map[string]string `json:"socials,omitempty"`
}

// UpdateRoleRequest changes a user's role (admin only).
type UpdateRoleRequest struct {
	Role models.Role `json:"role" binding:"required,oneof=admin publisher user"`
}
