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

type mockUserRepo struct {
	users map[int64]*models.User
}

func newMockUserRepo(users ...*models.User) *mockUserRepo {
	m := &mockUserRepo{users: map[int64]*models.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, id int64, name *string, bio *string, socials map[string]string) error {
	u, ok := m.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if name != nil {
		u.Name = *name
	}
	if bio != nil {
		u.Bio = bio
	}
	if socials != nil {
		u.Socials = socials
	}
	return nil
}

func (m *mockUserRepo) UpdateRole(_ context.Context, id int64, role models.Role) error {
	u, ok := m.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (m *mockUserRepo) List(_ context.Context, _, _ int) ([]*models.User, error) {
	out := []*models.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *mockUserRepo) Downloads(_ context.Context, _ int64) ([]*models.Download, error) {
	return []*models.Download{}, nil
}

func TestUpdateProfileMergePatch(t *testing.T) {
	bio := "Original bio"
	repo := newMockUserRepo(&models.User{ID: 1, Email: "ada@example.com", Name: "Ada", Bio: &bio})
	svc := NewUserService(repo)

	name := "Ada Lovelace"
	user, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", user.Name)
	require.NotNil(t, user.Bio)
	assert.Equal(t, "Original bio", *user.Bio)
}

func TestUpdateRolePromotesTarget(t *testing.T) {
	repo := newMockUserRepo(
		&models.User{ID: 1, Email: "admin@example.com", Role: models.RoleAdmin},
		&models.User{ID: 2, Email: "ada@example.com", Role: models.RoleUser},
	)
	svc := NewUserService(repo)

	user, err := svc.UpdateRole(context.Background(), 1, 2, models.RolePublisher)
	require.NoError(t, err)
	assert.Equal(t, models.RolePublisher, user.Role)
}

func TestUpdateRoleRejectsSelfDemotion(t *testing.T) {
	repo := newMockUserRepo(&models.User{ID: 1, Email: "admin@example.com", Role: models.RoleAdmin})
	svc := NewUserService(repo)

	_, err := svc.UpdateRole(context.Background(), 1, 1, models.RoleUser)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, models.RoleAdmin, repo.users[1].Role)
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	repo := newMockUserRepo(&models.User{ID: 2, Email: "ada@example.com", Role: models.RoleUser})
	svc := NewUserService(repo)

	_, err := svc.UpdateRole(context.Background(), 1, 2, models.Role("superuser"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateRoleMissingTarget(t *testing.T) {
	svc := NewUserService(newMockUserRepo())

	_, err := svc.UpdateRole(context.Background(), 1, 42, models.RolePublisher)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
