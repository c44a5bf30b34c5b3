package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
)

type mockCategoryRankCounter struct {
	count     int64
	err       error
	gotRank   int
	gotExcl   *int64
	callCount int
}

func (m *mockCategoryRankCounter) CountByRank(_ context.Context, rank int, excludeID *int64) (int64, error) {
	m.callCount++
	m.gotRank = rank
	m.gotExcl = excludeID
	return m.count, m.err
}

type mockScopedRankCounter struct {
	count    int64
	err      error
	gotScope int64
	gotRank  int
}

func (m *mockScopedRankCounter) CountByRank(_ context.Context, scopeID int64, rank int, excludeID *int64) (int64, error) {
	m.gotScope = scopeID
	m.gotRank = rank
	return m.count, m.err
}

func TestCheckAvailabilityCategoryGlobal(t *testing.T) {
	categories := &mockCategoryRankCounter{count: 0}
	svc := NewRankService(categories, &mockScopedRankCounter{}, &mockScopedRankCounter{})

	available, err := svc.CheckAvailability(context.Background(), models.RankEntityCategory, 3, nil, nil)
	require.NoError(t, err)
	assert.True(t, available)
	assert.Equal(t, 3, categories.gotRank)
}

func TestCheckAvailabilityTakenRank(t *testing.T) {
	categories := &mockCategoryRankCounter{count: 1}
	svc := NewRankService(categories, &mockScopedRankCounter{}, &mockScopedRankCounter{})

	available, err := svc.CheckAvailability(context.Background(), models.RankEntityCategory, 1, nil, nil)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestCheckAvailabilityScopedRequiresScope(t *testing.T) {
	svc := NewRankService(&mockCategoryRankCounter{}, &mockScopedRankCounter{}, &mockScopedRankCounter{})

	// A scoped entity without a parent id must be a hard error, never a
	// silent fallback to a global check.
	_, err := svc.CheckAvailability(context.Background(), models.RankEntitySubCategory, 2, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CheckAvailability(context.Background(), models.RankEntityNote, 2, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCheckAvailabilityScopedPassesScope(t *testing.T) {
	subCategories := &mockScopedRankCounter{count: 0}
	svc := NewRankService(&mockCategoryRankCounter{}, subCategories, &mockScopedRankCounter{})

	scope := int64(7)
	available, err := svc.CheckAvailability(context.Background(), models.RankEntitySubCategory, 4, &scope, nil)
	require.NoError(t, err)
	assert.True(t, available)
	assert.Equal(t, int64(7), subCategories.gotScope)
	assert.Equal(t, 4, subCategories.gotRank)
}

func TestCheckAvailabilityExcludeSelf(t *testing.T) {
	categories := &mockCategoryRankCounter{count: 0}
	svc := NewRankService(categories, &mockScopedRankCounter{}, &mockScopedRankCounter{})

	exclude := int64(11)
	_, err := svc.CheckAvailability(context.Background(), models.RankEntityCategory, 1, nil, &exclude)
	require.NoError(t, err)
	require.NotNil(t, categories.gotExcl)
	assert.Equal(t, int64(11), *categories.gotExcl)
}

func TestCheckAvailabilityInvalidInput(t *testing.T) {
	svc := NewRankService(&mockCategoryRankCounter{}, &mockScopedRankCounter{}, &mockScopedRankCounter{})

	_, err := svc.CheckAvailability(context.Background(), models.RankEntityCategory, 0, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CheckAvailability(context.Background(), models.RankEntity("bogus"), 1, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCheckAvailabilityRepoError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewRankService(&mockCategoryRankCounter{err: boom}, &mockScopedRankCounter{}, &mockScopedRankCounter{})

	_, err := svc.CheckAvailability(context.Background(), models.RankEntityCategory, 1, nil, nil)
	assert.ErrorIs(t, err, boom)
}
