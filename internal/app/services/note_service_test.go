package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/Amber-bisht/notesfind-sub000/internal/app/auth"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/repositories"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
)

type mockNoteRepo struct {
	notes     map[int64]*repositories.NoteDetails
	nextID    int64
	createErr error
	liked     map[int64]bool
	likeCount int64
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{
		notes:  map[int64]*repositories.NoteDetails{},
		nextID: 1,
		liked:  map[int64]bool{},
	}
}

func (m *mockNoteRepo) put(details *repositories.NoteDetails) {
	m.notes[details.ID] = details
	if details.ID >= m.nextID {
		m.nextID = details.ID + 1
	}
}

func (m *mockNoteRepo) Create(_ context.Context, note *models.Note) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	note.ID = m.nextID
	m.nextID++
	m.put(&repositories.NoteDetails{
		ID:            note.ID,
		SubCategoryID: note.SubCategoryID,
		AuthorID:      note.AuthorID,
		Title:         note.Title,
		Slug:          note.Slug,
		Content:       note.Content,
		Images:        note.Images,
		Rank:          note.Rank,
		IsPublished:   note.IsPublished,
		AuthorName:    "Author",
	})
	return note.ID, nil
}

func (m *mockNoteRepo) GetByID(_ context.Context, id int64) (*repositories.NoteDetails, error) {
	n, ok := m.notes[id]
	if !ok {
		return nil, apperrors.ErrNoteNotFound
	}
	copied := *n
	return &copied, nil
}

func (m *mockNoteRepo) GetBySlug(_ context.Context, slug string) (*repositories.NoteDetails, error) {
	for _, n := range m.notes {
		if n.Slug == slug && n.IsPublished {
			n.Views++
			copied := *n
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNoteNotFound
}

func (m *mockNoteRepo) List(_ context.Context, params repositories.ListNotesParams) ([]*repositories.NoteDetails, error) {
	out := []*repositories.NoteDetails{}
	for _, n := range m.notes {
		if params.PublishedOnly && !n.IsPublished {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (m *mockNoteRepo) Count(_ context.Context, params repositories.ListNotesParams) (int64, error) {
	notes, _ := m.List(context.Background(), params)
	return int64(len(notes)), nil
}

func (m *mockNoteRepo) Update(_ context.Context, note *models.Note) error {
	existing, ok := m.notes[note.ID]
	if !ok {
		return apperrors.ErrNoteNotFound
	}
	existing.SubCategoryID = note.SubCategoryID
	existing.AuthorID = note.AuthorID
	existing.Title = note.Title
	existing.Slug = note.Slug
	existing.Content = note.Content
	existing.Images = note.Images
	existing.Rank = note.Rank
	existing.IsPublished = note.IsPublished
	return nil
}

func (m *mockNoteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.notes[id]; !ok {
		return apperrors.ErrNoteNotFound
	}
	delete(m.notes, id)
	return nil
}

func (m *mockNoteRepo) GetOwnerID(_ context.Context, id int64) (int64, error) {
	n, ok := m.notes[id]
	if !ok {
		return 0, apperrors.ErrNoteNotFound
	}
	return n.AuthorID, nil
}

func (m *mockNoteRepo) ToggleLike(_ context.Context, noteID, userID int64) (bool, int64, error) {
	if _, ok := m.notes[noteID]; !ok {
		return false, 0, apperrors.ErrNoteNotFound
	}
	if m.liked[userID] {
		m.liked[userID] = false
		m.likeCount--
		return false, m.likeCount, nil
	}
	m.liked[userID] = true
	m.likeCount++
	return true, m.likeCount, nil
}

func (m *mockNoteRepo) LikedNoteIDs(_ context.Context, _ int64) ([]int64, error) {
	return []int64{}, nil
}

type mockSubCategoryGetter struct {
	known map[int64]bool
}

func (m *mockSubCategoryGetter) GetByID(_ context.Context, id int64) (*models.SubCategory, error) {
	if !m.known[id] {
		return nil, apperrors.ErrSubCategoryNotFound
	}
	return &models.SubCategory{ID: id}, nil
}

type mockDownloadRecorder struct {
	recorded [][2]int64
}

func (m *mockDownloadRecorder) RecordDownload(_ context.Context, userID, noteID int64) error {
	m.recorded = append(m.recorded, [2]int64{userID, noteID})
	return nil
}

func newNoteServiceForTest(repo *mockNoteRepo) (*NoteService, *mockDownloadRecorder) {
	subs := &mockSubCategoryGetter{known: map[int64]bool{1: true, 2: true}}
	downloads := &mockDownloadRecorder{}
	authz := appauth.NewAuthorizationService(repo)
	return NewNoteService(repo, subs, downloads, authz), downloads
}

func TestCreateNoteSetsAuthorFromCaller(t *testing.T) {
	repo := newMockNoteRepo()
	svc, _ := newNoteServiceForTest(repo)

	note, err := svc.CreateNote(context.Background(), 7, &dto.CreateNoteRequest{
		SubCategoryID: 1,
		Title:         "Goroutines and Channels",
		Slug:          "goroutines-and-channels",
		Content:       "Concurrency is not parallelism.",
		IsPublished:   true,
	})
	require.NoError(t, err)

	stored := repo.notes[note.ID]
	assert.Equal(t, int64(7), stored.AuthorID)
}

func TestCreateNoteUnknownSubCategory(t *testing.T) {
	svc, _ := newNoteServiceForTest(newMockNoteRepo())

	_, err := svc.CreateNote(context.Background(), 7, &dto.CreateNoteRequest{
		SubCategoryID: 99,
		Title:         "Orphan",
		Slug:          "orphan",
		Content:       "No parent here.",
	})
	assert.ErrorIs(t, err, apperrors.ErrSubCategoryNotFound)
}

func TestUpdateNoteKeepsAuthor(t *testing.T) {
	repo := newMockNoteRepo()
	repo.put(&repositories.NoteDetails{
		ID: 1, SubCategoryID: 1, AuthorID: 7,
		Title: "Original", Slug: "original", Content: "Original content here.",
	})
	svc, _ := newNoteServiceForTest(repo)

	title := "Renamed"
	_, err := svc.UpdateNote(context.Background(), 1, 7, models.RolePublisher, &dto.UpdateNoteRequest{Title: &title})
	require.NoError(t, err)

	// The author never changes, regardless of what the update touches.
	assert.Equal(t, int64(7), repo.notes[1].AuthorID)
	assert.Equal(t, "Renamed", repo.notes[1].Title)
}

func TestUpdateNotePublisherCannotTouchOthers(t *testing.T) {
	repo := newMockNoteRepo()
	repo.put(&repositories.NoteDetails{
		ID: 1, SubCategoryID: 1, AuthorID: 7,
		Title: "Original", Slug: "original", Content: "Original content here.",
	})
	svc, _ := newNoteServiceForTest(repo)

	title := "Hijacked"
	_, err := svc.UpdateNote(context.Background(), 1, 8, models.RolePublisher, &dto.UpdateNoteRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Equal(t, "Original", repo.notes[1].Title)
}

func TestUpdateNoteAdminCanTouchAnything(t *testing.T) {
	repo := newMockNoteRepo()
	repo.put(&repositories.NoteDetails{
		ID: 1, SubCategoryID: 1, AuthorID: 7,
		Title: "Original", Slug: "original", Content: "Original content here.",
	})
	svc, _ := newNoteServiceForTest(repo)

	title := "Moderated"
	_, err := svc.UpdateNote(context.Background(), 1, 99, models.RoleAdmin, &dto.UpdateNoteRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Moderated", repo.notes[1].Title)
}

func TestDeleteNoteOwnership(t *testing.T) {
	repo := newMockNoteRepo()
	repo.put(&repositories.NoteDetails{
		ID: 1, SubCategoryID: 1, AuthorID: 7,
		Title: "Original", Slug: "original", Content: "Original content here.",
	})
	svc, _ := newNoteServiceForTest(repo)

	err := svc.DeleteNote(context.Background(), 1, 8, models.RolePublisher)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteNote(context.Background(), 1, 7, models.RolePublisher))
	assert.Empty(t, repo.notes)
}

func TestGetNoteByIDHidesDraftsFromOutsiders(t *testing.T) {
	repo := newMockNoteRepo()
	repo.put(&repositories.NoteDetails{
		ID: 1, SubCategoryID: 1, AuthorID: 7,
		Title: "Draft", Slug: "draft", Content: "Not ready yet.", IsPublished: false,
	})
	svc, _ := newNoteServiceForTest(repo)

	_, err := svc.GetNoteByID(context.Background(), 1, 8, models.RoleUser)
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)

	note, err := svc.GetNoteByID(context.Background(), 1, 7, models.RolePublisher)
	require.NoError(t, err)
	assert.Equal(t, "Draft", note.Title)

	_, err = svc.GetNoteByID(context.Background(), 1, 99, models.RoleAdmin)
	assert.NoError(t, err)
}

func TestRecordDownloadMissingNote(t *testing.T) {
	svc, downloads := newNoteServiceForTest(newMockNoteRepo())

	err := svc.RecordDownload(context.Background(), 5, 42)
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
	assert.Empty(t, downloads.recorded)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	repo := newMockNoteRepo()
	repo.put(&repositories.NoteDetails{
		ID: 1, SubCategoryID: 1, AuthorID: 7,
		Title: "T", Slug: "t", Content: "C", IsPublished: true,
	})
	svc, _ := newNoteServiceForTest(repo)

	first, err := svc.ToggleLike(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, first.IsLiked)
	assert.Equal(t, int64(1), first.LikesCount)

	second, err := svc.ToggleLike(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.False(t, second.IsLiked)
	assert.Equal(t, int64(0), second.LikesCount)
}

func TestToggleLikeMissingNote(t *testing.T) {
	svc, _ := newNoteServiceForTest(newMockNoteRepo())

	_, err := svc.ToggleLike(context.Background(), 42, 5)
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
}

func TestExportPDFRecordsDownload(t *testing.T) {
	repo := newMockNoteRepo()
	repo.put(&repositories.NoteDetails{
		ID: 3, SubCategoryID: 1, AuthorID: 7,
		Title: "Goroutines", Slug: "goroutines", Content: "Some content worth reading.", IsPublished: true,
	})
	svc, downloads := newNoteServiceForTest(repo)

	pdf, filename, err := svc.ExportPDF(context.Background(), "goroutines", 5, "NotesFind")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "goroutines.pdf", filename)
	require.Len(t, downloads.recorded, 1)
	assert.Equal(t, [2]int64{5, 3}, downloads.recorded[0])
}

func TestExportPDFUnpublishedNote(t *testing.T) {
	repo := newMockNoteRepo()
	repo.put(&repositories.NoteDetails{
		ID: 3, SubCategoryID: 1, AuthorID: 7,
		Title: "Draft", Slug: "draft", Content: "Not ready.", IsPublished: false,
	})
	svc, downloads := newNoteServiceForTest(repo)

	_, _, err := svc.ExportPDF(context.Background(), "draft", 5, "NotesFind")
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
	assert.Empty(t, downloads.recorded)
}
