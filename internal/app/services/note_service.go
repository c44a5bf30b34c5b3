package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	appauth "github.com/Amber-bisht/notesfind-sub000/internal/app/auth"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/repositories"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/export"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/helpers"
)

type noteRepository interface {
	Create(ctx context.Context, note *models.Note) (int64, error)
	GetByID(ctx context.Context, id int64) (*repositories.NoteDetails, error)
	GetBySlug(ctx context.Context, slug string) (*repositories.NoteDetails, error)
	List(ctx context.Context, params repositories.ListNotesParams) ([]*repositories.NoteDetails, error)
	Count(ctx context.Context, params repositories.ListNotesParams) (int64, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id int64) error
	ToggleLike(ctx context.Context, noteID, userID int64) (bool, int64, error)
	LikedNoteIDs(ctx context.Context, userID int64) ([]int64, error)
}

type subCategoryGetter interface {
	GetByID(ctx context.Context, id int64) (*models.SubCategory, error)
}

type downloadRecorder interface {
	RecordDownload(ctx context.Context, userID, noteID int64) error
}

// NoteService handles note lifecycle, engagement and export.
type NoteService struct {
	noteRepo        noteRepository
	subCategoryRepo subCategoryGetter
	userRepo        downloadRecorder
	authz           *appauth.AuthorizationService
}

// NewNoteService creates a new note service instance.
func NewNoteService(noteRepo noteRepository, subCategoryRepo subCategoryGetter, userRepo downloadRecorder, authz *appauth.AuthorizationService) *NoteService {
	return &NoteService{
		noteRepo:        noteRepo,
		subCategoryRepo: subCategoryRepo,
		userRepo:        userRepo,
		authz:           authz,
	}
}

func noteResponse(details *repositories.NoteDetails) dto.NoteResponse {
	images := details.Images
	if images == nil {
		images = []string{}
	}
	return dto.NoteResponse{
		ID:            details.ID,
		SubCategoryID: details.SubCategoryID,
		Title:         details.Title,
		Slug:          details.Slug,
		Content:       details.Content,
		Images:        images,
		Rank:          details.Rank,
		IsPublished:   details.IsPublished,
		Views:         details.Views,
		LikesCount:    details.LikesCount,
		Author: &models.AuthorSummary{
			Name:       details.AuthorName,
			PictureURL: details.AuthorPicture,
		},
		CreatedAt: details.CreatedAt,
		UpdatedAt: details.UpdatedAt,
	}
}

// CreateNote stores a new note. The author is always the authenticated
// caller; nothing in the payload can assign it elsewhere.
func (s *NoteService) CreateNote(ctx context.Context, authorID int64, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if !helpers.IsValidSlug(req.Slug) {
		return nil, apperrors.NewValidationError("slug must be lowercase letters, digits and hyphens")
	}

	if _, err := s.subCategoryRepo.GetByID(ctx, req.SubCategoryID); err != nil {
		return nil, err
	}

	note := &models.Note{
		SubCategoryID: req.SubCategoryID,
		AuthorID:      authorID,
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		Images:        req.Images,
		Rank:          req.Rank,
		IsPublished:   req.IsPublished,
	}
	if note.Images == nil {
		note.Images = []string{}
	}

	id, err := s.noteRepo.Create(ctx, note)
	if err != nil {
		return nil, err
	}

	details, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := noteResponse(details)
	return &resp, nil
}

// GetNoteByID retrieves a note by ID. Drafts stay invisible to everyone
// but their author and admins; outsiders get the same NotFound as for a
// missing id.
func (s *NoteService) GetNoteByID(ctx context.Context, id, callerID int64, role models.Role) (*dto.NoteResponse, error) {
	details, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !details.IsPublished && role != models.RoleAdmin && details.AuthorID != callerID {
		return nil, apperrors.ErrNoteNotFound
	}
	resp := noteResponse(details)
	return &resp, nil
}

// GetNoteBySlug retrieves a published note by slug. The read counts as a
// view.
func (s *NoteService) GetNoteBySlug(ctx context.Context, slug string) (*dto.NoteResponse, error) {
	details, err := s.noteRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := noteResponse(details)
	return &resp, nil
}

// ListNotes returns one page of notes plus pagination metadata. The page
// and its total count are fetched concurrently.
func (s *NoteService) ListNotes(ctx context.Context, params repositories.ListNotesParams) (*dto.NoteListResponse, error) {
	var (
		notes []*repositories.NoteDetails
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		notes, err = s.noteRepo.List(gctx, params)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.noteRepo.Count(gctx, params)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		items = append(items, noteResponse(n))
	}

	return &dto.NoteListResponse{
		Notes:      items,
		Pagination: helpers.NewPaginationInfo(total, params.Page, params.Size),
	}, nil
}

// UpdateNote applies a merge-patch after an ownership check. Authorship
// is immutable; the request type has no author field and any authorId in
// the raw payload is dropped during binding.
func (s *NoteService) UpdateNote(ctx context.Context, id, userID int64, role models.Role, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if err := s.authz.ValidateNoteOwnership(ctx, id, userID, role); err != nil {
		return nil, err
	}

	details, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	note := &models.Note{
		ID:            details.ID,
		SubCategoryID: details.SubCategoryID,
		AuthorID:      details.AuthorID,
		Title:         details.Title,
		Slug:          details.Slug,
		Content:       details.Content,
		Images:        details.Images,
		Rank:          details.Rank,
		IsPublished:   details.IsPublished,
	}

	if req.SubCategoryID != nil && *req.SubCategoryID != note.SubCategoryID {
		if _, err := s.subCategoryRepo.GetByID(ctx, *req.SubCategoryID); err != nil {
			return nil, err
		}
		note.SubCategoryID = *req.SubCategoryID
	}
	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Slug != nil {
		if !helpers.IsValidSlug(*req.Slug) {
			return nil, apperrors.NewValidationError("slug must be lowercase letters, digits and hyphens")
		}
		note.Slug = *req.Slug
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Images != nil {
		note.Images = *req.Images
	}
	if req.Rank != nil {
		note.Rank = req.Rank
	}
	if req.IsPublished != nil {
		note.IsPublished = *req.IsPublished
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	updated, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := noteResponse(updated)
	return &resp, nil
}

// DeleteNote removes a note after an ownership check.
func (s *NoteService) DeleteNote(ctx context.Context, id, userID int64, role models.Role) error {
	if err := s.authz.ValidateNoteOwnership(ctx, id, userID, role); err != nil {
		return err
	}
	return s.noteRepo.Delete(ctx, id)
}

// ToggleLike flips the caller's like on a note and reports the new state.
func (s *NoteService) ToggleLike(ctx context.Context, noteID, userID int64) (*dto.LikeResponse, error) {
	liked, count, err := s.noteRepo.ToggleLike(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeResponse{LikesCount: count, IsLiked: liked}, nil
}

// RecordDownload notes that the user downloaded a note. Repeats for the
// same (user, note) pair are absorbed.
func (s *NoteService) RecordDownload(ctx context.Context, userID, noteID int64) error {
	if _, err := s.noteRepo.GetByID(ctx, noteID); err != nil {
		return err
	}
	return s.userRepo.RecordDownload(ctx, userID, noteID)
}

// LikedNoteIDs lists the ids of notes the user has liked.
func (s *NoteService) LikedNoteIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.noteRepo.LikedNoteIDs(ctx, userID)
}

// ExportPDF renders the published note as a watermarked PDF and records
// the download against the caller.
func (s *NoteService) ExportPDF(ctx context.Context, slug string, userID int64, watermark string) ([]byte, string, error) {
	details, err := s.noteRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, "", err
	}

	pdf, err := export.NotePDF(&models.Note{Title: details.Title, Content: details.Content}, watermark)
	if err != nil {
		return nil, "", err
	}

	if err := s.userRepo.RecordDownload(ctx, userID, details.ID); err != nil {
		return nil, "", err
	}

	return pdf, details.Slug + ".pdf", nil
}
