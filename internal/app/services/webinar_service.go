package services

import (
	"bytes"
	"context"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/export"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/helpers"
)

type webinarRepository interface {
	Create(ctx context.Context, webinar *models.Webinar) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Webinar, error)
	GetBySlug(ctx context.Context, slug string) (*models.Webinar, error)
	GetAll(ctx context.Context) ([]*models.Webinar, error)
	Update(ctx context.Context, webinar *models.Webinar) error
	Delete(ctx context.Context, id int64) error
	Join(ctx context.Context, webinarID, userID int64) error
	Attendees(ctx context.Context, webinarID int64) ([]*models.WebinarAttendee, error)
}

// WebinarService handles webinar scheduling, attendance and export.
type WebinarService struct {
	webinarRepo webinarRepository
}

// NewWebinarService creates a new webinar service instance.
func NewWebinarService(webinarRepo webinarRepository) *WebinarService {
	return &WebinarService{webinarRepo: webinarRepo}
}

// CreateWebinar validates and stores a new webinar.
func (s *WebinarService) CreateWebinar(ctx context.Context, req *dto.CreateWebinarRequest) (*models.Webinar, error) {
	if !helpers.IsValidSlug(req.Slug) {
		return nil, apperrors.NewValidationError("slug must be lowercase letters, digits and hyphens")
	}

	webinar := &models.Webinar{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Speaker:     req.Speaker,
		ImageURL:    req.ImageURL,
		StartsAt:    req.StartsAt,
	}

	if _, err := s.webinarRepo.Create(ctx, webinar); err != nil {
		return nil, err
	}

	return webinar, nil
}

// GetWebinarByID retrieves a webinar by ID.
func (s *WebinarService) GetWebinarByID(ctx context.Context, id int64) (*models.Webinar, error) {
	return s.webinarRepo.GetByID(ctx, id)
}

// GetWebinarBySlug retrieves a webinar by slug.
func (s *WebinarService) GetWebinarBySlug(ctx context.Context, slug string) (*models.Webinar, error) {
	return s.webinarRepo.GetBySlug(ctx, slug)
}

// GetAllWebinars returns all webinars, soonest first.
func (s *WebinarService) GetAllWebinars(ctx context.Context) ([]*models.Webinar, error) {
	return s.webinarRepo.GetAll(ctx)
}

// UpdateWebinar applies a merge-patch to an existing webinar.
func (s *WebinarService) UpdateWebinar(ctx context.Context, id int64, req *dto.UpdateWebinarRequest) (*models.Webinar, error) {
	webinar, err := s.webinarRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		webinar.Title = *req.Title
	}
	if req.Slug != nil {
		if !helpers.IsValidSlug(*req.Slug) {
			return nil, apperrors.NewValidationError("slug must be lowercase letters, digits and hyphens")
		}
		webinar.Slug = *req.Slug
	}
	if req.Description != nil {
		webinar.Description = req.Description
	}
	if req.Speaker != nil {
		webinar.Speaker = req.Speaker
	}
	if req.ImageURL != nil {
		webinar.ImageURL = req.ImageURL
	}
	if req.StartsAt != nil {
		webinar.StartsAt = *req.StartsAt
	}

	if err := s.webinarRepo.Update(ctx, webinar); err != nil {
		return nil, err
	}

	return webinar, nil
}

// DeleteWebinar removes a webinar and its attendee list.
func (s *WebinarService) DeleteWebinar(ctx context.Context, id int64) error {
	return s.webinarRepo.Delete(ctx, id)
}

// Join registers the caller as an attendee; joining twice is harmless.
func (s *WebinarService) Join(ctx context.Context, webinarID, userID int64) error {
	return s.webinarRepo.Join(ctx, webinarID, userID)
}

// Attendees returns the attendee list of a webinar.
func (s *WebinarService) Attendees(ctx context.Context, webinarID int64) ([]*models.WebinarAttendee, error) {
	if _, err := s.webinarRepo.GetByID(ctx, webinarID); err != nil {
		return nil, err
	}
	return s.webinarRepo.Attendees(ctx, webinarID)
}

// ExportAttendeesCSV renders the attendee list as a CSV document and
// returns it with a filename derived from the webinar slug.
func (s *WebinarService) ExportAttendeesCSV(ctx context.Context, webinarID int64) ([]byte, string, error) {
	webinar, err := s.webinarRepo.GetByID(ctx, webinarID)
	if err != nil {
		return nil, "", err
	}

	attendees, err := s.webinarRepo.Attendees(ctx, webinarID)
	if err != nil {
		return nil, "", err
	}

	rows := make([]models.WebinarAttendee, 0, len(attendees))
	for _, a := range attendees {
		rows = append(rows, *a)
	}

	var buf bytes.Buffer
	if err := export.WriteAttendeesCSV(&buf, rows); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), webinar.Slug + "-attendees.csv", nil
}
