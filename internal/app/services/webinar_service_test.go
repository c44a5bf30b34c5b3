package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
)

type mockWebinarRepo struct {
	webinars  map[int64]*models.Webinar
	attendees map[int64][]*models.WebinarAttendee
	nextID    int64
}

func newMockWebinarRepo(webinars ...*models.Webinar) *mockWebinarRepo {
	m := &mockWebinarRepo{
		webinars:  map[int64]*models.Webinar{},
		attendees: map[int64][]*models.WebinarAttendee{},
		nextID:    1,
	}
	for _, w := range webinars {
		m.webinars[w.ID] = w
		if w.ID >= m.nextID {
			m.nextID = w.ID + 1
		}
	}
	return m
}

func (m *mockWebinarRepo) Create(_ context.Context, webinar *models.Webinar) (int64, error) {
	webinar.ID = m.nextID
	m.nextID++
	m.webinars[webinar.ID] = webinar
	return webinar.ID, nil
}

func (m *mockWebinarRepo) GetByID(_ context.Context, id int64) (*models.Webinar, error) {
	w, ok := m.webinars[id]
	if !ok {
		return nil, apperrors.ErrWebinarNotFound
	}
	return w, nil
}

func (m *mockWebinarRepo) GetBySlug(_ context.Context, slug string) (*models.Webinar, error) {
	for _, w := range m.webinars {
		if w.Slug == slug {
			return w, nil
		}
	}
	return nil, apperrors.ErrWebinarNotFound
}

func (m *mockWebinarRepo) GetAll(_ context.Context) ([]*models.Webinar, error) {
	out := []*models.Webinar{}
	for _, w := range m.webinars {
		out = append(out, w)
	}
	return out, nil
}

func (m *mockWebinarRepo) Update(_ context.Context, webinar *models.Webinar) error {
	if _, ok := m.webinars[webinar.ID]; !ok {
		return apperrors.ErrWebinarNotFound
	}
	m.webinars[webinar.ID] = webinar
	return nil
}

func (m *mockWebinarRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.webinars[id]; !ok {
		return apperrors.ErrWebinarNotFound
	}
	delete(m.webinars, id)
	return nil
}

func (m *mockWebinarRepo) Join(_ context.Context, webinarID, userID int64) error {
	if _, ok := m.webinars[webinarID]; !ok {
		return apperrors.ErrWebinarNotFound
	}
	for _, a := range m.attendees[webinarID] {
		if a.UserID == userID {
			return nil
		}
	}
	m.attendees[webinarID] = append(m.attendees[webinarID], &models.WebinarAttendee{
		WebinarID: webinarID,
		UserID:    userID,
		Name:      "Attendee",
		Email:     "attendee@example.com",
		JoinedAt:  time.Now(),
	})
	return nil
}

func (m *mockWebinarRepo) Attendees(_ context.Context, webinarID int64) ([]*models.WebinarAttendee, error) {
	return m.attendees[webinarID], nil
}

func TestCreateWebinarRejectsBadSlug(t *testing.T) {
	svc := NewWebinarService(newMockWebinarRepo())

	_, err := svc.CreateWebinar(context.Background(), &dto.CreateWebinarRequest{
		Title: "Intro to Go",
		Slug:  "Intro To Go",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateWebinarMergePatch(t *testing.T) {
	speaker := "Rob"
	repo := newMockWebinarRepo(&models.Webinar{ID: 1, Title: "Intro to Go", Slug: "intro-to-go", Speaker: &speaker})
	svc := NewWebinarService(repo)

	title := "Intro to Go, Second Edition"
	webinar, err := svc.UpdateWebinar(context.Background(), 1, &dto.UpdateWebinarRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Intro to Go, Second Edition", webinar.Title)
	require.NotNil(t, webinar.Speaker)
	assert.Equal(t, "Rob", *webinar.Speaker)
}

func TestGetWebinarByID(t *testing.T) {
	repo := newMockWebinarRepo(&models.Webinar{ID: 1, Title: "Intro to Go", Slug: "intro-to-go"})
	svc := NewWebinarService(repo)

	webinar, err := svc.GetWebinarByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "intro-to-go", webinar.Slug)

	_, err = svc.GetWebinarByID(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrWebinarNotFound)
}

func TestJoinIsIdempotent(t *testing.T) {
	repo := newMockWebinarRepo(&models.Webinar{ID: 1, Title: "Intro to Go", Slug: "intro-to-go"})
	svc := NewWebinarService(repo)

	require.NoError(t, svc.Join(context.Background(), 1, 5))
	require.NoError(t, svc.Join(context.Background(), 1, 5))

	attendees, err := svc.Attendees(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, attendees, 1)
}

func TestJoinMissingWebinar(t *testing.T) {
	svc := NewWebinarService(newMockWebinarRepo())
	assert.ErrorIs(t, svc.Join(context.Background(), 9, 5), apperrors.ErrWebinarNotFound)
}

func TestAttendeesMissingWebinar(t *testing.T) {
	svc := NewWebinarService(newMockWebinarRepo())

	_, err := svc.Attendees(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrWebinarNotFound)
}

func TestExportAttendeesCSV(t *testing.T) {
	repo := newMockWebinarRepo(&models.Webinar{ID: 1, Title: "Intro to Go", Slug: "intro-to-go"})
	svc := NewWebinarService(repo)
	require.NoError(t, svc.Join(context.Background(), 1, 5))

	data, filename, err := svc.ExportAttendeesCSV(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "intro-to-go-attendees.csv", filename)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,email,joined_at", lines[0])
	assert.Contains(t, lines[1], "attendee@example.com")
}
