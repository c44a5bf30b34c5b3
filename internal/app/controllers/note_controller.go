package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/repositories"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/services"
	"github.com/Amber-bisht/notesfind-sub000/internal/middleware"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/helpers"
)

// NoteController handles note lifecycle, engagement and PDF export.
type NoteController struct {
	noteService *services.NoteService
	watermark   string
}

// NewNoteController creates a new NoteController. The watermark is
// stamped across every exported PDF page.
func NewNoteController(noteService *services.NoteService, watermark string) *NoteController {
	return &NoteController{
		noteService: noteService,
		watermark:   watermark,
	}
}

func requireCaller(ctx *gin.Context) (int64, models.Role, bool) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, "", false
	}
	role, _ := middleware.CurrentRole(ctx)
	return userID, role, true
}

// CreateNote publishes a new note authored by the caller.
// @Summary Create a new note
// @Description The authenticated user becomes the author; the payload cannot assign authorship
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNoteRequest true "Note information"
// @Success 201 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or uniqueness conflict"
// @Router /notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	userID, _, ok := requireCaller(ctx)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid note data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	note, err := c.noteService.CreateNote(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      note,
		Timestamp: time.Now(),
	})
}

// ListNotes lists published notes with pagination and an optional
// subCategoryId filter.
// @Summary List notes
// @Tags notes
// @Produce json
// @Param subCategoryId query int false "Filter by subcategory"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.NoteListResponse}
// @Router /notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	params := repositories.ListNotesParams{
		PublishedOnly: true,
		Page:          page,
		Size:          size,
	}
	if raw := ctx.Query("subCategoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid subCategoryId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		params.SubCategoryID = &id
	}

	// Editors see drafts too.
	if role, ok := middleware.CurrentRole(ctx); ok && (role == models.RoleAdmin || role == models.RolePublisher) {
		params.PublishedOnly = false
	}

	list, err := c.noteService.ListNotes(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      list,
		Timestamp: time.Now(),
	})
}

// GetNoteByID retrieves a note by ID. Unpublished notes resolve only for
// their author or an admin.
func (c *NoteController) GetNoteByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Anonymous callers carry a zero identity; drafts stay hidden.
	callerID, _ := middleware.CurrentUserID(ctx)
	role, _ := middleware.CurrentRole(ctx)

	note, err := c.noteService.GetNoteByID(ctx, id, callerID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      note,
		Timestamp: time.Now(),
	})
}

// GetNoteBySlug retrieves a published note by slug and counts the view.
func (c *NoteController) GetNoteBySlug(ctx *gin.Context) {
	note, err := c.noteService.GetNoteBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      note,
		Timestamp: time.Now(),
	})
}

// UpdateNote applies a merge-patch after an ownership check.
// @Summary Update note
// @Description Admins can edit any note; publishers only their own
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body dto.UpdateNoteRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /notes/{id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	userID, role, ok := requireCaller(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid note data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	note, err := c.noteService.UpdateNote(ctx, id, userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      note,
		Timestamp: time.Now(),
	})
}

// DeleteNote removes a note after an ownership check.
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	userID, role, ok := requireCaller(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.noteService.DeleteNote(ctx, id, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"message": "note deleted"},
		Timestamp: time.Now(),
	})
}

// ToggleLike flips the caller's like on a note.
// @Summary Toggle like
// @Tags notes
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.LikeResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /notes/{id}/like [post]
func (c *NoteController) ToggleLike(ctx *gin.Context) {
	userID, _, ok := requireCaller(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	result, err := c.noteService.ToggleLike(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// DownloadPDF streams the note as a watermarked PDF and records the
// download against the caller.
// @Summary Download note as PDF
// @Tags notes
// @Security BearerAuth
// @Produce application/pdf
// @Param slug path string true "Note slug"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /notes/slug/{slug}/pdf [get]
func (c *NoteController) DownloadPDF(ctx *gin.Context) {
	userID, _, ok := requireCaller(ctx)
	if !ok {
		return
	}

	pdf, filename, err := c.noteService.ExportPDF(ctx, ctx.Param("slug"), userID, c.watermark)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
