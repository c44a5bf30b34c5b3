package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/services"
	"github.com/Amber-bisht/notesfind-sub000/internal/middleware"
)

// WebinarController handles webinar scheduling, joining and attendee export.
type WebinarController struct {
	webinarService *services.WebinarService
}

// NewWebinarController creates a new WebinarController.
func NewWebinarController(webinarService *services.WebinarService) *WebinarController {
	return &WebinarController{webinarService: webinarService}
}

// CreateWebinar schedules a new webinar.
func (c *WebinarController) CreateWebinar(ctx *gin.Context) {
	var req dto.CreateWebinarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid webinar data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	webinar, err := c.webinarService.CreateWebinar(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      webinar,
		Timestamp: time.Now(),
	})
}

// GetAllWebinars lists webinars, soonest first.
func (c *WebinarController) GetAllWebinars(ctx *gin.Context) {
	webinars, err := c.webinarService.GetAllWebinars(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      webinars,
		Timestamp: time.Now(),
	})
}

// GetWebinarByID retrieves a webinar by ID.
func (c *WebinarController) GetWebinarByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	webinar, err := c.webinarService.GetWebinarByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      webinar,
		Timestamp: time.Now(),
	})
}

// GetWebinarBySlug retrieves a webinar by slug.
func (c *WebinarController) GetWebinarBySlug(ctx *gin.Context) {
	webinar, err := c.webinarService.GetWebinarBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      webinar,
		Timestamp: time.Now(),
	})
}

// UpdateWebinar applies a merge-patch to a webinar.
func (c *WebinarController) UpdateWebinar(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateWebinarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid webinar data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	webinar, err := c.webinarService.UpdateWebinar(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      webinar,
		Timestamp: time.Now(),
	})
}

// DeleteWebinar removes a webinar and its attendee list.
func (c *WebinarController) DeleteWebinar(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.webinarService.DeleteWebinar(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"message": "webinar deleted"},
		Timestamp: time.Now(),
	})
}

// Join registers the caller as an attendee.
// @Summary Join a webinar
// @Tags webinars
// @Security BearerAuth
// @Param id path int true "Webinar ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /webinars/{id}/attendees [post]
func (c *WebinarController) Join(ctx *gin.Context) {
	userID, _, ok := requireCaller(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.webinarService.Join(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"message": "joined webinar"},
		Timestamp: time.Now(),
	})
}

// Attendees lists the attendees of a webinar.
func (c *WebinarController) Attendees(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	attendees, err := c.webinarService.Attendees(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      attendees,
		Timestamp: time.Now(),
	})
}

// ExportAttendeesCSV streams the attendee list as a CSV attachment.
// @Summary Export attendees as CSV
// @Tags webinars
// @Security BearerAuth
// @Produce text/csv
// @Param id path int true "Webinar ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /webinars/{id}/export [get]
func (c *WebinarController) ExportAttendeesCSV(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	csvData, filename, err := c.webinarService.ExportAttendeesCSV(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "text/csv", csvData)
}
