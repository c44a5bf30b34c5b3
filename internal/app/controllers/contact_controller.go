package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/services"
	"github.com/Amber-bisht/notesfind-sub000/internal/middleware"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/helpers"
)

// ContactController handles the public contact form and the admin inbox.
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new ContactController.
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// Submit accepts a captcha-gated contact or content-request message.
// @Summary Submit a contact message
// @Description The captcha token is verified upstream before the message is stored
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=models.ContactMessage}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or rejected captcha"
// @Failure 502 {object} dto.ErrorResponse "Captcha provider unreachable"
// @Router /contact [post]
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid contact data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	msg, err := c.contactService.Submit(ctx, &req, ctx.ClientIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      msg,
		Timestamp: time.Now(),
	})
}

// List returns one page of the inbox, filterable by kind and resolution.
func (c *ContactController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var kind *models.MessageKind
	if raw := ctx.Query("kind"); raw != "" {
		k := models.MessageKind(raw)
		if !k.IsValid() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid kind")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		kind = &k
	}

	var resolved *bool
	if raw := ctx.Query("resolved"); raw != "" {
		r := raw == "true"
		resolved = &r
	}

	messages, total, err := c.contactService.List(ctx, kind, resolved, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      messages,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// MarkResolved flips a message's resolved flag.
func (c *ContactController) MarkResolved(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req struct {
		Resolved bool `json:"resolved"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.contactService.MarkResolved(ctx, id, req.Resolved); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"message": "message updated"},
		Timestamp: time.Now(),
	})
}

// Delete removes a message from the inbox.
func (c *ContactController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.contactService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"message": "message deleted"},
		Timestamp: time.Now(),
	})
}
