package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/services"
	"github.com/Amber-bisht/notesfind-sub000/internal/middleware"
)

// RankController answers the rank-availability preflight used by the
// admin forms.
type RankController struct {
	rankService *services.RankService
}

// NewRankController creates a new RankController.
func NewRankController(rankService *services.RankService) *RankController {
	return &RankController{rankService: rankService}
}

// CheckRank reports whether a rank is currently free.
// @Summary Check rank availability
// @Description Advisory only; the write itself can still conflict
// @Tags ranks
// @Produce json
// @Security BearerAuth
// @Param type query string true "category, subcategory or note"
// @Param rank query int true "Rank to check"
// @Param scopeId query int false "Parent id, required for subcategory and note"
// @Param excludeId query int false "Entity id to ignore (when editing)"
// @Success 200 {object} dto.APIResponse{data=dto.RankAvailabilityResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /ranks/check [get]
func (c *RankController) CheckRank(ctx *gin.Context) {
	entity := models.RankEntity(ctx.Query("type"))

	rank, err := strconv.Atoi(ctx.Query("rank"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rank")
		errorDetail = errorDetail.WithDetails("rank must be a number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var scopeID, excludeID *int64
	if raw := ctx.Query("scopeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scopeId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		scopeID = &id
	}
	if raw := ctx.Query("excludeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid excludeId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		excludeID = &id
	}

	available, err := c.rankService.CheckAvailability(ctx, entity, rank, scopeID, excludeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.RankAvailabilityResponse{Available: available},
		Timestamp: time.Now(),
	})
}
