package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/services"
	"github.com/Amber-bisht/notesfind-sub000/internal/middleware"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/helpers"
)

// AdminController handles the dashboard and the user directory.
type AdminController struct {
	adminService *services.AdminService
	userService  *services.UserService
}

// NewAdminController creates a new AdminController.
func NewAdminController(adminService *services.AdminService, userService *services.UserService) *AdminController {
	return &AdminController{
		adminService: adminService,
		userService:  userService,
	}
}

// Stats returns the catalog-wide dashboard counters.
// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats}
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/stats [get]
func (c *AdminController) Stats(ctx *gin.Context) {
	stats, err := c.adminService.DashboardStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}

// ListUsers returns one page of the user directory.
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	users, total, err := c.userService.ListUsers(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      users,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// UpdateUserRole sets another user's role.
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateRoleRequest true "New role"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{id}/role [put]
func (c *AdminController) UpdateUserRole(ctx *gin.Context) {
	actorID, _, ok := requireCaller(ctx)
	if !ok {
		return
	}

	targetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid role data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.UpdateRole(ctx, actorID, targetID, req.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}
