package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/services"
	"github.com/Amber-bisht/notesfind-sub000/internal/middleware"
)

// CategoryController handles category CRUD and public browsing.
type CategoryController struct {
	categoryService *services.CategoryService
}

// NewCategoryController creates a new CategoryController.
func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// parseIDParam reads a positive int64 path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateCategory handles category creation.
// @Summary Create a new category
// @Description Creates a category; name, slug and rank must each be unused
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCategoryRequest true "Category information"
// @Success 201 {object} dto.APIResponse{data=models.Category}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or uniqueness conflict"
// @Failure 403 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid category data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	category, err := c.categoryService.CreateCategory(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      category,
		Timestamp: time.Now(),
	})
}

// GetAllCategories lists every category in rank order.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Category}
// @Router /categories [get]
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	categories, err := c.categoryService.GetAllCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      categories,
		Timestamp: time.Now(),
	})
}

// GetCategoryByID retrieves a category by ID.
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse{data=models.Category}
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (c *CategoryController) GetCategoryByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	category, err := c.categoryService.GetCategoryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      category,
		Timestamp: time.Now(),
	})
}

// GetCategoryBySlug retrieves a category by slug and counts the view.
// @Summary Get category by slug
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} dto.APIResponse{data=models.Category}
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/slug/{slug} [get]
func (c *CategoryController) GetCategoryBySlug(ctx *gin.Context) {
	category, err := c.categoryService.GetCategoryBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      category,
		Timestamp: time.Now(),
	})
}

// UpdateCategory applies a merge-patch to a category.
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Category}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [put]
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid category data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	category, err := c.categoryService.UpdateCategory(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      category,
		Timestamp: time.Now(),
	})
}

// DeleteCategory removes a category.
// @Summary Delete category
// @Tags categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.categoryService.DeleteCategory(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"message": "category deleted"},
		Timestamp: time.Now(),
	})
}
