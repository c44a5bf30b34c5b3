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

// SubCategoryController handles subcategory CRUD and public browsing.
type SubCategoryController struct {
	subCategoryService *services.SubCategoryService
}

// NewSubCategoryController creates a new SubCategoryController.
func NewSubCategoryController(subCategoryService *services.SubCategoryService) *SubCategoryController {
	return &SubCategoryController{subCategoryService: subCategoryService}
}

// CreateSubCategory handles subcategory creation under an existing category.
func (c *SubCategoryController) CreateSubCategory(ctx *gin.Context) {
	var req dto.CreateSubCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid subcategory data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sub, err := c.subCategoryService.CreateSubCategory(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      sub,
		Timestamp: time.Now(),
	})
}

// GetAllSubCategories lists subcategories, optionally filtered by the
// categoryId query parameter.
func (c *SubCategoryController) GetAllSubCategories(ctx *gin.Context) {
	var categoryID *int64
	if raw := ctx.Query("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid categoryId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		categoryID = &id
	}

	subs, err := c.subCategoryService.GetAllSubCategories(ctx, categoryID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subs,
		Timestamp: time.Now(),
	})
}

// GetSubCategoryByID retrieves a subcategory by ID.
func (c *SubCategoryController) GetSubCategoryByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	sub, err := c.subCategoryService.GetSubCategoryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sub,
		Timestamp: time.Now(),
	})
}

// GetSubCategoryBySlug retrieves a subcategory by slug and counts the view.
func (c *SubCategoryController) GetSubCategoryBySlug(ctx *gin.Context) {
	sub, err := c.subCategoryService.GetSubCategoryBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sub,
		Timestamp: time.Now(),
	})
}

// UpdateSubCategory applies a merge-patch to a subcategory.
func (c *SubCategoryController) UpdateSubCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid subcategory data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sub, err := c.subCategoryService.UpdateSubCategory(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sub,
		Timestamp: time.Now(),
	})
}

// DeleteSubCategory removes a subcategory.
func (c *SubCategoryController) DeleteSubCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.subCategoryService.DeleteSubCategory(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"message": "subcategory deleted"},
		Timestamp: time.Now(),
	})
}
