package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/middleware"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/filestorage"
)

// UploadController handles media uploads and the signed direct-upload
// handshake.
type UploadController struct {
	storage *filestorage.LocalStorage
	signer  *filestorage.Signer
}

// NewUploadController creates a new UploadController.
func NewUploadController(storage *filestorage.LocalStorage, signer *filestorage.Signer) *UploadController {
	return &UploadController{
		storage: storage,
		signer:  signer,
	}
}

// Upload stores a multipart file and returns its public URL.
// @Summary Upload a media file
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing file, bad extension or too large"
// @Router /uploads [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file provided")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	url, err := c.storage.SaveFile(fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.UploadResponse{URL: url},
		Timestamp: time.Now(),
	})
}

// Delete removes a previously uploaded file by its public URL.
// @Summary Delete an uploaded media file
// @Tags uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "URL outside the upload namespace"
// @Router /uploads [delete]
func (c *UploadController) Delete(ctx *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid delete request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.storage.DeleteFile(req.URL); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"message": "file deleted"},
		Timestamp: time.Now(),
	})
}

// Signature issues the HMAC handshake for direct client uploads.
// @Summary Get a signed upload handshake
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SignedUploadResponse}
// @Router /uploads/signature [get]
func (c *UploadController) Signature(ctx *gin.Context) {
	timestamp := time.Now().Unix()

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SignedUploadResponse{
			Timestamp: timestamp,
			Signature: c.signer.Sign(timestamp),
		},
		Timestamp: time.Now(),
	})
}
