package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amber-bisht/notesfind-sub000/internal/app/models/dto"
	"github.com/Amber-bisht/notesfind-sub000/internal/app/services"
	"github.com/Amber-bisht/notesfind-sub000/internal/middleware"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/auth"
)

// AuthController handles the Google login flow and the session lifecycle.
type AuthController struct {
	authService  *services.AuthService
	secureCookie bool
}

// NewAuthController creates a new AuthController. secureCookie should be
// set whenever the deployment terminates TLS.
func NewAuthController(authService *services.AuthService, secureCookie bool) *AuthController {
	return &AuthController{
		authService:  authService,
		secureCookie: secureCookie,
	}
}

// Login exchanges a Google authorization code for a session cookie.
// @Summary Login with Google
// @Description Completes the OAuth code exchange and starts a 7-day session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Google authorization code"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 502 {object} dto.ErrorResponse "Google rejected the exchange"
// @Router /auth/google [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, token, err := c.authService.Login(ctx, req.Code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	auth.SetSessionCookie(ctx, token, c.authService.SessionTTL(), c.secureCookie)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewUserResponse(user),
		Timestamp: time.Now(),
	})
}

// Logout clears the session cookie. The token itself simply expires.
// @Summary Logout
// @Tags auth
// @Success 200 {object} dto.APIResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	auth.ClearSessionCookie(ctx, c.secureCookie)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"message": "logged out"},
		Timestamp: time.Now(),
	})
}

// Me returns the account behind the current session.
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.authService.CurrentUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewUserResponse(user),
		Timestamp: time.Now(),
	})
}
