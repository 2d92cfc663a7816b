// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/app/services"
	"github.com/mkarvonen/placementtrack/internal/middleware"
)

// AuthController handles authentication and account related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles user login
// @Summary Log in
// @Description Authenticates a user by email and password and issues a session token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", resp.UserID).Int16("role", resp.Role).Msg("User logged in")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// Register handles account self-registration
// @Summary Register a new user account
// @Description Creates a teacher or student account. Teacher registration requires the shared registration code; student registration links an existing student row.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or role"
// @Failure 403 {object} dto.ErrorResponse "Invalid teacher registration code"
// @Failure 404 {object} dto.ErrorResponse "Referenced student not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists or student already linked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /add-user [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if _, err := c.authService.Register(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: dto.NewSuccessResponse("User registered")})
}

// RefreshToken rotates a session token pair
// @Summary Refresh session tokens
// @Description Exchanges a valid refresh token for a fresh token pair. The old refresh token is revoked.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "New token pair"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Token unknown, revoked or expired"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	tokens, err := c.authService.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tokens})
}

// CheckEmail reports whether an account exists for an email
// @Summary Check email existence
// @Description Returns whether an account exists for the given email. Used by the password reset form.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CheckEmailRequest true "Email to check"
// @Success 200 {object} dto.APIResponse{data=dto.CheckEmailResponse} "Existence flag"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /check-email [post]
func (c *AuthController) CheckEmail(ctx *gin.Context) {
	var req dto.CheckEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	exists, err := c.authService.CheckEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.CheckEmailResponse{Exists: exists}})
}

// ResetPassword handles the self-service password reset
// @Summary Reset password by email
// @Description Rewrites the password for the account with this email.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email and new password"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Password reset"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or too short password"
// @Failure 404 {object} dto.ErrorResponse "No account for this email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.authService.ResetPasswordBySelf(ctx.Request.Context(), req.Email, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Msg("Self-service password reset completed")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewSuccessResponse("Password reset")})
}

// ChangePassword completes the forced password change flow
// @Summary Change own password
// @Description Completes the forced password change. Allowed only while the account is flagged for reset, and only for the session's own account.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Target user and new password"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Password changed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or too short password"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} dto.ErrorResponse "No pending reset or foreign account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/change-password [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	actorID := middleware.GetUserID(ctx)
	if err := c.authService.ChangePassword(ctx.Request.Context(), actorID, req.UserID, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewSuccessResponse("Password changed")})
}
