package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/app/services"
	"github.com/mkarvonen/placementtrack/internal/middleware"
)

// AdminController handles the admin panel operations
type AdminController struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// ListUsers returns every teacher and student account
// @Summary List user accounts
// @Description Returns every non-admin account with its derived display name and reset status. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AdminUserRow} "Account list"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.adminService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: users})
}

// ResetUserPassword flags an account for forced password change
// @Summary Flag a user for password reset
// @Description Marks an account so its next login is forced through the password change flow. Admin accounts cannot be targeted. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminResetPasswordRequest true "Target user id"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Reset flagged"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} dto.ErrorResponse "Not an admin or admin target"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/reset-user-password [post]
func (c *AdminController) ResetUserPassword(ctx *gin.Context) {
	var req dto.AdminResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.adminService.ResetUserPassword(ctx.Request.Context(), req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("targetUserID", req.UserID).Int64("adminID", middleware.GetUserID(ctx)).
		Msg("User flagged for password reset")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewSuccessResponse("Password reset flagged")})
}
