package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
)

// AdminUserStore is the account persistence the admin panel needs
type AdminUserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ListNonAdmins(ctx context.Context) ([]*dto.AdminUserRow, error)
	SetPasswordReset(ctx context.Context, userID int64, flag bool) error
}

// AdminService handles the admin panel operations
type AdminService struct {
	userStore AdminUserStore
	logger    zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(userStore AdminUserStore, logger zerolog.Logger) *AdminService {
	return &AdminService{userStore: userStore, logger: logger}
}

// ListUsers returns every teacher and student account
func (s *AdminService) ListUsers(ctx context.Context) ([]*dto.AdminUserRow, error) {
	return s.userStore.ListNonAdmins(ctx)
}

// ResetUserPassword flags an account for forced password change on next
// login. Admin accounts cannot be targeted.
func (s *AdminService) ResetUserPassword(ctx context.Context, userID int64) error {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role == models.RoleAdmin {
		return apperrors.NewForbiddenError("admin accounts cannot be reset")
	}

	if err := s.userStore.SetPasswordReset(ctx, userID, true); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("Password reset flagged by admin")
	return nil
}
