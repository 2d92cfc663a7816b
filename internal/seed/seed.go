// Package seed creates the default data the application needs on first
// start. Admin accounts are never self-registered, so the single admin
// comes from configuration here.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/app/repositories"
	"github.com/mkarvonen/placementtrack/internal/config"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
	"github.com/mkarvonen/placementtrack/internal/pkg/auth"
)

// CreateDefaultAdmin ensures the configured admin account exists. It is
// a no-op when the email is already taken or when no admin credentials
// are configured.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Auth.AdminEmail == "" || cfg.Auth.AdminPassword == "" {
		lgr.Warn().Msg("No admin credentials configured, skipping admin seed")
		return nil
	}

	userRepo := repositories.NewUserRepository(dbPool)

	hashed, err := auth.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to hash admin password")
		return err
	}

	id, err := userRepo.Create(ctx, &models.User{
		Email:    cfg.Auth.AdminEmail,
		Password: hashed,
		Name:     "Administrator",
		Role:     models.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", cfg.Auth.AdminEmail).Msg("Admin account already exists")
			return nil
		}
		lgr.Error().Err(err).Msg("Failed to create admin account")
		return err
	}

	lgr.Info().Int64("userID", id).Msg("Default admin account created")
	return nil
}
