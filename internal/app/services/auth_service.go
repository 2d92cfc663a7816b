package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
	"github.com/mkarvonen/placementtrack/internal/pkg/auth"
)

// UserStore is the user account persistence the auth flows need
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string, passwordReset bool) error
	UpdatePasswordByEmail(ctx context.Context, email string, hashedPassword string) error
}

// TokenStore is the refresh token persistence
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenUser(ctx context.Context, token string) (int64, error)
	RevokeToken(ctx context.Context, token string) error
}

// StudentLookup resolves student rows during registration
type StudentLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// AuthService handles authentication, registration and the password flows
type AuthService struct {
	userStore    UserStore
	tokenStore   TokenStore
	studentStore StudentLookup
	jwtService   *auth.JWTService
	teacherCode  string
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userStore UserStore,
	tokenStore TokenStore,
	studentStore StudentLookup,
	jwtService *auth.JWTService,
	teacherCode string,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userStore:    userStore,
		tokenStore:   tokenStore,
		studentStore: studentStore,
		jwtService:   jwtService,
		teacherCode:  teacherCode,
		logger:       logger,
	}
}

// issueTokens generates and persists a token pair for a user
func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token pair")
		return nil, err
	}

	if err := s.tokenStore.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             int64(expiresIn),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: int64(refreshExpiresIn),
	}, nil
}

// Login authenticates a user by email and password. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := s.userStore.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		s.logger.Debug().Int64("userID", user.ID).Msg("Password mismatch on login")
		return nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		UserID:        user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          user.Role.Code(),
		StudentID:     user.StudentID,
		PasswordReset: user.PasswordReset,
		Token:         *tokens,
	}, nil
}

// Register creates a new teacher or student account. Teacher registration
// requires the shared registration code; student registration requires an
// existing, not-yet-linked student row. Admin accounts are seeded, never
// registered.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	role := models.RoleFromCode(req.Role)

	switch role {
	case models.RoleTeacher:
		if req.TeacherCode != s.teacherCode {
			return 0, apperrors.NewForbiddenError("invalid teacher registration code")
		}
	case models.RoleStudent:
		if req.StudentID == nil {
			return 0, apperrors.NewValidationError("student_id is required for student accounts")
		}
		if _, err := s.studentStore.GetByID(ctx, *req.StudentID); err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				return 0, apperrors.ErrStudentNotFound
			}
			return 0, err
		}
	default:
		return 0, apperrors.NewValidationError("role must be teacher or student")
	}

	// Friendly pre-check; the unique index on user_email is the real guard
	exists, err := s.userStore.EmailExists(ctx, req.Email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password during registration")
		return 0, err
	}

	user := &models.User{
		Email:    strings.TrimSpace(req.Email),
		Password: hashed,
		Name:     req.Name,
		Role:     role,
	}
	if role == models.RoleStudent {
		user.StudentID = req.StudentID
	}

	id, err := s.userStore.Create(ctx, user)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("userID", id).Int16("role", req.Role).Msg("User registered")
	return id, nil
}

// RefreshToken rotates a refresh token: the old token is revoked and a
// fresh pair is issued for the same user.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokenStore.GetTokenUser(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenStore.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// CheckEmail reports whether an account exists for the email
func (s *AuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	return s.userStore.EmailExists(ctx, strings.TrimSpace(email))
}

// ResetPasswordBySelf rewrites the password for the account with this
// email. The flow carries no ownership proof beyond knowing the address.
func (s *AuthService) ResetPasswordBySelf(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < auth.MinPasswordLength {
		return apperrors.NewValidationError("password must be at least 6 characters")
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password during reset")
		return err
	}

	return s.userStore.UpdatePasswordByEmail(ctx, strings.TrimSpace(email), hashed)
}

// ChangePassword completes the forced password change flow. It is only
// permitted while the account carries the password_reset marker, and the
// target must be the authenticated session's own account.
func (s *AuthService) ChangePassword(ctx context.Context, actorUserID, targetUserID int64, newPassword string) error {
	if actorUserID != targetUserID {
		return apperrors.NewForbiddenError("cannot change another user's password")
	}

	if len(newPassword) < auth.MinPasswordLength {
		return apperrors.NewValidationError("password must be at least 6 characters")
	}

	user, err := s.userStore.GetByID(ctx, targetUserID)
	if err != nil {
		return err
	}

	if !user.PasswordReset {
		return apperrors.ErrPasswordResetNotRequested
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", targetUserID).Msg("Failed to hash password during change")
		return err
	}

	// Clears the reset marker in the same statement
	if err := s.userStore.UpdatePassword(ctx, targetUserID, hashed, false); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", targetUserID).Msg("Forced password change completed")
	return nil
}
