package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
	"github.com/mkarvonen/placementtrack/internal/pkg/dberrors"
	"github.com/mkarvonen/placementtrack/internal/pkg/logger"
)

// UserRepository handles user account database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	var roleCode int16
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Name,
		&roleCode, &user.StudentID, &user.PasswordReset)
	if err != nil {
		return nil, err
	}
	user.Role = models.RoleFromCode(roleCode)
	return user, nil
}

// GetByEmail retrieves a user account by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select("user_id", "user_email", "user_password", "user_name",
		"user_role", "student_id", "password_reset").
		From("users").
		Where(squirrel.Eq{"user_email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by email SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user account by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select("user_id", "user_email", "user_password", "user_name",
		"user_role", "student_id", "password_reset").
		From("users").
		Where(squirrel.Eq{"user_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by id SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by id: %w", err)
	}

	return user, nil
}

// EmailExists checks whether an account with this email exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Eq{"user_email": email}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building email exists SQL")
		return false, fmt.Errorf("failed to build email exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Msg("Error executing email exists query")
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// Create inserts a new user account. The unique indexes on user_email and
// student_id are the authoritative guard against concurrent duplicates.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("user_email", "user_password", "user_name", "user_role", "student_id", "password_reset").
		Values(user.Email, user.Password, user.Name, user.Role.Code(), user.StudentID, user.PasswordReset).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolationOn(err, "users_student_id_key") {
			return 0, apperrors.ErrStudentAlreadyLinked
		}
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// UpdatePassword rewrites the stored bcrypt hash and the reset flag in
// one statement.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string, passwordReset bool) error {
	sql, args, err := r.sb.Update("users").
		SetMap(map[string]interface{}{
			"user_password":  hashedPassword,
			"password_reset": passwordReset,
		}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update password SQL")
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing update password query")
		return fmt.Errorf("error updating password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePasswordByEmail rewrites the stored hash for the self-service
// reset flow, which is keyed on email.
func (r *UserRepository) UpdatePasswordByEmail(ctx context.Context, email string, hashedPassword string) error {
	sql, args, err := r.sb.Update("users").
		Set("user_password", hashedPassword).
		Where(squirrel.Eq{"user_email": email}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update password by email SQL")
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update password by email query")
		return fmt.Errorf("error updating password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SetPasswordReset flags or clears the forced password change marker
func (r *UserRepository) SetPasswordReset(ctx context.Context, userID int64, flag bool) error {
	sql, args, err := r.sb.Update("users").
		Set("password_reset", flag).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set password reset SQL")
		return fmt.Errorf("failed to build set password reset query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing set password reset query")
		return fmt.Errorf("error setting password reset flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// ListNonAdmins retrieves every teacher and student account for the admin
// panel. Student accounts show the linked student's full name, teacher
// accounts their own stored name.
func (r *UserRepository) ListNonAdmins(ctx context.Context) ([]*dto.AdminUserRow, error) {
	sql, args, err := r.sb.Select(
		"u.user_id", "u.user_email", "u.user_role",
		"COALESCE(NULLIF(TRIM(CONCAT(s.st_name, ' ', COALESCE(s.st_s_name, ''))), ''), u.user_name)",
		"u.password_reset").
		From("users u").
		LeftJoin("students s ON s.student_id = u.student_id").
		Where(squirrel.NotEq{"u.user_role": models.RoleCodeAdmin}).
		OrderBy("u.user_email ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list users SQL")
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*dto.AdminUserRow{}
	for rows.Next() {
		row := &dto.AdminUserRow{}
		if err := rows.Scan(&row.UserID, &row.Email, &row.Role, &row.Name, &row.PasswordReset); err != nil {
			logger.Error().Err(err).Msg("Error scanning user row during list")
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, row)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating user rows")
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
