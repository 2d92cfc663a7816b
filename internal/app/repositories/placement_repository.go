package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
	"github.com/mkarvonen/placementtrack/internal/pkg/dberrors"
	"github.com/mkarvonen/placementtrack/internal/pkg/logger"
)

// PlacementRepository handles workplace (placement) database operations
type PlacementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List retrieves placement rows joined with student and company display
// names. When ownerStudentID is non-nil the result is restricted to that
// student's rows. Sorting is by student name only; descending when desc
// is true.
func (r *PlacementRepository) List(ctx context.Context, ownerStudentID *int64, desc bool) ([]*dto.PlacementRow, error) {
	order := "s.st_name ASC"
	if desc {
		order = "s.st_name DESC"
	}

	query := r.sb.Select(
		"w.row_id", "w.student_id", "w.company_id",
		"s.st_name", "s.st_s_name", "c.company_name",
		"w.boss_name", "w.boss_phone", "w.boss_email",
		"to_char(w.begin_date, 'YYYY-MM-DD')", "to_char(w.end_date, 'YYYY-MM-DD')",
		"w.lunch_money", "w.city", "w.status").
		From("workplace w").
		Join("students s ON s.student_id = w.student_id").
		Join("companies c ON c.company_id = w.company_id").
		OrderBy(order)

	if ownerStudentID != nil {
		query = query.Where(squirrel.Eq{"w.student_id": *ownerStudentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list placements SQL")
		return nil, fmt.Errorf("failed to build list placements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list placements query")
		return nil, fmt.Errorf("error querying placements: %w", err)
	}
	defer rows.Close()

	placements := []*dto.PlacementRow{}
	for rows.Next() {
		row := &dto.PlacementRow{}
		if err := rows.Scan(
			&row.RowID, &row.StudentID, &row.CompanyID,
			&row.StName, &row.StSurname, &row.Company,
			&row.BossName, &row.BossPhone, &row.BossEmail,
			&row.BeginDate, &row.EndDate,
			&row.LunchMoney, &row.City, &row.Status,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning placement row during list")
			return nil, fmt.Errorf("error scanning placement row: %w", err)
		}
		placements = append(placements, row)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating placement rows")
		return nil, fmt.Errorf("error iterating placement rows: %w", err)
	}

	return placements, nil
}

// Create inserts a new placement row. A foreign key violation means the
// client referenced a student or company that does not exist.
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) (int64, error) {
	sql, args, err := r.sb.Insert("workplace").
		Columns("student_id", "company_id", "boss_name", "boss_phone", "boss_email",
			"begin_date", "end_date", "lunch_money", "city", "status").
		Values(placement.StudentID, placement.CompanyID, placement.BossName,
			placement.BossPhone, placement.BossEmail, placement.BeginDate,
			placement.EndDate, placement.LunchMoney, placement.City, placement.Status).
		Suffix("RETURNING row_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create placement SQL")
		return 0, fmt.Errorf("failed to build create placement query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUnknownReference
		}
		logger.Error().Err(err).Msg("Error executing create placement query")
		return 0, fmt.Errorf("error creating placement: %w", err)
	}

	return id, nil
}

// Update rewrites the editable columns of a placement row. When
// ownerStudentID is non-nil the update additionally requires the row to
// belong to that student, so a student cannot touch foreign rows.
func (r *PlacementRepository) Update(ctx context.Context, placement *models.Placement, ownerStudentID *int64) error {
	query := r.sb.Update("workplace").
		SetMap(map[string]interface{}{
			"company_id":  placement.CompanyID,
			"boss_name":   placement.BossName,
			"boss_phone":  placement.BossPhone,
			"boss_email":  placement.BossEmail,
			"begin_date":  placement.BeginDate,
			"end_date":    placement.EndDate,
			"lunch_money": placement.LunchMoney,
			"city":        placement.City,
			"status":      placement.Status,
		}).
		Where(squirrel.Eq{"row_id": placement.RowID})

	if ownerStudentID != nil {
		query = query.Where(squirrel.Eq{"student_id": *ownerStudentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update placement SQL")
		return fmt.Errorf("failed to build update placement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUnknownReference
		}
		logger.Error().Err(err).Int64("rowID", placement.RowID).Msg("Error executing update placement query")
		return fmt.Errorf("error updating placement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Missing row and foreign row are indistinguishable on purpose
		return apperrors.ErrPlacementNotFound
	}

	return nil
}

// DeleteByID deletes a placement row by primary key, optionally
// constrained to the owning student.
func (r *PlacementRepository) DeleteByID(ctx context.Context, rowID int64, ownerStudentID *int64) error {
	query := r.sb.Delete("workplace").
		Where(squirrel.Eq{"row_id": rowID})

	if ownerStudentID != nil {
		query = query.Where(squirrel.Eq{"student_id": *ownerStudentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete placement SQL")
		return fmt.Errorf("failed to build delete placement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("rowID", rowID).Msg("Error executing delete placement query")
		return fmt.Errorf("error deleting placement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return nil
}
