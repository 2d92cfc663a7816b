package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/pkg/logger"
)

// ReportRepository runs the read-only reporting joins
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// PlacementReport joins every placement with its company and student.
// When ownerStudentID is non-nil the report covers only that student.
func (r *ReportRepository) PlacementReport(ctx context.Context, ownerStudentID *int64) ([]*dto.PlacementReportRow, error) {
	query := r.sb.Select(
		"c.company_name", "c.tunnus", "c.address",
		"s.st_name", "s.st_s_name", "s.st_group",
		"w.boss_name", "w.boss_phone", "w.boss_email").
		From("workplace w").
		Join("students s ON s.student_id = w.student_id").
		Join("companies c ON c.company_id = w.company_id").
		OrderBy("c.company_name ASC", "s.st_name ASC")

	if ownerStudentID != nil {
		query = query.Where(squirrel.Eq{"w.student_id": *ownerStudentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building placement report SQL")
		return nil, fmt.Errorf("failed to build placement report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing placement report query")
		return nil, fmt.Errorf("error querying placement report: %w", err)
	}
	defer rows.Close()

	report := []*dto.PlacementReportRow{}
	for rows.Next() {
		row := &dto.PlacementReportRow{}
		if err := rows.Scan(
			&row.CompanyName, &row.Tunnus, &row.Address,
			&row.StName, &row.StSurname, &row.StGroup,
			&row.BossName, &row.BossPhone, &row.BossEmail,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning placement report row")
			return nil, fmt.Errorf("error scanning placement report row: %w", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating placement report rows")
		return nil, fmt.Errorf("error iterating placement report rows: %w", err)
	}

	return report, nil
}

// CompanyReport lists every company with the count of placements
// hosted there. Companies without placements appear with a zero count.
func (r *ReportRepository) CompanyReport(ctx context.Context) ([]*dto.CompanyReportRow, error) {
	sql, args, err := r.sb.Select(
		"c.company_name", "c.tunnus", "c.address",
		"COUNT(w.row_id) AS student_count").
		From("companies c").
		LeftJoin("workplace w ON w.company_id = c.company_id").
		GroupBy("c.company_id", "c.company_name", "c.tunnus", "c.address").
		OrderBy("c.company_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building company report SQL")
		return nil, fmt.Errorf("failed to build company report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing company report query")
		return nil, fmt.Errorf("error querying company report: %w", err)
	}
	defer rows.Close()

	report := []*dto.CompanyReportRow{}
	for rows.Next() {
		row := &dto.CompanyReportRow{}
		if err := rows.Scan(&row.CompanyName, &row.Tunnus, &row.Address, &row.StudentCount); err != nil {
			logger.Error().Err(err).Msg("Error scanning company report row")
			return nil, fmt.Errorf("error scanning company report row: %w", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating company report rows")
		return nil, fmt.Errorf("error iterating company report rows: %w", err)
	}

	return report, nil
}
