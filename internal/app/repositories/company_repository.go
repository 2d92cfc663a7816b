package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
	"github.com/mkarvonen/placementtrack/internal/pkg/logger"
)

// CompanyRepository handles company database operations
type CompanyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new company row
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) (int64, error) {
	sql, args, err := r.sb.Insert("companies").
		Columns("company_name", "count_place", "tunnus", "address").
		Values(company.Name, company.Capacity, company.Tunnus, company.Address).
		Suffix("RETURNING company_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create company SQL")
		return 0, fmt.Errorf("failed to build create company query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create company query")
		return 0, fmt.Errorf("error creating company: %w", err)
	}

	return id, nil
}

// ListRefs retrieves the minimal company rows used to populate selection inputs
func (r *CompanyRepository) ListRefs(ctx context.Context) ([]*models.Company, error) {
	sql, args, err := r.sb.Select("company_id", "company_name").
		From("companies").
		OrderBy("company_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list companies SQL")
		return nil, fmt.Errorf("failed to build list companies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list companies query")
		return nil, fmt.Errorf("error querying companies: %w", err)
	}
	defer rows.Close()

	companies := []*models.Company{}
	for rows.Next() {
		company := &models.Company{}
		if err := rows.Scan(&company.ID, &company.Name); err != nil {
			logger.Error().Err(err).Msg("Error scanning company row during list")
			return nil, fmt.Errorf("error scanning company row: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating company rows")
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}

	return companies, nil
}

// ListFull retrieves all companies with every column, for the management view
func (r *CompanyRepository) ListFull(ctx context.Context) ([]*models.Company, error) {
	sql, args, err := r.sb.Select("company_id", "company_name", "count_place", "tunnus", "address").
		From("companies").
		OrderBy("company_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list full companies SQL")
		return nil, fmt.Errorf("failed to build list full companies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list full companies query")
		return nil, fmt.Errorf("error querying companies: %w", err)
	}
	defer rows.Close()

	companies := []*models.Company{}
	for rows.Next() {
		company := &models.Company{}
		if err := rows.Scan(&company.ID, &company.Name, &company.Capacity, &company.Tunnus, &company.Address); err != nil {
			logger.Error().Err(err).Msg("Error scanning company row during list full")
			return nil, fmt.Errorf("error scanning company row: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating company rows")
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}

	return companies, nil
}

// GetByID retrieves a company by id
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	sql, args, err := r.sb.Select("company_id", "company_name", "count_place", "tunnus", "address").
		From("companies").
		Where(squirrel.Eq{"company_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get company SQL")
		return nil, fmt.Errorf("failed to build get company query: %w", err)
	}

	company := &models.Company{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&company.ID, &company.Name, &company.Capacity, &company.Tunnus, &company.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		logger.Error().Err(err).Int64("companyID", id).Msg("Error scanning company row")
		return nil, fmt.Errorf("error getting company by id: %w", err)
	}

	return company, nil
}

// Update rewrites every editable column of a company row
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	sql, args, err := r.sb.Update("companies").
		SetMap(map[string]interface{}{
			"company_name": company.Name,
			"count_place":  company.Capacity,
			"tunnus":       company.Tunnus,
			"address":      company.Address,
		}).
		Where(squirrel.Eq{"company_id": company.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update company SQL")
		return fmt.Errorf("failed to build update company query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("companyID", company.ID).Msg("Error executing update company query")
		return fmt.Errorf("error updating company: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}
