package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
)

// CompanyStore is the company persistence the reference data flows need
type CompanyStore interface {
	Create(ctx context.Context, company *models.Company) (int64, error)
	ListRefs(ctx context.Context) ([]*models.Company, error)
	ListFull(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
}

// CompanyService handles company reference data operations
type CompanyService struct {
	companyStore CompanyStore
	logger       zerolog.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyStore CompanyStore, logger zerolog.Logger) *CompanyService {
	return &CompanyService{companyStore: companyStore, logger: logger}
}

// CreateCompany adds a new company row. Students may add companies too,
// so they can register the host they found themselves.
func (s *CompanyService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (int64, error) {
	id, err := s.companyStore.Create(ctx, &models.Company{
		Name:     req.Name,
		Capacity: req.Capacity,
		Tunnus:   req.Tunnus,
		Address:  req.Address,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("companyID", id).Msg("Company created")
	return id, nil
}

// ListRefs returns the minimal company rows for selection inputs
func (s *CompanyService) ListRefs(ctx context.Context) ([]*dto.CompanyRef, error) {
	companies, err := s.companyStore.ListRefs(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]*dto.CompanyRef, 0, len(companies))
	for _, c := range companies {
		refs = append(refs, &dto.CompanyRef{ID: c.ID, Name: c.Name})
	}
	return refs, nil
}

// ListFull returns every company row for the management view
func (s *CompanyService) ListFull(ctx context.Context) ([]*models.Company, error) {
	return s.companyStore.ListFull(ctx)
}

// UpdateCompany rewrites every editable column of a company row
func (s *CompanyService) UpdateCompany(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) error {
	return s.companyStore.Update(ctx, &models.Company{
		ID:       id,
		Name:     req.Name,
		Capacity: req.Capacity,
		Tunnus:   req.Tunnus,
		Address:  req.Address,
	})
}
