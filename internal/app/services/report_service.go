package services

import (
	"context"

	"github.com/rs/zerolog"

	authz "github.com/mkarvonen/placementtrack/internal/app/auth"
	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
)

// ReportStore runs the read-only reporting joins
type ReportStore interface {
	PlacementReport(ctx context.Context, ownerStudentID *int64) ([]*dto.PlacementReportRow, error)
	CompanyReport(ctx context.Context) ([]*dto.CompanyReportRow, error)
}

// ReportService handles the reporting reads
type ReportService struct {
	reportStore ReportStore
	logger      zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(reportStore ReportStore, logger zerolog.Logger) *ReportService {
	return &ReportService{reportStore: reportStore, logger: logger}
}

// PlacementReport returns the placement/company/student join. Student
// callers get only their own rows.
func (s *ReportService) PlacementReport(ctx context.Context, role models.Role, actorStudentID *int64) ([]*dto.PlacementReportRow, error) {
	if !authz.Allowed(authz.Decision{Role: role, ActorStudentID: actorStudentID}, authz.ActionReadPlacements) {
		return nil, apperrors.ErrPermissionDenied
	}

	var owner *int64
	if scoped, studentID := authz.OwnershipScope(role, actorStudentID); scoped {
		owner = &studentID
	}

	return s.reportStore.PlacementReport(ctx, owner)
}

// CompanyReport returns every company with its placement count
func (s *ReportService) CompanyReport(ctx context.Context, role models.Role) ([]*dto.CompanyReportRow, error) {
	if !authz.Allowed(authz.Decision{Role: role}, authz.ActionReadReferenceData) {
		return nil, apperrors.ErrPermissionDenied
	}

	return s.reportStore.CompanyReport(ctx)
}
