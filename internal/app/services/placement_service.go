package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	authz "github.com/mkarvonen/placementtrack/internal/app/auth"
	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
)

// PlacementStore is the placement persistence
type PlacementStore interface {
	List(ctx context.Context, ownerStudentID *int64, desc bool) ([]*dto.PlacementRow, error)
	Create(ctx context.Context, placement *models.Placement) (int64, error)
	Update(ctx context.Context, placement *models.Placement, ownerStudentID *int64) error
	DeleteByID(ctx context.Context, rowID int64, ownerStudentID *int64) error
}

// PlacementService handles placement CRUD with ownership scoping
type PlacementService struct {
	placementStore PlacementStore
	logger         zerolog.Logger
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(placementStore PlacementStore, logger zerolog.Logger) *PlacementService {
	return &PlacementService{placementStore: placementStore, logger: logger}
}

// parseDateRange parses the wire dates and enforces end >= begin
func parseDateRange(begin, end string) (time.Time, time.Time, error) {
	beginDate, err := time.Parse(dto.DateLayout, begin)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("invalid begin date")
	}
	endDate, err := time.Parse(dto.DateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("invalid end date")
	}
	if endDate.Before(beginDate) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}
	return beginDate, endDate, nil
}

// List returns placement rows joined with display names. Students see
// only their own rows; sorting is by student name, descending on request.
func (s *PlacementService) List(ctx context.Context, role models.Role, actorStudentID *int64, desc bool) ([]*dto.PlacementRow, error) {
	if !authz.Allowed(authz.Decision{Role: role, ActorStudentID: actorStudentID}, authz.ActionReadPlacements) {
		return nil, apperrors.ErrPermissionDenied
	}

	var owner *int64
	if scoped, studentID := authz.OwnershipScope(role, actorStudentID); scoped {
		owner = &studentID
	}

	return s.placementStore.List(ctx, owner, desc)
}

// Create adds a new placement. A student caller's own student id always
// wins over whatever the client sent.
func (s *PlacementService) Create(ctx context.Context, req *dto.CreatePlacementRequest, role models.Role, actorStudentID *int64) (int64, error) {
	if !authz.Allowed(authz.Decision{Role: role, ActorStudentID: actorStudentID}, authz.ActionCreatePlacement) {
		return 0, apperrors.ErrPermissionDenied
	}

	beginDate, endDate, err := parseDateRange(req.BeginDate, req.EndDate)
	if err != nil {
		return 0, err
	}

	status := models.PlacementStatus(req.Status)
	if !status.Valid() {
		return 0, apperrors.NewValidationError("unknown placement status")
	}

	studentID := req.StudentID
	if role == models.RoleStudent {
		studentID = *actorStudentID
	}

	id, err := s.placementStore.Create(ctx, &models.Placement{
		StudentID:  studentID,
		CompanyID:  req.CompanyID,
		BossName:   req.BossName,
		BossPhone:  req.BossPhone,
		BossEmail:  req.BossEmail,
		BeginDate:  beginDate,
		EndDate:    endDate,
		LunchMoney: req.LunchMoney,
		City:       req.City,
		Status:     status,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("rowID", id).Int64("studentID", studentID).Msg("Placement created")
	return id, nil
}

// Update rewrites the editable columns of a placement row. Student
// callers are additionally constrained to their own rows; a missing row
// and a foreign row both come back as not found.
func (s *PlacementService) Update(ctx context.Context, req *dto.UpdatePlacementRequest, role models.Role, actorStudentID *int64) error {
	decision := authz.Decision{Role: role, ActorStudentID: actorStudentID, OwnerStudentID: actorStudentID}
	if !authz.Allowed(decision, authz.ActionEditPlacement) {
		return apperrors.ErrPermissionDenied
	}

	beginDate, endDate, err := parseDateRange(req.BeginDate, req.EndDate)
	if err != nil {
		return err
	}

	status := models.PlacementStatus(req.Status)
	if !status.Valid() {
		return apperrors.NewValidationError("unknown placement status")
	}

	var owner *int64
	if scoped, studentID := authz.OwnershipScope(role, actorStudentID); scoped {
		owner = &studentID
	}

	return s.placementStore.Update(ctx, &models.Placement{
		RowID:      req.RowID,
		CompanyID:  req.CompanyID,
		BossName:   req.BossName,
		BossPhone:  req.BossPhone,
		BossEmail:  req.BossEmail,
		BeginDate:  beginDate,
		EndDate:    endDate,
		LunchMoney: req.LunchMoney,
		City:       req.City,
		Status:     status,
	}, owner)
}

// Delete removes a placement row by primary key, constrained to the
// caller's own rows for students.
func (s *PlacementService) Delete(ctx context.Context, rowID int64, role models.Role, actorStudentID *int64) error {
	decision := authz.Decision{Role: role, ActorStudentID: actorStudentID, OwnerStudentID: actorStudentID}
	if !authz.Allowed(decision, authz.ActionDeletePlacement) {
		return apperrors.ErrPermissionDenied
	}

	var owner *int64
	if scoped, studentID := authz.OwnershipScope(role, actorStudentID); scoped {
		owner = &studentID
	}

	if err := s.placementStore.DeleteByID(ctx, rowID, owner); err != nil {
		return err
	}

	s.logger.Info().Int64("rowID", rowID).Msg("Placement deleted")
	return nil
}
