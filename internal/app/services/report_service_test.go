package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
)

func TestPlacementReportScoping(t *testing.T) {
	store := &fakeReportStore{
		placementRows: []*dto.PlacementReportRow{{CompanyName: "Acme", StName: "Maija"}},
	}
	svc := NewReportService(store, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.PlacementReport(ctx, models.RoleTeacher, nil); err != nil {
		t.Fatalf("teacher PlacementReport: %v", err)
	}
	if store.lastOwner != nil {
		t.Error("teacher report must be unscoped")
	}

	if _, err := svc.PlacementReport(ctx, models.RoleStudent, int64p(5)); err != nil {
		t.Fatalf("student PlacementReport: %v", err)
	}
	if store.lastOwner == nil || *store.lastOwner != 5 {
		t.Errorf("student scope = %v, want 5", store.lastOwner)
	}

	if _, err := svc.PlacementReport(ctx, models.RoleAdmin, nil); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("admin err = %v, want ErrPermissionDenied", err)
	}
}

func TestCompanyReport(t *testing.T) {
	store := &fakeReportStore{
		companyRows: []*dto.CompanyReportRow{{CompanyName: "Acme", StudentCount: 3}},
	}
	svc := NewReportService(store, zerolog.Nop())
	ctx := context.Background()

	rows, err := svc.CompanyReport(ctx, models.RoleStudent)
	if err != nil {
		t.Fatalf("CompanyReport: %v", err)
	}
	if len(rows) != 1 || rows[0].StudentCount != 3 {
		t.Errorf("rows = %+v", rows)
	}

	if _, err := svc.CompanyReport(ctx, models.RoleAdmin); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("admin err = %v, want ErrPermissionDenied", err)
	}
}
