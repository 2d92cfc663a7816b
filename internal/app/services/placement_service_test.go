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

func int64p(v int64) *int64 { return &v }

func validCreateRequest() *dto.CreatePlacementRequest {
	return &dto.CreatePlacementRequest{
		StudentID: 1,
		CompanyID: 2,
		BossName:  "Pekka Pomo",
		BossPhone: "040-1234567",
		BossEmail: "pekka@acme.fi",
		BeginDate: "2026-09-01",
		EndDate:   "2026-12-19",
		City:      "Tampere",
		Status:    "Odottaa",
	}
}

func TestPlacementListScoping(t *testing.T) {
	store := newFakePlacementStore()
	store.placements[1] = &models.Placement{RowID: 1, StudentID: 5, CompanyID: 2}
	store.placements[2] = &models.Placement{RowID: 2, StudentID: 6, CompanyID: 2}

	svc := NewPlacementService(store, zerolog.Nop())
	ctx := context.Background()

	teacherRows, err := svc.List(ctx, models.RoleTeacher, nil, false)
	if err != nil {
		t.Fatalf("teacher List: %v", err)
	}
	if len(teacherRows) != 2 {
		t.Errorf("teacher sees %d rows, want 2", len(teacherRows))
	}

	studentRows, err := svc.List(ctx, models.RoleStudent, int64p(5), false)
	if err != nil {
		t.Fatalf("student List: %v", err)
	}
	if len(studentRows) != 1 || studentRows[0].StudentID != 5 {
		t.Errorf("student rows = %+v, want only own row", studentRows)
	}

	if _, err := svc.List(ctx, models.RoleAdmin, nil, false); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("admin List err = %v, want ErrPermissionDenied", err)
	}

	// The descending flag reaches the store untouched
	if _, err := svc.List(ctx, models.RoleTeacher, nil, true); err != nil {
		t.Fatalf("List desc: %v", err)
	}
	last := store.listCalls[len(store.listCalls)-1]
	if !last.desc {
		t.Error("descending sort not forwarded")
	}
}

func TestPlacementCreate(t *testing.T) {
	tests := []struct {
		name          string
		role          models.Role
		actorStudent  *int64
		mutate        func(*dto.CreatePlacementRequest)
		wantErr       error
		wantStudentID int64
	}{
		{
			name:          "teacher_creates_for_any_student",
			role:          models.RoleTeacher,
			wantStudentID: 1,
		},
		{
			name:         "student_id_overridden_with_own",
			role:         models.RoleStudent,
			actorStudent: int64p(9),
			mutate: func(req *dto.CreatePlacementRequest) {
				req.StudentID = 1 // points at somebody else
			},
			wantStudentID: 9,
		},
		{
			name: "end_before_begin_rejected",
			role: models.RoleTeacher,
			mutate: func(req *dto.CreatePlacementRequest) {
				req.BeginDate = "2026-12-19"
				req.EndDate = "2026-09-01"
			},
			wantErr: apperrors.ErrInvalidDateRange,
		},
		{
			name: "same_day_allowed",
			role: models.RoleTeacher,
			mutate: func(req *dto.CreatePlacementRequest) {
				req.BeginDate = "2026-09-01"
				req.EndDate = "2026-09-01"
			},
			wantStudentID: 1,
		},
		{
			name: "unknown_status_rejected",
			role: models.RoleTeacher,
			mutate: func(req *dto.CreatePlacementRequest) {
				req.Status = "Maybe"
			},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "admin_denied",
			role:    models.RoleAdmin,
			wantErr: apperrors.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakePlacementStore()
			svc := NewPlacementService(store, zerolog.Nop())

			req := validCreateRequest()
			if tt.mutate != nil {
				tt.mutate(req)
			}

			id, err := svc.Create(context.Background(), req, tt.role, tt.actorStudent)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if store.placements[id].StudentID != tt.wantStudentID {
				t.Errorf("stored student_id = %d, want %d", store.placements[id].StudentID, tt.wantStudentID)
			}
		})
	}
}

func TestPlacementCreateUnknownReference(t *testing.T) {
	store := newFakePlacementStore()
	store.createErr = apperrors.ErrUnknownReference
	svc := NewPlacementService(store, zerolog.Nop())

	_, err := svc.Create(context.Background(), validCreateRequest(), models.RoleTeacher, nil)
	if !errors.Is(err, apperrors.ErrUnknownReference) {
		t.Errorf("err = %v, want ErrUnknownReference", err)
	}
}

func validUpdateRequest(rowID int64) *dto.UpdatePlacementRequest {
	return &dto.UpdatePlacementRequest{
		RowID:     rowID,
		CompanyID: 2,
		BossName:  "Pekka Pomo",
		BossPhone: "040-1234567",
		BossEmail: "pekka@acme.fi",
		BeginDate: "2026-09-01",
		EndDate:   "2026-12-19",
		City:      "Tampere",
		Status:    "On",
	}
}

func TestPlacementUpdate(t *testing.T) {
	store := newFakePlacementStore()
	store.placements[1] = &models.Placement{RowID: 1, StudentID: 5, CompanyID: 2, Status: models.StatusPending}
	svc := NewPlacementService(store, zerolog.Nop())
	ctx := context.Background()

	// Teacher updates any row
	if err := svc.Update(ctx, validUpdateRequest(1), models.RoleTeacher, nil); err != nil {
		t.Fatalf("teacher Update: %v", err)
	}
	if store.placements[1].Status != models.StatusActive {
		t.Errorf("status = %s, want On", store.placements[1].Status)
	}

	// Owning student updates their own row
	if err := svc.Update(ctx, validUpdateRequest(1), models.RoleStudent, int64p(5)); err != nil {
		t.Fatalf("owner Update: %v", err)
	}

	// Foreign student gets not found, indistinguishable from a missing row
	if err := svc.Update(ctx, validUpdateRequest(1), models.RoleStudent, int64p(6)); !errors.Is(err, apperrors.ErrPlacementNotFound) {
		t.Errorf("foreign Update err = %v, want ErrPlacementNotFound", err)
	}

	if err := svc.Update(ctx, validUpdateRequest(99), models.RoleTeacher, nil); !errors.Is(err, apperrors.ErrPlacementNotFound) {
		t.Errorf("missing row err = %v, want ErrPlacementNotFound", err)
	}

	bad := validUpdateRequest(1)
	bad.BeginDate = "2026-12-19"
	bad.EndDate = "2026-09-01"
	if err := svc.Update(ctx, bad, models.RoleTeacher, nil); !errors.Is(err, apperrors.ErrInvalidDateRange) {
		t.Errorf("reversed range err = %v, want ErrInvalidDateRange", err)
	}
}

func TestPlacementDelete(t *testing.T) {
	store := newFakePlacementStore()
	store.placements[1] = &models.Placement{RowID: 1, StudentID: 5, CompanyID: 2}
	store.placements[2] = &models.Placement{RowID: 2, StudentID: 6, CompanyID: 2}
	svc := NewPlacementService(store, zerolog.Nop())
	ctx := context.Background()

	// A student cannot delete somebody else's row, and the row survives
	if err := svc.Delete(ctx, 2, models.RoleStudent, int64p(5)); !errors.Is(err, apperrors.ErrPlacementNotFound) {
		t.Errorf("foreign Delete err = %v, want ErrPlacementNotFound", err)
	}
	if _, ok := store.placements[2]; !ok {
		t.Error("foreign row was deleted")
	}

	if err := svc.Delete(ctx, 1, models.RoleStudent, int64p(5)); err != nil {
		t.Fatalf("own Delete: %v", err)
	}
	if _, ok := store.placements[1]; ok {
		t.Error("own row not deleted")
	}

	if err := svc.Delete(ctx, 2, models.RoleTeacher, nil); err != nil {
		t.Fatalf("teacher Delete: %v", err)
	}

	if err := svc.Delete(ctx, 99, models.RoleTeacher, nil); !errors.Is(err, apperrors.ErrPlacementNotFound) {
		t.Errorf("missing Delete err = %v, want ErrPlacementNotFound", err)
	}

	if err := svc.Delete(ctx, 1, models.RoleAdmin, nil); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("admin Delete err = %v, want ErrPermissionDenied", err)
	}
}
