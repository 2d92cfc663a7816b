package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
)

func TestStudentCreateAndListRoundTrip(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store, zerolog.Nop())
	ctx := context.Background()

	surname := "Meikäläinen"
	id, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{
		Name:    "Maija",
		Surname: &surname,
		Group:   "IT21",
	})
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	refs, err := svc.ListRefs(ctx)
	if err != nil {
		t.Fatalf("ListRefs: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("got %d refs, want 1", len(refs))
	}
	if refs[0].ID != id || refs[0].Name != "Maija" || refs[0].Surname == nil || *refs[0].Surname != surname {
		t.Errorf("ref does not round-trip the created fields: %+v", refs[0])
	}

	rows, err := svc.ListFull(ctx, "st_group", "desc")
	if err != nil {
		t.Fatalf("ListFull: %v", err)
	}
	if len(rows) != 1 || rows[0].Group != "IT21" {
		t.Errorf("full listing does not round-trip the group: %+v", rows)
	}
	if store.lastSortBy != "st_group" || store.lastSortDir != "desc" {
		t.Errorf("sort inputs not forwarded, got %q %q", store.lastSortBy, store.lastSortDir)
	}
}

func TestStudentUpdate(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store, zerolog.Nop())
	ctx := context.Background()

	id, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{Name: "Maija", Group: "IT21"})
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	surname := "Virtanen"
	if err := svc.UpdateStudent(ctx, id, &dto.UpdateStudentRequest{
		Name:    "Maija-Liisa",
		Surname: &surname,
		Group:   "IT22",
	}); err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}

	rows, err := svc.ListFull(ctx, "", "")
	if err != nil {
		t.Fatalf("ListFull: %v", err)
	}
	got := rows[0]
	if got.Name != "Maija-Liisa" || got.Group != "IT22" || got.Surname == nil || *got.Surname != surname {
		t.Errorf("re-read does not reflect the update: %+v", got)
	}

	err = svc.UpdateStudent(ctx, 999, &dto.UpdateStudentRequest{Name: "X", Group: "Y"})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("unknown id: got %v, want ErrStudentNotFound", err)
	}
}
