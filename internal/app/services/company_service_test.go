package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
)

func TestCompanyCreateAndListRoundTrip(t *testing.T) {
	store := newFakeCompanyStore()
	svc := NewCompanyService(store, zerolog.Nop())
	ctx := context.Background()

	address := "Teollisuuskatu 1"
	id, err := svc.CreateCompany(ctx, &dto.CreateCompanyRequest{
		Name:     "Acme",
		Capacity: 3,
		Tunnus:   "1234567-8",
		Address:  &address,
	})
	if err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}

	refs, err := svc.ListRefs(ctx)
	if err != nil {
		t.Fatalf("ListRefs: %v", err)
	}
	if len(refs) != 1 || refs[0].ID != id || refs[0].Name != "Acme" {
		t.Fatalf("ref does not round-trip the created company: %+v", refs)
	}

	rows, err := svc.ListFull(ctx)
	if err != nil {
		t.Fatalf("ListFull: %v", err)
	}
	got := rows[0]
	if got.Capacity != 3 || got.Tunnus != "1234567-8" || got.Address == nil || *got.Address != address {
		t.Errorf("full listing does not round-trip all fields: %+v", got)
	}
}

func TestCompanyUpdate(t *testing.T) {
	store := newFakeCompanyStore()
	svc := NewCompanyService(store, zerolog.Nop())
	ctx := context.Background()

	id, err := svc.CreateCompany(ctx, &dto.CreateCompanyRequest{Name: "Acme", Capacity: 3, Tunnus: "1234567-8"})
	if err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}

	if err := svc.UpdateCompany(ctx, id, &dto.UpdateCompanyRequest{
		Name:     "Acme Oy",
		Capacity: 5,
		Tunnus:   "1234567-8",
	}); err != nil {
		t.Fatalf("UpdateCompany: %v", err)
	}

	rows, err := svc.ListFull(ctx)
	if err != nil {
		t.Fatalf("ListFull: %v", err)
	}
	if rows[0].Name != "Acme Oy" || rows[0].Capacity != 5 {
		t.Errorf("re-read does not reflect the update: %+v", rows[0])
	}

	err = svc.UpdateCompany(ctx, 999, &dto.UpdateCompanyRequest{Name: "X", Capacity: 1, Tunnus: "0000000-0"})
	if !errors.Is(err, apperrors.ErrCompanyNotFound) {
		t.Errorf("unknown id: got %v, want ErrCompanyNotFound", err)
	}
}
