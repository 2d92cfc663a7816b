package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models"
	"github.com/mkarvonen/placementtrack/internal/pkg/apperrors"
)

func TestAdminListUsersExcludesAdmins(t *testing.T) {
	users := newFakeUserStore()
	users.add(&models.User{Email: "admin@example.com", Role: models.RoleAdmin})
	users.add(&models.User{Email: "ope@example.com", Role: models.RoleTeacher, Name: "Ope"})
	users.add(&models.User{Email: "maija@example.com", Role: models.RoleStudent, Name: "Maija"})

	svc := NewAdminService(users, zerolog.Nop())
	rows, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Role == models.RoleCodeAdmin {
			t.Errorf("admin account %s leaked into the listing", row.Email)
		}
	}
}

func TestAdminResetUserPassword(t *testing.T) {
	users := newFakeUserStore()
	admin := users.add(&models.User{Email: "admin@example.com", Role: models.RoleAdmin})
	teacher := users.add(&models.User{Email: "ope@example.com", Role: models.RoleTeacher})

	svc := NewAdminService(users, zerolog.Nop())
	ctx := context.Background()

	if err := svc.ResetUserPassword(ctx, teacher.ID); err != nil {
		t.Fatalf("ResetUserPassword: %v", err)
	}
	if !users.users[teacher.ID].PasswordReset {
		t.Error("reset marker not set")
	}

	if err := svc.ResetUserPassword(ctx, admin.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("admin target err = %v, want ErrPermissionDenied", err)
	}

	if err := svc.ResetUserPassword(ctx, 999); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("unknown target err = %v, want ErrUserNotFound", err)
	}
}
