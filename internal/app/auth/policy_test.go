package auth

import (
	"testing"

	"github.com/mkarvonen/placementtrack/internal/app/models"
)

func int64p(v int64) *int64 { return &v }

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		decision Decision
		action   Action
		want     bool
	}{
		{
			name:     "teacher_creates_students",
			decision: Decision{Role: models.RoleTeacher},
			action:   ActionCreateStudent,
			want:     true,
		},
		{
			name:     "teacher_edits_any_placement",
			decision: Decision{Role: models.RoleTeacher, OwnerStudentID: int64p(7)},
			action:   ActionEditPlacement,
			want:     true,
		},
		{
			name:     "teacher_cannot_manage_users",
			decision: Decision{Role: models.RoleTeacher},
			action:   ActionManageUsers,
			want:     false,
		},
		{
			name:     "student_reads_reference_data",
			decision: Decision{Role: models.RoleStudent, ActorStudentID: int64p(3)},
			action:   ActionReadReferenceData,
			want:     true,
		},
		{
			name:     "student_creates_company",
			decision: Decision{Role: models.RoleStudent, ActorStudentID: int64p(3)},
			action:   ActionCreateCompany,
			want:     true,
		},
		{
			name:     "student_cannot_create_students",
			decision: Decision{Role: models.RoleStudent, ActorStudentID: int64p(3)},
			action:   ActionCreateStudent,
			want:     false,
		},
		{
			name:     "student_cannot_edit_reference_data",
			decision: Decision{Role: models.RoleStudent, ActorStudentID: int64p(3)},
			action:   ActionEditStudent,
			want:     false,
		},
		{
			name:     "student_edits_own_placement",
			decision: Decision{Role: models.RoleStudent, ActorStudentID: int64p(3), OwnerStudentID: int64p(3)},
			action:   ActionEditPlacement,
			want:     true,
		},
		{
			name:     "student_cannot_edit_foreign_placement",
			decision: Decision{Role: models.RoleStudent, ActorStudentID: int64p(3), OwnerStudentID: int64p(4)},
			action:   ActionEditPlacement,
			want:     false,
		},
		{
			name:     "student_cannot_delete_foreign_placement",
			decision: Decision{Role: models.RoleStudent, ActorStudentID: int64p(3), OwnerStudentID: int64p(4)},
			action:   ActionDeletePlacement,
			want:     false,
		},
		{
			name:     "student_without_link_cannot_create_placement",
			decision: Decision{Role: models.RoleStudent},
			action:   ActionCreatePlacement,
			want:     false,
		},
		{
			name:     "admin_manages_users",
			decision: Decision{Role: models.RoleAdmin},
			action:   ActionManageUsers,
			want:     true,
		},
		{
			name:     "admin_cannot_touch_placements",
			decision: Decision{Role: models.RoleAdmin},
			action:   ActionEditPlacement,
			want:     false,
		},
		{
			name:     "admin_cannot_read_placements",
			decision: Decision{Role: models.RoleAdmin},
			action:   ActionReadPlacements,
			want:     false,
		},
		{
			name:     "anonymous_denied",
			decision: Decision{},
			action:   ActionReadReferenceData,
			want:     false,
		},
		{
			name:     "unknown_role_denied",
			decision: Decision{Role: models.Role("SUPERUSER")},
			action:   ActionManageUsers,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.decision, tt.action); got != tt.want {
				t.Errorf("Allowed(%+v, %s) = %v, want %v", tt.decision, tt.action, got, tt.want)
			}
		})
	}
}

func TestOwnershipScope(t *testing.T) {
	if scoped, _ := OwnershipScope(models.RoleTeacher, nil); scoped {
		t.Error("teacher listings must not be scoped")
	}

	scoped, id := OwnershipScope(models.RoleStudent, int64p(9))
	if !scoped || id != 9 {
		t.Errorf("student scope = (%v, %d), want (true, 9)", scoped, id)
	}

	if scoped, _ := OwnershipScope(models.RoleStudent, nil); scoped {
		t.Error("student without linked row must not produce a scope")
	}
}
