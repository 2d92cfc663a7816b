// Package auth holds the role/ownership authorization policy. The policy is
// a pure function over verified session claims; HTTP handlers never make
// access decisions from client-supplied values.
package auth

import (
	"github.com/mkarvonen/placementtrack/internal/app/models"
)

// Action enumerates everything the policy can gate.
type Action string

const (
	ActionReadReferenceData Action = "read_reference_data"
	ActionReadPlacements    Action = "read_placements"
	ActionCreateStudent     Action = "create_student"
	ActionCreateCompany     Action = "create_company"
	ActionCreatePlacement   Action = "create_placement"
	ActionEditPlacement     Action = "edit_placement"
	ActionDeletePlacement   Action = "delete_placement"
	ActionEditStudent       Action = "edit_student"
	ActionEditCompany       Action = "edit_company"
	ActionManageUsers       Action = "manage_users"
)

// Decision carries the policy inputs for one request.
type Decision struct {
	Role models.Role
	// ActorStudentID is the student row linked to the acting account,
	// nil for non-student roles.
	ActorStudentID *int64
	// OwnerStudentID is the student owning the target resource, nil when
	// the action has no per-row owner (creates, listings).
	OwnerStudentID *int64
}

// Allowed implements the role/action table. Default is deny: unknown
// roles, anonymous callers and unknown actions all fall through to false.
func Allowed(d Decision, action Action) bool {
	switch d.Role {
	case models.RoleTeacher:
		switch action {
		case ActionReadReferenceData, ActionReadPlacements,
			ActionCreateStudent, ActionCreateCompany, ActionCreatePlacement,
			ActionEditPlacement, ActionDeletePlacement,
			ActionEditStudent, ActionEditCompany:
			return true
		}
		return false

	case models.RoleStudent:
		switch action {
		case ActionReadReferenceData, ActionReadPlacements, ActionCreateCompany:
			return true
		case ActionCreatePlacement:
			// Students create placements for themselves only; the service
			// additionally overrides the input student id.
			return d.ActorStudentID != nil
		case ActionEditPlacement, ActionDeletePlacement:
			return d.ActorStudentID != nil && d.OwnerStudentID != nil &&
				*d.ActorStudentID == *d.OwnerStudentID
		}
		return false

	case models.RoleAdmin:
		// Admin accounts operate the admin panel only.
		return action == ActionManageUsers

	default:
		return false
	}
}

// OwnershipScope reports whether listings for this role must be
// restricted to the actor's own placements, and to which student id.
func OwnershipScope(role models.Role, actorStudentID *int64) (scoped bool, studentID int64) {
	if role == models.RoleStudent && actorStudentID != nil {
		return true, *actorStudentID
	}
	return false, 0
}
