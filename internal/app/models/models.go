package models

// Role defines the closed set of account roles.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// Stored role codes in the users table.
const (
	RoleCodeAdmin   int16 = 1
	RoleCodeTeacher int16 = 2
	RoleCodeStudent int16 = 3
)

// RoleFromCode maps a stored role code to a Role. Unknown codes yield an
// empty Role, which every policy check denies.
func RoleFromCode(code int16) Role {
	switch code {
	case RoleCodeAdmin:
		return RoleAdmin
	case RoleCodeTeacher:
		return RoleTeacher
	case RoleCodeStudent:
		return RoleStudent
	default:
		return ""
	}
}

// Code maps a Role back to its stored code. Zero means unknown.
func (r Role) Code() int16 {
	switch r {
	case RoleAdmin:
		return RoleCodeAdmin
	case RoleTeacher:
		return RoleCodeTeacher
	case RoleStudent:
		return RoleCodeStudent
	default:
		return 0
	}
}

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeacher || r == RoleStudent
}

// PlacementStatus defines the placement status enumeration.
// Values are the Finnish UI labels carried in the data itself:
// On = active, Odottaa = pending, Ei = inactive.
type PlacementStatus string

const (
	StatusActive   PlacementStatus = "On"
	StatusPending  PlacementStatus = "Odottaa"
	StatusInactive PlacementStatus = "Ei"
)

// Valid reports whether the status is one of the closed set.
func (s PlacementStatus) Valid() bool {
	return s == StatusActive || s == StatusPending || s == StatusInactive
}
