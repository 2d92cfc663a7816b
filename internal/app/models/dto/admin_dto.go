package dto

// AdminUserRow is one non-admin account in the admin panel listing.
// Name is derived: teacher accounts carry their own display name,
// student accounts show the linked student's full name.
type AdminUserRow struct {
	UserID        int64  `json:"user_id"`
	Email         string `json:"email"`
	Role          int16  `json:"user_role"`
	Name          string `json:"name"`
	PasswordReset bool   `json:"password_reset"`
}

// AdminResetPasswordRequest flags a user account for forced password change
type AdminResetPasswordRequest struct {
	UserID int64 `json:"userId" binding:"required,min=1"`
}
