package models

// User defines the account model based on the 'users' table
type User struct {
	ID            int64  `json:"user_id" db:"user_id"`
	Email         string `json:"user_email" db:"user_email"`
	Password      string `json:"-" db:"user_password"` // Hashed, excluded from JSON
	Name          string `json:"user_name" db:"user_name"`
	Role          Role   `json:"user_role" db:"user_role"`
	StudentID     *int64 `json:"student_id" db:"student_id"` // Set only for student accounts
	PasswordReset bool   `json:"password_reset" db:"password_reset"`
}
