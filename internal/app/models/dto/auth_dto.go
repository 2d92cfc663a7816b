package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the issued session tokens
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn"`
}

// LoginResponse mirrors the legacy login payload with the session token
// attached. The user_role code is what the browser client switches on;
// password_reset=true makes it short-circuit into the forced-change flow.
type LoginResponse struct {
	UserID        int64         `json:"user_id"`
	Email         string        `json:"user_email"`
	Name          string        `json:"user_name"`
	Role          int16         `json:"user_role"`
	StudentID     *int64        `json:"student_id"`
	PasswordReset bool          `json:"password_reset"`
	Token         TokenResponse `json:"token"`
}

// RefreshTokenRequest represents a refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterRequest represents the self-service registration payload.
// Role is the stored role code (2=teacher, 3=student). Teachers must
// supply the shared registration code; students must reference an
// existing student row.
type RegisterRequest struct {
	Name        string `json:"nimi" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        int16  `json:"role" binding:"required"`
	StudentID   *int64 `json:"student_id"`
	TeacherCode string `json:"teacher_code"`
}

// CheckEmailRequest asks whether an account exists for the email
type CheckEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CheckEmailResponse reveals existence only, no account detail
type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}

// ResetPasswordRequest is the self-service password reset payload
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ChangePasswordRequest is the forced password change payload.
// UserID must match the authenticated session subject.
type ChangePasswordRequest struct {
	UserID      int64  `json:"userId" binding:"required,min=1"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
