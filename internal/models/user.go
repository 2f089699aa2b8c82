package models

// Customer account statuses.
const (
	CustomerActive   = "Active"
	CustomerInactive = "Inactive"
)

// Customer is an end user of the laundry service.
type Customer struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Status      string `json:"status"`
}

// Admin is a console operator account. The password hash never leaves the
// server.
type Admin struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Hash        string `json:"-"`
}

// Credentials is the admin login request body.
type Credentials struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// ResetRequest asks for a password-reset code to be mailed out.
type ResetRequest struct {
	Email string `json:"email"`
}

// ResetConfirm redeems a previously issued reset code.
type ResetConfirm struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// PasswordChange carries a new password together with the reset code that
// authorizes it.
type PasswordChange struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// AdminUpdate carries the editable admin profile fields.
type AdminUpdate struct {
	ID          string  `json:"_id"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}
