package model

import "time"

const DefaultAdminRole = "admin"

// AdminUser is the stored account. The password fields never leave the
// service layer; see AdminUserView.
type AdminUser struct {
	ID           string    `bson:"_id,omitempty"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	PasswordSalt string    `bson:"password_salt"`
	FullName     *string   `bson:"full_name"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
}

type CreateAdminRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required"`
	FullName *string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminUserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"token_type"`
	ExpiresAt *time.Time    `json:"expires_at,omitempty"`
	User      AdminUserView `json:"user"`
}
