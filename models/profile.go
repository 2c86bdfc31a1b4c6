package models

import "time"

// Profile is a registered account. Email doubles as the login and as the
// recipient of reminder emails.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the login/registration payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}
