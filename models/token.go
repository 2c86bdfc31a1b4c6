package models

import "github.com/golang-jwt/jwt/v5"

// Token is an issued or parsed access token.
type Token struct {
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// UserID is the profile the token was issued for (the "sub" claim).
	UserID string `json:"-"`
}

func (t Token) String() string {
	return t.SignedString
}

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
