package dto

import "strings"

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest is the body of POST /signup. Only email and password are accepted.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// Normalize trims surrounding whitespace from the email.
func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// Normalize trims surrounding whitespace from the email.
func (r *SignupRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}
