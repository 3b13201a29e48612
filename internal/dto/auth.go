package dto

import "time"

// LoginRequest carries the credentials of a login. Username is the user's email.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	AccessToken string    `json:"access-token"`
	ExpiresAt   time.Time `json:"-"`
}

// RegisterRequest defines the data needed to register a user.
type RegisterRequest struct {
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Roles    []string `json:"roles"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message  string   `json:"message"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// ProfileResponse describes the authenticated caller.
type ProfileResponse struct {
	UserID      int64     `json:"userId"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Authorities []string  `json:"authorities"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
