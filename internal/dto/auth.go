package dto

import "time"

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries a freshly minted bearer token
type AuthResponse struct {
	Token        string    `json:"token"`
	ExpiresAtUTC time.Time `json:"expires_at_utc"`
}
