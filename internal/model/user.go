package model

import "time"

// User represents a stored user record. The identity is the lowercased email;
// PasswordHash only ever holds the Argon2id digest, never the plaintext.
type User struct {
	Email        string
	PasswordHash string
	ProfileInfo  string
	CreatedAt    time.Time
}

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	ProfileInfo string `json:"profile_info"`
}

// TokenResponse represents a successful login response, matching the OAuth2
// password-grant convention.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProfileResponse represents user data safe for API responses (no hash).
type ProfileResponse struct {
	Email       string `json:"email"`
	ProfileInfo string `json:"profile_info"`
}
