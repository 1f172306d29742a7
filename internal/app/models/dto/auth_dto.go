package dto

import "github.com/reposapp/backend/internal/app/models"

// LoginRequest represents staff login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthResponse represents a successful staff authentication response:
// the user record (password stripped) plus the signed token.
type AuthResponse struct {
	User  *models.User  `json:"user"`
	Token TokenResponse `json:"token"`
}

// StudentLoginRequest represents a student credential check: the RGM plus the
// access code derived from its trailing digits.
type StudentLoginRequest struct {
	RGM        RGM    `json:"rgm" binding:"required"`
	AccessCode string `json:"accessCode" binding:"required"`
}
