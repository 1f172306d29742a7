package models

import (
	"time"
)

// User defines the staff user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Maria Souza"`                     // User's full name
	Email     string    `json:"email" db:"email" example:"maria@school.edu.br"`           // User's email address (unique)
	Password  string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	Position  Position  `json:"position" db:"position" example:"Preceptor"`               // User's role (Coordenacao or Preceptor)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2025-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2025-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
