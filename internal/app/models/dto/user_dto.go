package dto

import "github.com/reposapp/backend/internal/app/models"

// CreateUserRequest represents a staff registration request
type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Position models.Position `json:"position" binding:"omitempty,oneof=Coordenacao Preceptor"`
}

// UpdateUserRequest represents a partial staff update. Only supplied fields
// overwrite existing values.
type UpdateUserRequest struct {
	Name     *string          `json:"name,omitempty"`
	Email    *string          `json:"email,omitempty" binding:"omitempty,email"`
	Password *string          `json:"password,omitempty" binding:"omitempty,min=8"`
	Position *models.Position `json:"position,omitempty" binding:"omitempty,oneof=Coordenacao Preceptor"`
}

// IsEmpty reports whether the update carries no fields at all
func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Password == nil && r.Position == nil
}
