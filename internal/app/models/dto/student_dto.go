package dto

import (
	"encoding/json"

	"github.com/reposapp/backend/internal/app/models"
)

// RGM is an enrollment number as received on the wire. Clients send it either
// as a JSON string or as a bare number; it is always coerced to its string
// representation before storage and comparison.
type RGM string

// UnmarshalJSON accepts both string and numeric JSON values
func (r *RGM) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = RGM(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = RGM(n.String())
	return nil
}

// String returns the string representation of the RGM
func (r RGM) String() string {
	return string(r)
}

// CreateStudentRequest represents a student registration request
type CreateStudentRequest struct {
	Name            string          `json:"name" binding:"required"`
	Email           string          `json:"email" binding:"required,email"`
	RGM             RGM             `json:"rgm" binding:"required,max=15"`
	CurrentSemester models.Semester `json:"currentSemester" binding:"required,oneof='7 Semestre' '8 Semestre' '7/8 Semestre'"`
}

// UpdateStudentRequest represents a partial student update. Only supplied
// fields overwrite existing values; a supplied RGM also recomputes the
// access code.
type UpdateStudentRequest struct {
	Name            *string          `json:"name,omitempty"`
	Email           *string          `json:"email,omitempty" binding:"omitempty,email"`
	RGM             *RGM             `json:"rgm,omitempty" binding:"omitempty,max=15"`
	CurrentSemester *models.Semester `json:"currentSemester,omitempty" binding:"omitempty,oneof='7 Semestre' '8 Semestre' '7/8 Semestre'"`
}

// IsEmpty reports whether the update carries no fields at all
func (r *UpdateStudentRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.RGM == nil && r.CurrentSemester == nil
}
