package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	RGM             string    `json:"rgm" db:"rgm"`                         // Enrollment number, unique, at most 15 chars
	CurrentSemester Semester  `json:"currentSemester" db:"current_semester"`
	AccessCode      string    `json:"accessCode" db:"access_code"`          // Always the last 4 chars of the RGM
	CreatedByUserID int64     `json:"createdByUserId" db:"created_by_user_id"`
	UpdatedByUserID int64     `json:"updatedByUserId" db:"updated_by_user_id"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// DeriveAccessCode computes a student's access code from an RGM: the trailing
// four characters, or the whole RGM when it is shorter than four.
func DeriveAccessCode(rgm string) string {
	if len(rgm) <= 4 {
		return rgm
	}
	return rgm[len(rgm)-4:]
}
