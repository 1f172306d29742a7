package dto

import (
	"time"

	"github.com/reposapp/backend/internal/app/models"
)

// CreateReplacementRequest represents an attendance record creation request
type CreateReplacementRequest struct {
	StudentID     int64                `json:"studentId" binding:"required,min=1"`
	ScheduleID    int64                `json:"scheduleId" binding:"required,min=1"`
	Justification models.Justification `json:"justification" binding:"required,oneof='Escala 12x36' 'Atestado' 'Matricula Tardia' 'Autorização do Professor'"`
	ScheduleAt    time.Time            `json:"scheduleAt" binding:"required"`
}

// UpdateReplacementRequest represents a partial replacement update. Only
// supplied fields overwrite existing values; IsPresent toggles attendance.
type UpdateReplacementRequest struct {
	StudentID     *int64                `json:"studentId,omitempty" binding:"omitempty,min=1"`
	ScheduleID    *int64                `json:"scheduleId,omitempty" binding:"omitempty,min=1"`
	Justification *models.Justification `json:"justification,omitempty" binding:"omitempty,oneof='Escala 12x36' 'Atestado' 'Matricula Tardia' 'Autorização do Professor'"`
	IsPresent     *bool                 `json:"isPresent,omitempty"`
	ScheduleAt    *time.Time            `json:"scheduleAt,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all
func (r *UpdateReplacementRequest) IsEmpty() bool {
	return r.StudentID == nil && r.ScheduleID == nil && r.Justification == nil &&
		r.IsPresent == nil && r.ScheduleAt == nil
}
