package services

import (
	"context"
	"time"

	"github.com/reposapp/backend/internal/app/models"
)

// The services depend on narrow persistence interfaces rather than concrete
// repositories so that business rules stay testable without a database. The
// types in internal/app/repositories satisfy them.

// UserRepository is the persistence surface for staff users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// StudentRepository is the persistence surface for students
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByRGM(ctx context.Context, rgm string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// ScheduleRepository is the persistence surface for schedule slots
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error)
	GetByID(ctx context.Context, id int64) (*models.Schedule, error)
	GetByDateAndShift(ctx context.Context, date time.Time, shift models.Shift) (*models.Schedule, error)
	CountByDate(ctx context.Context, date time.Time) (int, error)
	GetAll(ctx context.Context) ([]*models.Schedule, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Schedule, error)
	Delete(ctx context.Context, id int64) error
}

// ReplacementRepository is the persistence surface for attendance records
type ReplacementRepository interface {
	Create(ctx context.Context, replacement *models.Replacement) (*models.Replacement, error)
	GetByID(ctx context.Context, id int64) (*models.Replacement, error)
	GetAll(ctx context.Context) ([]*models.Replacement, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Replacement, error)
	Delete(ctx context.Context, id int64) error
}
