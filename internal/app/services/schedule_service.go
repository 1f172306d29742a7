package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reposapp/backend/internal/app/models"
	"github.com/reposapp/backend/internal/app/models/dto"
	"github.com/reposapp/backend/internal/pkg/apperrors"
)

// ScheduleService defines the interface for replacement schedule management
type ScheduleService interface {
	Create(ctx context.Context, req *dto.CreateScheduleRequest, actorID int64) (*models.Schedule, error)
	GetByID(ctx context.Context, id int64) (*models.Schedule, error)
	GetAll(ctx context.Context) ([]*models.Schedule, error)
	Update(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*models.Schedule, error)
	Delete(ctx context.Context, id int64) error
}

type scheduleServiceImpl struct {
	scheduleRepo ScheduleRepository
	logger       zerolog.Logger
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(scheduleRepo ScheduleRepository, logger zerolog.Logger) ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Create opens a new schedule slot. A date holds at most one slot per shift
// and at most MaxSchedulesPerDay slots in total; the repository re-checks the
// daily cap inside a transaction, so the checks here only produce friendlier
// errors ahead of the constraint.
func (s *scheduleServiceImpl) Create(ctx context.Context, req *dto.CreateScheduleRequest, actorID int64) (*models.Schedule, error) {
	date, err := req.Date()
	if err != nil {
		return nil, fmt.Errorf("%w: scheduleDate must be formatted as YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	existing, err := s.scheduleRepo.GetByDateAndShift(ctx, date, req.Shift)
	if err != nil && !errors.Is(err, apperrors.ErrScheduleNotFound) {
		return nil, fmt.Errorf("error checking slot availability: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrScheduleSlotTaken
	}

	count, err := s.scheduleRepo.CountByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("error counting schedules for date: %w", err)
	}
	if count >= models.MaxSchedulesPerDay {
		return nil, apperrors.ErrScheduleDailyLimit
	}

	maxCapacity := models.DefaultMaxCapacity
	if req.MaxCapacity != nil {
		maxCapacity = *req.MaxCapacity
	}

	schedule := &models.Schedule{
		ScheduleDate:    date,
		Shift:           req.Shift,
		MaxCapacity:     maxCapacity,
		CreatedByUserID: actorID,
	}

	created, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("scheduleID", created.ID).
		Str("date", created.ScheduleDate.Format(dto.ScheduleDateFormat)).
		Str("shift", string(created.Shift)).
		Msg("Schedule slot opened")
	return created, nil
}

// GetByID retrieves a schedule slot by id
func (s *scheduleServiceImpl) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}
	return s.scheduleRepo.GetByID(ctx, id)
}

// GetAll retrieves all schedule slots
func (s *scheduleServiceImpl) GetAll(ctx context.Context) ([]*models.Schedule, error) {
	return s.scheduleRepo.GetAll(ctx)
}

// Update applies a partial update to a schedule slot
func (s *scheduleServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*models.Schedule, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: at least one field must be supplied", apperrors.ErrValidationFailed)
	}

	fields := map[string]interface{}{}
	if req.ScheduleDate != nil {
		date, err := req.Date()
		if err != nil {
			return nil, fmt.Errorf("%w: scheduleDate must be formatted as YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		fields["schedule_date"] = *date
	}
	if req.Shift != nil {
		fields["shift"] = *req.Shift
	}
	if req.MaxCapacity != nil {
		fields["max_capacity"] = *req.MaxCapacity
	}

	return s.scheduleRepo.Update(ctx, id, fields)
}

// Delete removes a schedule slot by id
func (s *scheduleServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}
	return s.scheduleRepo.Delete(ctx, id)
}
