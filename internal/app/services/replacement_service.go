package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reposapp/backend/internal/app/models"
	"github.com/reposapp/backend/internal/app/models/dto"
	"github.com/reposapp/backend/internal/pkg/apperrors"
)

// ReplacementService defines the interface for attendance record management
type ReplacementService interface {
	Create(ctx context.Context, req *dto.CreateReplacementRequest, actorID int64) (*models.Replacement, error)
	GetByID(ctx context.Context, id int64) (*models.Replacement, error)
	GetAll(ctx context.Context) ([]*models.Replacement, error)
	Update(ctx context.Context, id int64, req *dto.UpdateReplacementRequest) (*models.Replacement, error)
	Delete(ctx context.Context, id int64) error
}

type replacementServiceImpl struct {
	replacementRepo ReplacementRepository
	studentRepo     StudentRepository
	scheduleRepo    ScheduleRepository
	logger          zerolog.Logger
}

// NewReplacementService creates a new replacement service instance
func NewReplacementService(
	replacementRepo ReplacementRepository,
	studentRepo StudentRepository,
	scheduleRepo ScheduleRepository,
	logger zerolog.Logger,
) ReplacementService {
	return &replacementServiceImpl{
		replacementRepo: replacementRepo,
		studentRepo:     studentRepo,
		scheduleRepo:    scheduleRepo,
		logger:          logger,
	}
}

// Create books a student into a schedule slot. Both references are checked
// up front so the caller learns which one is missing; the database foreign
// keys remain the backstop.
func (s *replacementServiceImpl) Create(ctx context.Context, req *dto.CreateReplacementRequest, actorID int64) (*models.Replacement, error) {
	if !req.Justification.IsValid() {
		return nil, fmt.Errorf("%w: unknown justification", apperrors.ErrValidationFailed)
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if _, err := s.scheduleRepo.GetByID(ctx, req.ScheduleID); err != nil {
		return nil, err
	}

	replacement := &models.Replacement{
		StudentID:      req.StudentID,
		ScheduleID:     req.ScheduleID,
		Justification:  req.Justification,
		IsPresent:      false,
		PreceptorAddBy: actorID,
		ScheduleAt:     req.ScheduleAt,
	}

	created, err := s.replacementRepo.Create(ctx, replacement)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("replacementID", created.ID).
		Int64("studentID", created.StudentID).
		Int64("scheduleID", created.ScheduleID).
		Msg("Replacement booked")
	return created, nil
}

// GetByID retrieves a replacement record by id
func (s *replacementServiceImpl) GetByID(ctx context.Context, id int64) (*models.Replacement, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid replacement ID", apperrors.ErrValidationFailed)
	}
	return s.replacementRepo.GetByID(ctx, id)
}

// GetAll retrieves all replacement records
func (s *replacementServiceImpl) GetAll(ctx context.Context) ([]*models.Replacement, error) {
	return s.replacementRepo.GetAll(ctx)
}

// Update applies a partial update, typically flipping the presence flag
func (s *replacementServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateReplacementRequest) (*models.Replacement, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid replacement ID", apperrors.ErrValidationFailed)
	}
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: at least one field must be supplied", apperrors.ErrValidationFailed)
	}

	fields := map[string]interface{}{}
	if req.StudentID != nil {
		fields["student_id"] = *req.StudentID
	}
	if req.ScheduleID != nil {
		fields["schedule_id"] = *req.ScheduleID
	}
	if req.Justification != nil {
		if !req.Justification.IsValid() {
			return nil, fmt.Errorf("%w: unknown justification", apperrors.ErrValidationFailed)
		}
		fields["justification"] = *req.Justification
	}
	if req.IsPresent != nil {
		fields["is_present"] = *req.IsPresent
	}
	if req.ScheduleAt != nil {
		fields["schedule_at"] = *req.ScheduleAt
	}

	return s.replacementRepo.Update(ctx, id, fields)
}

// Delete removes a replacement record by id
func (s *replacementServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid replacement ID", apperrors.ErrValidationFailed)
	}
	return s.replacementRepo.Delete(ctx, id)
}
