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

// StudentService defines the interface for student management
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest, actorID int64) (*models.Student, error)
	Authenticate(ctx context.Context, rgm, accessCode string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest, actorID int64) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	studentRepo StudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Create registers a student. The access code is derived from the trailing
// four characters of the RGM, and both audit columns are stamped with the
// acting user.
func (s *studentServiceImpl) Create(ctx context.Context, req *dto.CreateStudentRequest, actorID int64) (*models.Student, error) {
	rgm := req.RGM.String()
	if rgm == "" {
		return nil, fmt.Errorf("%w: rgm is required", apperrors.ErrValidationFailed)
	}

	existing, err := s.studentRepo.GetByRGM(ctx, rgm)
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, fmt.Errorf("error checking RGM availability: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrRGMAlreadyExists
	}

	student := &models.Student{
		Name:            req.Name,
		Email:           req.Email,
		RGM:             rgm,
		CurrentSemester: req.CurrentSemester,
		AccessCode:      models.DeriveAccessCode(rgm),
		CreatedByUserID: actorID,
		UpdatedByUserID: actorID,
	}

	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", created.ID).Int64("createdBy", actorID).Msg("Student registered")
	return created, nil
}

// Authenticate checks a student's RGM and access code. The expected code is
// always recomputed from the stored RGM rather than trusted from the column.
func (s *studentServiceImpl) Authenticate(ctx context.Context, rgm, accessCode string) (*models.Student, error) {
	student, err := s.studentRepo.GetByRGM(ctx, rgm)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up student for login: %w", err)
	}

	if accessCode != models.DeriveAccessCode(student.RGM) {
		return nil, apperrors.ErrInvalidAccessCode
	}

	return student, nil
}

// GetByID retrieves a student by id
func (s *studentServiceImpl) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}
	return s.studentRepo.GetByID(ctx, id)
}

// GetAll retrieves all students
func (s *studentServiceImpl) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// Update applies a partial update. A supplied RGM recomputes the access code;
// updated_by is stamped with the acting user.
func (s *studentServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest, actorID int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: at least one field must be supplied", apperrors.ErrValidationFailed)
	}

	fields := map[string]interface{}{
		"updated_by_user_id": actorID,
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.CurrentSemester != nil {
		fields["current_semester"] = *req.CurrentSemester
	}
	if req.RGM != nil {
		rgm := req.RGM.String()
		fields["rgm"] = rgm
		fields["access_code"] = models.DeriveAccessCode(rgm)
	}

	return s.studentRepo.Update(ctx, id, fields)
}

// Delete removes a student by id
func (s *studentServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}
	return s.studentRepo.Delete(ctx, id)
}
