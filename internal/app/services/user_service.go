package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reposapp/backend/internal/app/models"
	"github.com/reposapp/backend/internal/app/models/dto"
	"github.com/reposapp/backend/internal/pkg/apperrors"
	"github.com/reposapp/backend/internal/pkg/auth"
)

// UserService defines the interface for staff user management
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userServiceImpl struct {
	userRepo UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo UserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create registers a staff user. The password is hashed before it reaches the
// repository and the position defaults to Preceptor when omitted.
func (s *userServiceImpl) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	position := req.Position
	if position == "" {
		position = models.PositionPreceptor
	}
	if !position.IsValid() {
		return nil, fmt.Errorf("%w: unknown position %q", apperrors.ErrValidationFailed, position)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Position: position,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	user.ID = id
	user.Password = ""

	s.logger.Info().Int64("userID", id).Str("position", string(position)).Msg("Staff user registered")
	return user, nil
}

// GetByID retrieves a user by id, password excluded
func (s *userServiceImpl) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}
	return s.userRepo.GetByID(ctx, id)
}

// GetAll retrieves all users, passwords excluded
func (s *userServiceImpl) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// Update applies a partial update. A supplied password is re-hashed; omitted
// fields retain their prior values.
func (s *userServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: at least one field must be supplied", apperrors.ErrValidationFailed)
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		fields["password"] = hash
	}

	return s.userRepo.Update(ctx, id, fields)
}

// Delete removes a user by id
func (s *userServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}
	return s.userRepo.Delete(ctx, id)
}
