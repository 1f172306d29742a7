package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/reposapp/backend/internal/app/models"
	"github.com/reposapp/backend/internal/app/repositories"
	"github.com/reposapp/backend/internal/config"
	"github.com/reposapp/backend/internal/pkg/apperrors"
	"github.com/reposapp/backend/internal/pkg/auth"
)

// CreateDefaultData ensures a Coordenacao user exists so a fresh database can
// serve an authenticated request. The password comes from configuration and
// the seed is skipped when none is set.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	email := cfg.Seed.AdminEmail
	if email == "" || cfg.Seed.AdminPassword == "" {
		lgr.Info().Msg("Seed credentials not configured, skipping default user creation")
		return nil
	}

	_, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		lgr.Info().Str("email", email).Msg("Default coordination user already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return fmt.Errorf("error checking default user: %w", err)
	}

	hashedPassword, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing default user password: %w", err)
	}

	user := &models.User{
		Name:     "Coordenacao",
		Email:    email,
		Password: hashedPassword,
		Position: models.PositionCoordenacao,
	}

	id, err := userRepo.Create(ctx, user)
	if err != nil {
		return fmt.Errorf("error creating default user: %w", err)
	}

	lgr.Info().Int64("userID", id).Str("email", email).Msg("Default coordination user created")
	return nil
}
