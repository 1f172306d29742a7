package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/reposapp/backend/internal/app/models"
	"github.com/reposapp/backend/internal/app/models/dto"
	"github.com/reposapp/backend/internal/pkg/apperrors"
	"github.com/reposapp/backend/internal/pkg/auth"
)

func newAuthServiceForTest(t *testing.T, repo *mockUserRepo) AuthService {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	return NewAuthService(repo, jwtService, zerolog.Nop())
}

func seedUser(t *testing.T, repo *mockUserRepo, email, password string, position models.Position) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return repo.add(&models.User{
		Name:     "Test User",
		Email:    email,
		Password: hash,
		Position: position,
	})
}

func TestLoginSuccess(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "coord@example.com", "s3cretpass", models.PositionCoordenacao)

	svc := newAuthServiceForTest(t, repo)
	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "coord@example.com",
		Password: "s3cretpass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Token.AccessToken == "" {
		t.Error("expected a non-empty access token")
	}
	if resp.Token.TokenType != "Bearer" {
		t.Errorf("token type = %q, want Bearer", resp.Token.TokenType)
	}
	if resp.User.Password != "" {
		t.Error("password hash must not leave the service")
	}
}

func TestLoginTwiceWithSameCredentials(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "coord@example.com", "s3cretpass", models.PositionCoordenacao)

	svc := newAuthServiceForTest(t, repo)
	req := &dto.LoginRequest{Email: "coord@example.com", Password: "s3cretpass"}

	if _, err := svc.Login(context.Background(), req); err != nil {
		t.Fatalf("first login: %v", err)
	}
	// Scrubbing the password from the first response must not touch the
	// stored record.
	if _, err := svc.Login(context.Background(), req); err != nil {
		t.Fatalf("second login: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "coord@example.com", "s3cretpass", models.PositionCoordenacao)

	svc := newAuthServiceForTest(t, repo)
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "coord@example.com",
		Password: "wrongpass",
	})

	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthServiceForTest(t, newMockUserRepo())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	// An unknown email must be indistinguishable from a wrong password
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginTokenCarriesPosition(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "prec@example.com", "s3cretpass", models.PositionPreceptor)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	svc := NewAuthService(repo, jwtService, zerolog.Nop())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "prec@example.com",
		Password: "s3cretpass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := jwtService.ValidateToken(resp.Token.AccessToken)
	if err != nil {
		t.Fatalf("validating issued token: %v", err)
	}
	if claims.Position != models.PositionPreceptor {
		t.Errorf("claims position = %q, want %q", claims.Position, models.PositionPreceptor)
	}
	if claims.UserID != resp.User.ID {
		t.Errorf("claims user id = %d, want %d", claims.UserID, resp.User.ID)
	}
}
