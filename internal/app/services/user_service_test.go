package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/reposapp/backend/internal/app/models"
	"github.com/reposapp/backend/internal/app/models/dto"
	"github.com/reposapp/backend/internal/pkg/apperrors"
	"github.com/reposapp/backend/internal/pkg/auth"
)

func newUserServiceForTest(repo *mockUserRepo) UserService {
	return NewUserService(repo, zerolog.Nop())
}

func TestUserCreateDefaultsToPreceptor(t *testing.T) {
	repo := newMockUserRepo()
	svc := newUserServiceForTest(repo)

	user, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name:     "New Staff",
		Email:    "staff@example.com",
		Password: "s3cretpass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Position != models.PositionPreceptor {
		t.Errorf("position = %q, want default %q", user.Position, models.PositionPreceptor)
	}
}

func TestUserCreateHashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := newUserServiceForTest(repo)

	_, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name:     "New Staff",
		Email:    "staff@example.com",
		Password: "s3cretpass",
		Position: models.PositionCoordenacao,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.byEmail["staff@example.com"]
	if stored.Password == "s3cretpass" {
		t.Fatal("password stored in plaintext")
	}
	if !auth.CheckPassword(stored.Password, "s3cretpass") {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(&models.User{Email: "staff@example.com"})

	svc := newUserServiceForTest(repo)
	_, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name:     "Other",
		Email:    "staff@example.com",
		Password: "s3cretpass",
	})

	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestUserUpdateRequiresFields(t *testing.T) {
	svc := newUserServiceForTest(newMockUserRepo())

	_, err := svc.Update(context.Background(), 1, &dto.UpdateUserRequest{})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestUserUpdateRehashesPasswordOnlyWhenSupplied(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(&models.User{Email: "staff@example.com"})
	svc := newUserServiceForTest(repo)

	name := "Renamed"
	if _, err := svc.Update(context.Background(), 1, &dto.UpdateUserRequest{Name: &name}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.lastFields["password"]; ok {
		t.Error("password must not change when absent from the request")
	}

	password := "newsecret1"
	if _, err := svc.Update(context.Background(), 1, &dto.UpdateUserRequest{Password: &password}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hashed, ok := repo.lastFields["password"].(string)
	if !ok {
		t.Fatal("expected a password field in the update")
	}
	if hashed == password {
		t.Fatal("password stored in plaintext")
	}
	if !auth.CheckPassword(hashed, password) {
		t.Error("updated hash does not verify against the new password")
	}
}

func TestUserDeleteMissing(t *testing.T) {
	svc := newUserServiceForTest(newMockUserRepo())

	if err := svc.Delete(context.Background(), 7); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
