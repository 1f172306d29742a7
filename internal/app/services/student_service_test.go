package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/reposapp/backend/internal/app/models"
	"github.com/reposapp/backend/internal/app/models/dto"
	"github.com/reposapp/backend/internal/pkg/apperrors"
)

func newStudentServiceForTest(repo *mockStudentRepo) StudentService {
	return NewStudentService(repo, zerolog.Nop())
}

func TestStudentCreateDerivesAccessCode(t *testing.T) {
	repo := newMockStudentRepo()
	svc := newStudentServiceForTest(repo)

	student, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name:            "Maria Silva",
		Email:           "maria@example.com",
		RGM:             dto.RGM("123456789"),
		CurrentSemester: models.SemesterSeventh,
	}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if student.AccessCode != "6789" {
		t.Errorf("access code = %q, want %q", student.AccessCode, "6789")
	}
	if student.CreatedByUserID != 3 || student.UpdatedByUserID != 3 {
		t.Errorf("audit ids = (%d, %d), want (3, 3)", student.CreatedByUserID, student.UpdatedByUserID)
	}
}

func TestStudentCreateShortRGMUsesWholeValue(t *testing.T) {
	svc := newStudentServiceForTest(newMockStudentRepo())

	student, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name:            "Jo",
		Email:           "jo@example.com",
		RGM:             dto.RGM("42"),
		CurrentSemester: models.SemesterEighth,
	}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if student.AccessCode != "42" {
		t.Errorf("access code = %q, want %q", student.AccessCode, "42")
	}
}

func TestStudentCreateRejectsDuplicateRGM(t *testing.T) {
	repo := newMockStudentRepo()
	repo.add(&models.Student{Name: "First", RGM: "123456789"})

	svc := newStudentServiceForTest(repo)
	_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name:            "Second",
		Email:           "second@example.com",
		RGM:             dto.RGM("123456789"),
		CurrentSemester: models.SemesterSeventh,
	}, 1)

	if !errors.Is(err, apperrors.ErrRGMAlreadyExists) {
		t.Fatalf("expected ErrRGMAlreadyExists, got %v", err)
	}
}

func TestStudentAuthenticate(t *testing.T) {
	repo := newMockStudentRepo()
	repo.add(&models.Student{Name: "Maria", RGM: "123456789", AccessCode: "6789"})
	svc := newStudentServiceForTest(repo)

	t.Run("matching code", func(t *testing.T) {
		student, err := svc.Authenticate(context.Background(), "123456789", "6789")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if student.Name != "Maria" {
			t.Errorf("student name = %q, want %q", student.Name, "Maria")
		}
	})

	t.Run("wrong code", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "123456789", "0000")
		if !errors.Is(err, apperrors.ErrInvalidAccessCode) {
			t.Fatalf("expected ErrInvalidAccessCode, got %v", err)
		}
	})

	t.Run("unknown rgm", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "999999999", "9999")
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestStudentUpdateRecomputesAccessCode(t *testing.T) {
	repo := newMockStudentRepo()
	repo.add(&models.Student{Name: "Maria", RGM: "123456789", AccessCode: "6789"})

	svc := newStudentServiceForTest(repo)
	newRGM := dto.RGM("987654321")
	if _, err := svc.Update(context.Background(), 1, &dto.UpdateStudentRequest{RGM: &newRGM}, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := repo.lastFields["access_code"]; got != "4321" {
		t.Errorf("access_code field = %v, want %q", got, "4321")
	}
	if got := repo.lastFields["updated_by_user_id"]; got != int64(5) {
		t.Errorf("updated_by_user_id field = %v, want 5", got)
	}
}

func TestStudentUpdateWithoutRGMKeepsAccessCode(t *testing.T) {
	repo := newMockStudentRepo()
	repo.add(&models.Student{Name: "Maria", RGM: "123456789", AccessCode: "6789"})

	svc := newStudentServiceForTest(repo)
	name := "Maria Souza"
	if _, err := svc.Update(context.Background(), 1, &dto.UpdateStudentRequest{Name: &name}, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := repo.lastFields["access_code"]; ok {
		t.Error("access_code should not change when the RGM is untouched")
	}
}

func TestStudentUpdateRequiresFields(t *testing.T) {
	svc := newStudentServiceForTest(newMockStudentRepo())

	_, err := svc.Update(context.Background(), 1, &dto.UpdateStudentRequest{}, 1)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestStudentDeleteMissing(t *testing.T) {
	svc := newStudentServiceForTest(newMockStudentRepo())

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
