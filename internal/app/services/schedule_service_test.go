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
)

func newScheduleServiceForTest(repo *mockScheduleRepo) ScheduleService {
	return NewScheduleService(repo, zerolog.Nop())
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(dto.ScheduleDateFormat, value)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", value, err)
	}
	return date
}

func TestScheduleCreateRejectsTakenSlot(t *testing.T) {
	repo := newMockScheduleRepo()
	repo.add(&models.Schedule{ScheduleDate: mustDate(t, "2026-03-10"), Shift: models.ShiftMorning})

	svc := newScheduleServiceForTest(repo)
	_, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		ScheduleDate: "2026-03-10",
		Shift:        models.ShiftMorning,
	}, 1)

	if !errors.Is(err, apperrors.ErrScheduleSlotTaken) {
		t.Fatalf("expected ErrScheduleSlotTaken, got %v", err)
	}
}

func TestScheduleCreateAllowsOtherShiftSameDay(t *testing.T) {
	repo := newMockScheduleRepo()
	repo.add(&models.Schedule{ScheduleDate: mustDate(t, "2026-03-10"), Shift: models.ShiftMorning})

	svc := newScheduleServiceForTest(repo)
	schedule, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		ScheduleDate: "2026-03-10",
		Shift:        models.ShiftAfternoon,
	}, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if schedule.Shift != models.ShiftAfternoon {
		t.Errorf("shift = %q, want %q", schedule.Shift, models.ShiftAfternoon)
	}
	if schedule.MaxCapacity != models.DefaultMaxCapacity {
		t.Errorf("max capacity = %d, want default %d", schedule.MaxCapacity, models.DefaultMaxCapacity)
	}
	if schedule.CreatedByUserID != 7 {
		t.Errorf("created by = %d, want 7", schedule.CreatedByUserID)
	}
}

func TestScheduleCreateEnforcesDailyLimit(t *testing.T) {
	repo := newMockScheduleRepo()
	date := mustDate(t, "2026-03-10")
	repo.add(&models.Schedule{ScheduleDate: date, Shift: models.ShiftMorning})
	repo.add(&models.Schedule{ScheduleDate: date, Shift: models.ShiftAfternoon})
	repo.add(&models.Schedule{ScheduleDate: date, Shift: models.ShiftEvening})

	svc := newScheduleServiceForTest(repo)
	_, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		ScheduleDate: "2026-03-10",
		Shift:        models.ShiftMorning,
	}, 1)

	// The taken-slot check fires before the counter when the shift collides
	if !errors.Is(err, apperrors.ErrScheduleSlotTaken) {
		t.Fatalf("expected ErrScheduleSlotTaken, got %v", err)
	}
}

func TestScheduleCreateDailyLimitWithoutSlotCollision(t *testing.T) {
	// Three slots already exist but the mock tolerates a fourth shift value,
	// so the counter has to be the check that rejects
	repo := newMockScheduleRepo()
	date := mustDate(t, "2026-03-10")
	repo.add(&models.Schedule{ScheduleDate: date, Shift: models.ShiftMorning})
	repo.add(&models.Schedule{ScheduleDate: date, Shift: models.ShiftAfternoon})
	repo.add(&models.Schedule{ScheduleDate: mustDate(t, "2026-03-11"), Shift: models.ShiftMorning})
	repo.add(&models.Schedule{ScheduleDate: date, Shift: models.Shift("Madrugada")})

	svc := newScheduleServiceForTest(repo)
	_, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		ScheduleDate: "2026-03-10",
		Shift:        models.ShiftEvening,
	}, 1)

	if !errors.Is(err, apperrors.ErrScheduleDailyLimit) {
		t.Fatalf("expected ErrScheduleDailyLimit, got %v", err)
	}
}

func TestScheduleCreateRespectsExplicitCapacity(t *testing.T) {
	repo := newMockScheduleRepo()
	svc := newScheduleServiceForTest(repo)

	capacity := 12
	schedule, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		ScheduleDate: "2026-03-12",
		Shift:        models.ShiftEvening,
		MaxCapacity:  &capacity,
	}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if schedule.MaxCapacity != 12 {
		t.Errorf("max capacity = %d, want 12", schedule.MaxCapacity)
	}
}

func TestScheduleCreateRejectsMalformedDate(t *testing.T) {
	svc := newScheduleServiceForTest(newMockScheduleRepo())

	_, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		ScheduleDate: "10/03/2026",
		Shift:        models.ShiftMorning,
	}, 1)

	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestScheduleUpdateRequiresFields(t *testing.T) {
	svc := newScheduleServiceForTest(newMockScheduleRepo())

	_, err := svc.Update(context.Background(), 1, &dto.UpdateScheduleRequest{})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestScheduleUpdateBuildsFieldMap(t *testing.T) {
	repo := newMockScheduleRepo()
	repo.add(&models.Schedule{ScheduleDate: mustDate(t, "2026-03-10"), Shift: models.ShiftMorning})

	svc := newScheduleServiceForTest(repo)
	shift := models.ShiftEvening
	if _, err := svc.Update(context.Background(), 1, &dto.UpdateScheduleRequest{Shift: &shift}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, ok := repo.lastFields["shift"]; !ok || got != models.ShiftEvening {
		t.Errorf("shift field = %v, want %q", got, models.ShiftEvening)
	}
	if _, ok := repo.lastFields["schedule_date"]; ok {
		t.Error("schedule_date should not be updated when absent from the request")
	}
}

func TestScheduleDeleteMissing(t *testing.T) {
	svc := newScheduleServiceForTest(newMockScheduleRepo())

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, apperrors.ErrScheduleNotFound) {
		t.Fatalf("expected ErrScheduleNotFound, got %v", err)
	}
}
