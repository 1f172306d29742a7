package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/reposapp/backend/internal/app/models"
	"github.com/reposapp/backend/internal/db"
	"github.com/reposapp/backend/internal/pkg/apperrors"
	"github.com/reposapp/backend/internal/pkg/dberrors"
	"github.com/reposapp/backend/internal/pkg/logger"
)

const scheduleColumns = "id, schedule_date, shift, max_capacity, created_by_user_id, created_at, updated_at"

// ScheduleRepository handles schedule slot database operations. It keeps the
// PostgresDB wrapper rather than the bare pool because Create needs the
// transaction helper.
type ScheduleRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(database *db.PostgresDB) *ScheduleRepository {
	return &ScheduleRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanSchedule(row pgx.Row) (*models.Schedule, error) {
	schedule := &models.Schedule{}
	err := row.Scan(
		&schedule.ID, &schedule.ScheduleDate, &schedule.Shift, &schedule.MaxCapacity,
		&schedule.CreatedByUserID, &schedule.CreatedAt, &schedule.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// Create inserts a new schedule slot inside a transaction that serializes
// concurrent creations for the same date: existing rows for the date are
// locked, the daily cap is re-checked, and the (schedule_date, shift) unique
// constraint backstops the slot check.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	var created *models.Schedule

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		lockSql, lockArgs, err := r.sb.Select("id").
			From("schedules").
			Where(squirrel.Eq{"schedule_date": schedule.ScheduleDate}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build schedule lock query: %w", err)
		}

		rows, err := tx.Query(ctx, lockSql, lockArgs...)
		if err != nil {
			logger.Error().Err(err).Msg("Error locking schedule rows for date")
			return fmt.Errorf("error locking schedules for date: %w", err)
		}
		count := 0
		for rows.Next() {
			count++
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating locked schedule rows: %w", err)
		}

		if count >= models.MaxSchedulesPerDay {
			return apperrors.ErrScheduleDailyLimit
		}

		insertSql, insertArgs, err := r.sb.Insert("schedules").
			Columns("schedule_date", "shift", "max_capacity", "created_by_user_id").
			Values(schedule.ScheduleDate, schedule.Shift, schedule.MaxCapacity, schedule.CreatedByUserID).
			Suffix("RETURNING " + scheduleColumns).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create schedule query: %w", err)
		}

		created, err = scanSchedule(tx.QueryRow(ctx, insertSql, insertArgs...))
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrScheduleSlotTaken
			}
			logger.Error().Err(err).Msg("Error executing create schedule query")
			return fmt.Errorf("error creating schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetByID retrieves a schedule by id
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	sql, args, err := r.sb.Select(scheduleColumns).
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get schedule query: %w", err)
	}

	schedule, err := scanSchedule(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error scanning schedule row")
		return nil, fmt.Errorf("error getting schedule by ID: %w", err)
	}

	return schedule, nil
}

// GetByDateAndShift retrieves the schedule occupying a (date, shift) slot, or
// ErrScheduleNotFound when the slot is free.
func (r *ScheduleRepository) GetByDateAndShift(ctx context.Context, date time.Time, shift models.Shift) (*models.Schedule, error) {
	sql, args, err := r.sb.Select(scheduleColumns).
		From("schedules").
		Where(squirrel.Eq{"schedule_date": date, "shift": shift}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get schedule by slot query: %w", err)
	}

	schedule, err := scanSchedule(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		logger.Error().Err(err).Msg("Error scanning schedule row by slot")
		return nil, fmt.Errorf("error getting schedule by date and shift: %w", err)
	}

	return schedule, nil
}

// CountByDate counts the schedules registered for a date
func (r *ScheduleRepository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("schedules").
		Where(squirrel.Eq{"schedule_date": date}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count schedules query: %w", err)
	}

	var count int
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting schedules for date")
		return 0, fmt.Errorf("error counting schedules by date: %w", err)
	}

	return count, nil
}

// GetAll retrieves all schedules ordered by date and shift
func (r *ScheduleRepository) GetAll(ctx context.Context) ([]*models.Schedule, error) {
	sql, args, err := r.sb.Select(scheduleColumns).
		From("schedules").
		OrderBy("schedule_date ASC", "shift ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all schedules query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all schedules query")
		return nil, fmt.Errorf("error querying schedules: %w", err)
	}
	defer rows.Close()

	schedules := []*models.Schedule{}
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning schedule row: %w", err)
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}

	return schedules, nil
}

// Update applies a partial update and returns the stored record
func (r *ScheduleRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Schedule, error) {
	fields["updated_at"] = squirrel.Expr("NOW()")

	sql, args, err := r.sb.Update("schedules").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + scheduleColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update schedule query: %w", err)
	}

	schedule, err := scanSchedule(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrScheduleSlotTaken
		}
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error executing update schedule query")
		return nil, fmt.Errorf("error updating schedule: %w", err)
	}

	return schedule, nil
}

// Delete removes a schedule by id
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete schedule query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("schedule has associated replacements and cannot be deleted")
		}
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error executing delete schedule query")
		return fmt.Errorf("error deleting schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}
