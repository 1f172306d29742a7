package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reposapp/backend/internal/app/models"
	"github.com/reposapp/backend/internal/pkg/apperrors"
	"github.com/reposapp/backend/internal/pkg/dberrors"
	"github.com/reposapp/backend/internal/pkg/logger"
)

const replacementColumns = "id, student_id, schedule_id, justification, is_present, preceptor_add_by, schedule_at"

// ReplacementRepository handles attendance record database operations
type ReplacementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReplacementRepository creates a new ReplacementRepository
func NewReplacementRepository(db *pgxpool.Pool) *ReplacementRepository {
	return &ReplacementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanReplacement(row pgx.Row) (*models.Replacement, error) {
	replacement := &models.Replacement{}
	err := row.Scan(
		&replacement.ID, &replacement.StudentID, &replacement.ScheduleID, &replacement.Justification,
		&replacement.IsPresent, &replacement.PreceptorAddBy, &replacement.ScheduleAt)
	if err != nil {
		return nil, err
	}
	return replacement, nil
}

// Create inserts a new replacement and returns the stored record. A foreign
// key violation means the referenced student or schedule does not exist.
func (r *ReplacementRepository) Create(ctx context.Context, replacement *models.Replacement) (*models.Replacement, error) {
	sql, args, err := r.sb.Insert("replacements").
		Columns("student_id", "schedule_id", "justification", "is_present", "preceptor_add_by", "schedule_at").
		Values(replacement.StudentID, replacement.ScheduleID, replacement.Justification,
			replacement.IsPresent, replacement.PreceptorAddBy, replacement.ScheduleAt).
		Suffix("RETURNING " + replacementColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create replacement query: %w", err)
	}

	created, err := scanReplacement(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("referenced student or schedule does not exist")
		}
		logger.Error().Err(err).Msg("Error executing create replacement query")
		return nil, fmt.Errorf("error creating replacement: %w", err)
	}

	return created, nil
}

// GetByID retrieves a replacement by id
func (r *ReplacementRepository) GetByID(ctx context.Context, id int64) (*models.Replacement, error) {
	sql, args, err := r.sb.Select(replacementColumns).
		From("replacements").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get replacement query: %w", err)
	}

	replacement, err := scanReplacement(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReplacementNotFound
		}
		logger.Error().Err(err).Int64("replacementID", id).Msg("Error scanning replacement row")
		return nil, fmt.Errorf("error getting replacement by ID: %w", err)
	}

	return replacement, nil
}

// GetAll retrieves all replacements ordered by session time
func (r *ReplacementRepository) GetAll(ctx context.Context) ([]*models.Replacement, error) {
	sql, args, err := r.sb.Select(replacementColumns).
		From("replacements").
		OrderBy("schedule_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all replacements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all replacements query")
		return nil, fmt.Errorf("error querying replacements: %w", err)
	}
	defer rows.Close()

	replacements := []*models.Replacement{}
	for rows.Next() {
		replacement, err := scanReplacement(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning replacement row: %w", err)
		}
		replacements = append(replacements, replacement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating replacement rows: %w", err)
	}

	return replacements, nil
}

// Update applies a partial update and returns the stored record
func (r *ReplacementRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Replacement, error) {
	fields["updated_at"] = squirrel.Expr("NOW()")

	sql, args, err := r.sb.Update("replacements").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + replacementColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update replacement query: %w", err)
	}

	replacement, err := scanReplacement(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReplacementNotFound
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("referenced student or schedule does not exist")
		}
		logger.Error().Err(err).Int64("replacementID", id).Msg("Error executing update replacement query")
		return nil, fmt.Errorf("error updating replacement: %w", err)
	}

	return replacement, nil
}

// Delete removes a replacement by id
func (r *ReplacementRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("replacements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete replacement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("replacementID", id).Msg("Error executing delete replacement query")
		return fmt.Errorf("error deleting replacement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReplacementNotFound
	}

	return nil
}
