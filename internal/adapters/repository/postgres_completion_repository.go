package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

var _ domain.CompletionRepository = (*PostgresCompletionRepository)(nil)

type PostgresCompletionRepository struct {
	db *sqlx.DB
}

func NewPostgresCompletionRepository(db *sqlx.DB) *PostgresCompletionRepository {
	return &PostgresCompletionRepository{db: db}
}

// Dates are read back as text so they keep their YYYY-MM-DD key form.
const completionColumns = `goal_id, user_id, date::text AS date, TRUE AS completed, created_at`

func (r *PostgresCompletionRepository) Create(ctx context.Context, c *domain.Completion) error {
	query := `
		INSERT INTO completions (goal_id, user_id, date, created_at)
		VALUES (:goal_id, :user_id, :date, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		switch errorCode(err) {
		case codeUniqueViolation:
			return domain.ErrCompletionExists
		case codeForeignKeyViolation:
			return domain.ErrGoalNotFound
		}
		return fmt.Errorf("repository: insert completion failed: %w", err)
	}
	return nil
}

func (r *PostgresCompletionRepository) Delete(ctx context.Context, goalID, date string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM completions WHERE goal_id = $1 AND date = $2`, goalID, date)
	if err != nil {
		return fmt.Errorf("repository: delete completion failed: %w", err)
	}
	return expectRow(res, domain.ErrCompletionNotFound)
}

func (r *PostgresCompletionRepository) Exists(ctx context.Context, goalID, date string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM completions WHERE goal_id = $1 AND date = $2)`

	if err := r.db.GetContext(ctx, &exists, query, goalID, date); err != nil {
		return false, fmt.Errorf("repository: completion lookup failed: %w", err)
	}
	return exists, nil
}

func (r *PostgresCompletionRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Completion, error) {
	completions := []*domain.Completion{}
	query := `
		SELECT ` + completionColumns + ` FROM completions
		WHERE user_id = $1
		ORDER BY date ASC, goal_id ASC`

	if err := r.db.SelectContext(ctx, &completions, query, userID); err != nil {
		return nil, fmt.Errorf("repository: list completions failed: %w", err)
	}
	return completions, nil
}

func (r *PostgresCompletionRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Completion, error) {
	completions := []*domain.Completion{}
	query := `
		SELECT ` + completionColumns + ` FROM completions
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC, goal_id ASC`

	err := r.db.SelectContext(ctx, &completions, query, userID,
		calendar.FormatDateKey(from), calendar.FormatDateKey(to))
	if err != nil {
		return nil, fmt.Errorf("repository: list completions in range failed: %w", err)
	}
	return completions, nil
}
