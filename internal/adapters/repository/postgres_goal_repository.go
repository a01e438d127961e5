package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var _ domain.GoalRepository = (*PostgresGoalRepository)(nil)

type PostgresGoalRepository struct {
	db *sqlx.DB
}

func NewPostgresGoalRepository(db *sqlx.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

const goalColumns = `id, user_id, title, sort_order, created_at, updated_at`

func (r *PostgresGoalRepository) Create(ctx context.Context, g *domain.Goal) error {
	query := `
		INSERT INTO goals (id, user_id, title, sort_order, created_at, updated_at)
		VALUES (:id, :user_id, :title, :sort_order, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, g); err != nil {
		if errorCode(err) == codeForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("repository: insert goal failed: %w", err)
	}
	return nil
}

func (r *PostgresGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	var g domain.Goal
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1`

	if err := r.db.GetContext(ctx, &g, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("repository: get goal failed: %w", err)
	}
	return &g, nil
}

func (r *PostgresGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	goals := []*domain.Goal{}
	query := `
		SELECT ` + goalColumns + ` FROM goals
		WHERE user_id = $1
		ORDER BY sort_order ASC, created_at ASC`

	if err := r.db.SelectContext(ctx, &goals, query, userID); err != nil {
		return nil, fmt.Errorf("repository: list goals failed: %w", err)
	}
	return goals, nil
}

func (r *PostgresGoalRepository) Update(ctx context.Context, g *domain.Goal) error {
	query := `
		UPDATE goals SET title = :title, sort_order = :sort_order, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, g)
	if err != nil {
		return fmt.Errorf("repository: update goal failed: %w", err)
	}
	return expectRow(res, domain.ErrGoalNotFound)
}

// UpdateOrder writes every sort order in one statement.
func (r *PostgresGoalRepository) UpdateOrder(ctx context.Context, userID string, goals []*domain.Goal) error {
	if len(goals) == 0 {
		return nil
	}

	ids := make([]string, 0, len(goals))
	orders := make([]int64, 0, len(goals))
	for _, g := range goals {
		ids = append(ids, g.ID)
		orders = append(orders, int64(g.SortOrder))
	}

	query := `
		UPDATE goals AS g
		SET sort_order = v.sort_order, updated_at = NOW()
		FROM (SELECT unnest($1::text[]) AS id, unnest($2::int[]) AS sort_order) AS v
		WHERE g.id = v.id AND g.user_id = $3`

	if _, err := r.db.ExecContext(ctx, query, pq.Array(ids), pq.Array(orders), userID); err != nil {
		return fmt.Errorf("repository: reorder goals failed: %w", err)
	}
	return nil
}

// Delete removes the goal and its completions in one transaction.
func (r *PostgresGoalRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repository: begin delete goal: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM completions WHERE goal_id = $1`, id); err != nil {
		return fmt.Errorf("repository: delete goal completions failed: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: delete goal failed: %w", err)
	}
	if err := expectRow(res, domain.ErrGoalNotFound); err != nil {
		return err
	}

	return tx.Commit()
}

func expectRow(res sql.Result, notFound error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
