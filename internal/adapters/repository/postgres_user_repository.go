package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

var _ domain.UserRepository = (*PostgresUserRepository)(nil)

type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

const userColumns = `id, email, password_hash, tier, motivation, current_streak, longest_streak, created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (:id, :email, :password_hash, :tier, :motivation, :current_streak, :longest_streak, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		if errorCode(err) == codeUniqueViolation {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("repository: create user failed: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *PostgresUserRepository) UpdateMotivation(ctx context.Context, id, motivation string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET motivation = $1, updated_at = NOW() WHERE id = $2`, motivation, id)
	if err != nil {
		return fmt.Errorf("repository: update motivation failed: %w", err)
	}
	return expectRow(res, domain.ErrUserNotFound)
}

func (r *PostgresUserRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET current_streak = $1, longest_streak = $2, updated_at = NOW() WHERE id = $3`,
		current, longest, id)
	if err != nil {
		return fmt.Errorf("repository: update streaks failed: %w", err)
	}
	return expectRow(res, domain.ErrUserNotFound)
}

func (r *PostgresUserRepository) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: get user failed: %w", err)
	}
	return &user, nil
}
