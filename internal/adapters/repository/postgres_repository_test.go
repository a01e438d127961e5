package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func setupTestDB(t *testing.T) *sqlx.DB {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "kanso_user"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "kanso_db"),
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}

	require.NoError(t, Migrate(context.Background(), db))
	cleanup(t, db)
	t.Cleanup(func() {
		cleanup(t, db)
		db.Close()
	})
	return db
}

func cleanup(t *testing.T, db *sqlx.DB) {
	_, err := db.Exec("TRUNCATE TABLE completions, goals, users CASCADE")
	require.NoError(t, err, "Failed to clean up database")
}

func createUserFixture(t *testing.T, repo *PostgresUserRepository, email string) *domain.User {
	u, err := domain.NewUser(uuid.New().String(), email)
	require.NoError(t, err)
	require.NoError(t, u.SetPassword("password123"))
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestPostgresUserRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresUserRepository(db)
	ctx := context.Background()

	user := createUserFixture(t, repo, "pg-user@kanso.app")

	t.Run("Get By ID and Email", func(t *testing.T) {
		byID, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, byID.Email)
		assert.Equal(t, domain.TierFree, byID.Tier)

		byEmail, err := repo.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		dup, _ := domain.NewUser(uuid.New().String(), user.Email)
		dup.PasswordHash = "hash"
		assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrEmailAlreadyExists)
	})

	t.Run("Motivation and streaks", func(t *testing.T) {
		require.NoError(t, repo.UpdateMotivation(ctx, user.ID, "Ship it"))
		require.NoError(t, repo.UpdateStreaks(ctx, user.ID, 4, 9))

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ship it", got.Motivation)
		assert.Equal(t, 4, got.CurrentStreak)
		assert.Equal(t, 9, got.LongestStreak)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.ErrorIs(t, repo.UpdateStreaks(ctx, uuid.New().String(), 1, 1), domain.ErrUserNotFound)
	})
}

func TestPostgresGoalAndCompletionRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	users := NewPostgresUserRepository(db)
	goals := NewPostgresGoalRepository(db)
	completions := NewPostgresCompletionRepository(db)
	ctx := context.Background()

	user := createUserFixture(t, users, "pg-goals@kanso.app")

	read, err := domain.NewGoal(user.ID, "Reading", 0)
	require.NoError(t, err)
	run, err := domain.NewGoal(user.ID, "Running", 1)
	require.NoError(t, err)

	t.Run("Create and list in order", func(t *testing.T) {
		require.NoError(t, goals.Create(ctx, run))
		require.NoError(t, goals.Create(ctx, read))

		list, err := goals.ListByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, read.ID, list[0].ID)
		assert.Equal(t, run.ID, list[1].ID)
	})

	t.Run("Goal for unknown user", func(t *testing.T) {
		orphan, _ := domain.NewGoal(uuid.New().String(), "Orphan", 0)
		assert.ErrorIs(t, goals.Create(ctx, orphan), domain.ErrUserNotFound)
	})

	t.Run("Rename", func(t *testing.T) {
		require.NoError(t, read.Rename("Reading 20 pages"))
		require.NoError(t, goals.Update(ctx, read))

		got, err := goals.GetByID(ctx, read.ID)
		require.NoError(t, err)
		assert.Equal(t, "Reading 20 pages", got.Title)
	})

	t.Run("Update order", func(t *testing.T) {
		read.SortOrder, run.SortOrder = 1, 0
		require.NoError(t, goals.UpdateOrder(ctx, user.ID, []*domain.Goal{read, run}))

		list, err := goals.ListByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, run.ID, list[0].ID)
	})

	day := func(d int) time.Time { return calendar.Date(2024, time.June, d) }

	t.Run("Completions round trip date keys", func(t *testing.T) {
		require.NoError(t, completions.Create(ctx, domain.NewCompletion(read.ID, user.ID, day(1))))
		require.NoError(t, completions.Create(ctx, domain.NewCompletion(read.ID, user.ID, day(5))))
		require.NoError(t, completions.Create(ctx, domain.NewCompletion(run.ID, user.ID, day(9))))

		all, err := completions.ListByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "2024-06-01", all[0].Date)
		assert.True(t, all[0].Completed)

		ranged, err := completions.ListByUserIDAndDateRange(ctx, user.ID, day(2), day(9))
		require.NoError(t, err)
		assert.Len(t, ranged, 2)

		ok, err := completions.Exists(ctx, read.ID, "2024-06-05")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Duplicate completion", func(t *testing.T) {
		err := completions.Create(ctx, domain.NewCompletion(read.ID, user.ID, day(1)))
		assert.ErrorIs(t, err, domain.ErrCompletionExists)
	})

	t.Run("Completion for unknown goal", func(t *testing.T) {
		err := completions.Create(ctx, domain.NewCompletion(uuid.New().String(), user.ID, day(1)))
		assert.ErrorIs(t, err, domain.ErrGoalNotFound)
	})

	t.Run("Delete completion", func(t *testing.T) {
		require.NoError(t, completions.Delete(ctx, read.ID, "2024-06-05"))
		assert.ErrorIs(t, completions.Delete(ctx, read.ID, "2024-06-05"), domain.ErrCompletionNotFound)
	})

	t.Run("Delete goal cascades", func(t *testing.T) {
		require.NoError(t, goals.Delete(ctx, read.ID))

		_, err := goals.GetByID(ctx, read.ID)
		assert.ErrorIs(t, err, domain.ErrGoalNotFound)

		all, err := completions.ListByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, run.ID, all[0].GoalID)

		assert.ErrorIs(t, goals.Delete(ctx, read.ID), domain.ErrGoalNotFound)
	})
}
