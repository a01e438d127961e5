package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

func TestNewCompletion(t *testing.T) {
	c := domain.NewCompletion("g1", "u1", time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-06-09", c.Date)
	assert.True(t, c.Completed)
	assert.NoError(t, c.Validate())
	assert.Equal(t, domain.CompletionKey{GoalID: "g1", Date: "2024-06-09"}, c.Key())
}

func TestCompletion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       domain.Completion
		wantErr bool
	}{
		{"Valid", domain.Completion{GoalID: "g", UserID: "u", Date: "2024-01-01"}, false},
		{"Missing goal", domain.Completion{UserID: "u", Date: "2024-01-01"}, true},
		{"Missing user", domain.Completion{GoalID: "g", Date: "2024-01-01"}, true},
		{"Malformed date", domain.Completion{GoalID: "g", UserID: "u", Date: "01/01/2024"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompletionSet(t *testing.T) {
	t.Run("Success: Membership by composite key", func(t *testing.T) {
		set := domain.CompletionSetFrom([]*domain.Completion{
			{GoalID: "g1", Date: "2024-01-02"},
			{GoalID: "g1", Date: "2024-01-01"},
			{GoalID: "g2", Date: "2024-01-01"},
		})

		assert.Equal(t, 3, set.Len())
		assert.True(t, set.Has("g1", "2024-01-01"))
		assert.True(t, set.Has("g2", "2024-01-01"))
		assert.False(t, set.Has("g2", "2024-01-02"))
		assert.Equal(t, "2024-01-01", calendar.FormatDateKey(set.Earliest()))
	})

	t.Run("Success: Separator characters in ids do not collide", func(t *testing.T) {
		set := domain.CompletionSetFrom([]*domain.Completion{
			{GoalID: "a-2024", Date: "2024-01-01"},
		})

		assert.True(t, set.Has("a-2024", "2024-01-01"))
		assert.False(t, set.Has("a", "2024-2024-01-01"))
	})

	t.Run("Success: Duplicates collapse to one record", func(t *testing.T) {
		set := domain.CompletionSetFrom([]*domain.Completion{
			{GoalID: "g1", Date: "2024-01-01"},
			{GoalID: "g1", Date: "2024-01-01"},
		})
		assert.Equal(t, 1, set.Len())
	})

	t.Run("Success: Malformed dates and nil records are skipped", func(t *testing.T) {
		set := domain.CompletionSetFrom([]*domain.Completion{
			nil,
			{GoalID: "g1", Date: "not-a-date"},
			{GoalID: "g1", Date: "2024-13-01"},
			{GoalID: "g1", Date: "2024-03-01"},
		})

		require.Equal(t, 1, set.Len())
		assert.True(t, set.Has("g1", "2024-03-01"))
	})

	t.Run("Success: Nil and empty sets are usable", func(t *testing.T) {
		var nilSet *domain.CompletionSet
		assert.False(t, nilSet.Has("g", "2024-01-01"))
		assert.Zero(t, nilSet.Len())
		assert.True(t, nilSet.Earliest().IsZero())
		assert.True(t, domain.NewCompletionSet().Earliest().IsZero())
	})
}
