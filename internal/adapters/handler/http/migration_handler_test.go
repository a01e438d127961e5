package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
)

func TestMigrationHandler(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.register(t, "guest@kanso.app")

	payload := gin.H{
		"goals": []gin.H{
			{"id": "temp-1", "title": "Yoga", "sort_order": 5},
			{"id": "server-id", "title": "Not a guest goal"},
		},
		"completions": []gin.H{
			{"goal_id": "temp-1", "date": "2024-06-01"},
			{"goal_id": "temp-1", "date": "bad"},
			{"goal_id": "temp-9", "date": "2024-06-01"},
		},
		"motivation": "Imported line",
	}

	w := app.do(t, http.MethodPost, "/api/v1/migrations/local", token, payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	res := decode[services.ImportResult](t, w)
	assert.Equal(t, 1, res.GoalsImported)
	assert.Equal(t, 1, res.GoalsSkipped)
	assert.Equal(t, 1, res.CompletionsImported)
	assert.Equal(t, 2, res.CompletionsSkipped)
	assert.True(t, res.MotivationImported)

	goals := decode[[]domain.Goal](t, app.do(t, http.MethodGet, "/api/v1/goals", token, nil))
	require.Len(t, goals, 3)
	assert.Equal(t, "Yoga", goals[2].Title)
	assert.False(t, domain.IsGuestID(goals[2].ID))

	motivation := decode[motivationResponse](t, app.do(t, http.MethodGet, "/api/v1/motivation", token, nil))
	assert.Equal(t, "Imported line", motivation.Motivation)

	t.Run("Malformed body", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/api/v1/migrations/local", token, gin.H{"goals": "nope"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
