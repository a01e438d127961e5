package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
)

func TestCalendarHandler(t *testing.T) {
	app := newTestApp(t)

	t.Run("Today", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/v1/calendar/today", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[todayResponse](t, w)
		assert.Equal(t, "2024-06-09", resp.Date)
		assert.Equal(t, "Sunday, June 9", resp.Label)
		assert.Equal(t, "June 2024", resp.Month)
	})

	t.Run("Months across a year boundary", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/v1/calendar/months?year=2024&month=11&count=3", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		items := decode[[]monthListItem](t, w)
		require.Len(t, items, 3)
		assert.Equal(t, "2024-11", items[0].Key)
		assert.Equal(t, "2025-01", items[2].Key)
		assert.Equal(t, "January 2025", items[2].Label)
	})

	t.Run("Months default to the tracking month", func(t *testing.T) {
		items := decode[[]monthListItem](t, app.do(t, http.MethodGet, "/api/v1/calendar/months", "", nil))
		require.Len(t, items, 1)
		assert.Equal(t, "2024-06", items[0].Key)
	})

	t.Run("Month grid", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/v1/calendar/2024/2", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		grid := decode[calendar.MonthGrid](t, w)
		assert.Equal(t, 2024, grid.Year)
		assert.Equal(t, "February 2024", grid.Label)
		require.NotEmpty(t, grid.Weeks)
		assert.Equal(t, "2024-01-28", grid.Weeks[0].Days[0].Key)
	})

	for _, path := range []string{
		"/api/v1/calendar/2024/13",
		"/api/v1/calendar/abc/1",
		"/api/v1/calendar/months?count=0",
		"/api/v1/calendar/months?count=25",
		"/api/v1/calendar/months?month=0",
	} {
		t.Run("Bad request "+path, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodGet, path, "", nil).Code)
		})
	}
}
