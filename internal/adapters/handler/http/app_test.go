package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-goals/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
)

// Sunday 2024-06-09, 10:00 UTC.
var fixedNow = time.Date(2024, time.June, 9, 10, 0, 0, 0, time.UTC)

type testApp struct {
	router *gin.Engine
	users  *repository.InMemoryUserRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	completions := repository.NewInMemoryCompletionRepository()
	goals := repository.NewInMemoryGoalRepository(completions)
	users := repository.NewInMemoryUserRepository()
	clock := func() time.Time { return fixedNow }

	tokens := services.NewTokenService("handler-test-secret", "kanso-test", time.Hour, users)
	goalSvc := services.NewGoalService(goals, users, domain.DefaultFreeMaxGoals)

	router := NewRouter(RouterDependencies{
		AuthHandler:       NewAuthHandler(services.NewAuthService(users, goalSvc), tokens),
		GoalHandler:       NewGoalHandler(goalSvc),
		CompletionHandler: NewCompletionHandler(services.NewCompletionService(completions, goals, nil), clock),
		AnalyticsHandler:  NewAnalyticsHandler(services.NewAnalyticsService(users, goals, completions, domain.DefaultFreeMaxGoals), clock),
		CalendarHandler:   NewCalendarHandler(clock),
		ProfileHandler:    NewProfileHandler(services.NewProfileService(users, domain.DefaultFreeMaxGoals)),
		MigrationHandler:  NewMigrationHandler(services.NewMigrationService(users, goals, completions, nil)),
		TokenService:      tokens,
		StartTime:         time.Now(),
	})

	return &testApp{router: router, users: users}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// register creates an account and returns its token and id.
func (a *testApp) register(t *testing.T, email string) (string, string) {
	t.Helper()

	w := a.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{"email": email, "password": "password123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
