package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-goals/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const (
		secret = "test-secret-middleware"
		issuer = "test-issuer"
	)

	users := repository.NewInMemoryUserRepository()
	user, err := domain.NewUser("user-123", "middleware@kanso.app")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))

	setupRouter := func(tokenService *services.TokenService) *gin.Engine {
		router := gin.New()
		router.Use(AuthMiddleware(tokenService))
		router.GET("/protected", func(c *gin.Context) {
			userID, ok := GetUserID(c)
			if !ok {
				c.String(http.StatusInternalServerError, "UserID not found in context")
				return
			}
			c.String(http.StatusOK, "Hello "+userID)
		})
		return router
	}

	call := func(router *gin.Engine, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Success: Valid Token", func(t *testing.T) {
		tokenService := services.NewTokenService(secret, issuer, time.Hour, users)
		token, err := tokenService.GenerateToken(user)
		require.NoError(t, err)

		w := call(setupRouter(tokenService), "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello user-123", w.Body.String())
	})

	t.Run("Fail: Missing Authorization Header", func(t *testing.T) {
		w := call(setupRouter(services.NewTokenService(secret, issuer, time.Hour, users)), "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authorization header required")
	})

	t.Run("Fail: Invalid Header Format", func(t *testing.T) {
		router := setupRouter(services.NewTokenService(secret, issuer, time.Hour, users))

		for _, h := range []string{"Bearer", "Token 12345", "Bearer12345", "Bearer ", "Bearer a b"} {
			w := call(router, h)
			assert.Equal(t, http.StatusUnauthorized, w.Code, "Should fail for header: "+h)
		}
	})

	t.Run("Fail: Token with Wrong Signature", func(t *testing.T) {
		attacker := services.NewTokenService("wrong-secret", issuer, time.Hour, users)
		badToken, _ := attacker.GenerateToken(user)

		w := call(setupRouter(services.NewTokenService(secret, issuer, time.Hour, users)), "Bearer "+badToken)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
	})

	t.Run("Fail: Expired Token", func(t *testing.T) {
		expired := services.NewTokenService(secret, issuer, -time.Second, users)
		token, _ := expired.GenerateToken(user)

		w := call(setupRouter(expired), "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: Deleted User", func(t *testing.T) {
		tokenService := services.NewTokenService(secret, issuer, time.Hour, users)
		token, _ := tokenService.GenerateToken(&domain.User{ID: "ghost", Tier: domain.TierFree})

		w := call(setupRouter(tokenService), "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
