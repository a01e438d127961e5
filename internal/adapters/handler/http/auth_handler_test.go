package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateMotivation(ctx context.Context, id, motivation string) error {
	return m.Called(ctx, id, motivation).Error(0)
}

func (m *MockUserRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	return m.Called(ctx, id, current, longest).Error(0)
}

func setupAuthHandler() (*gin.Engine, *MockUserRepository) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockUserRepository)
	tokens := services.NewTokenService("auth-handler-secret", "kanso-test", time.Hour, mockRepo)
	handler := NewAuthHandler(services.NewAuthService(mockRepo, nil), tokens)

	router := gin.New()
	handler.RegisterRoutes(router.Group(""))
	return router, mockRepo
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success: Returns 201 with token and no password", func(t *testing.T) {
		router, mockRepo := setupAuthHandler()
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		w := postJSON(router, "/auth/register", gin.H{"email": "api_test@kanso.app", "password": "PasswordSegreta1!"})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp authResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "api_test@kanso.app", resp.User.Email)
		assert.Equal(t, domain.TierFree, resp.User.Tier)
		assert.NotEmpty(t, resp.User.ID)
		assert.NotEmpty(t, resp.Token)
		assert.NotContains(t, w.Body.String(), "password")

		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail: 400 for invalid email", func(t *testing.T) {
		router, mockRepo := setupAuthHandler()

		w := postJSON(router, "/auth/register", gin.H{"email": "not-an-email", "password": "Password123!"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: 400 for short password", func(t *testing.T) {
		router, mockRepo := setupAuthHandler()

		w := postJSON(router, "/auth/register", gin.H{"email": "valid@email.com", "password": "short"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: 409 if email exists", func(t *testing.T) {
		router, mockRepo := setupAuthHandler()
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrEmailAlreadyExists)

		w := postJSON(router, "/auth/register", gin.H{"email": "duplicate@kanso.app", "password": "PasswordValida!"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "email already exists")
	})

	t.Run("Fail: 500 on DB failure", func(t *testing.T) {
		router, mockRepo := setupAuthHandler()
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db connection lost"))

		w := postJSON(router, "/auth/register", gin.H{"email": "crash@kanso.app", "password": "PasswordValida!"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal server error")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	user, err := domain.NewUser("user-1", "login@kanso.app")
	require.NoError(t, err)
	require.NoError(t, user.SetPassword("correct-horse"))

	t.Run("Success: Returns token", func(t *testing.T) {
		router, mockRepo := setupAuthHandler()
		mockRepo.On("GetByEmail", mock.Anything, "login@kanso.app").Return(user, nil)

		w := postJSON(router, "/auth/login", gin.H{"email": "login@kanso.app", "password": "correct-horse"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token"`)
	})

	t.Run("Fail: Wrong password", func(t *testing.T) {
		router, mockRepo := setupAuthHandler()
		mockRepo.On("GetByEmail", mock.Anything, "login@kanso.app").Return(user, nil)

		w := postJSON(router, "/auth/login", gin.H{"email": "login@kanso.app", "password": "wrong-horse"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: Unknown user looks the same", func(t *testing.T) {
		router, mockRepo := setupAuthHandler()
		mockRepo.On("GetByEmail", mock.Anything, "ghost@kanso.app").Return(nil, domain.ErrUserNotFound)

		w := postJSON(router, "/auth/login", gin.H{"email": "ghost@kanso.app", "password": "whatever1"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid credentials")
	})
}
