package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
)

func TestTokenService_GenerateAndValidate(t *testing.T) {
	secret := "super-secret-key-for-testing"
	issuer := "kanso-test"
	user := &domain.User{ID: "user-123-uuid", Tier: domain.TierPro}

	setup := func() (*services.TokenService, *MockUserRepo) {
		mockRepo := new(MockUserRepo)
		return services.NewTokenService(secret, issuer, 1*time.Hour, mockRepo), mockRepo
	}

	t.Run("Success: Should generate and validate a token", func(t *testing.T) {
		service, mockRepo := setup()
		mockRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

		tokenString, err := service.GenerateToken(user)
		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		extractedID, err := service.ValidateToken(tokenString)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, extractedID)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Success: Token carries the plan", func(t *testing.T) {
		service, _ := setup()
		tokenString, _ := service.GenerateToken(user)

		claims := jwt.MapClaims{}
		_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)

		assert.NoError(t, err)
		assert.Equal(t, "pro", claims["tier"])
		assert.Equal(t, issuer, claims["iss"])
	})

	t.Run("Fail: Should reject valid token if user is deleted (DB check)", func(t *testing.T) {
		service, mockRepo := setup()
		mockRepo.On("GetByID", mock.Anything, user.ID).Return(nil, errors.New("user not found"))

		tokenString, _ := service.GenerateToken(user)

		extractedID, err := service.ValidateToken(tokenString)
		assert.ErrorContains(t, err, "user no longer exists")
		assert.Empty(t, extractedID)
	})

	t.Run("Fail: Should reject expired token", func(t *testing.T) {
		service := services.NewTokenService(secret, issuer, -1*time.Second, new(MockUserRepo))
		tokenString, _ := service.GenerateToken(user)

		extractedID, err := service.ValidateToken(tokenString)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
		assert.Empty(t, extractedID)
	})

	t.Run("Fail: Should reject token with wrong secret (Tampered)", func(t *testing.T) {
		service, _ := setup()
		tokenString, _ := service.GenerateToken(user)

		attacker := services.NewTokenService("wrong-key", issuer, 1*time.Hour, new(MockUserRepo))

		extractedID, err := attacker.ValidateToken(tokenString)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
		assert.Empty(t, extractedID)
	})

	t.Run("Fail: Should reject token with wrong issuer", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokenString, _ := services.NewTokenService(secret, "correct-issuer", 1*time.Hour, mockRepo).GenerateToken(user)

		extractedID, err := services.NewTokenService(secret, "wrong-issuer", 1*time.Hour, mockRepo).ValidateToken(tokenString)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
		assert.Empty(t, extractedID)
	})

	t.Run("Fail: Should reject 'None' algorithm attack", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub": user.ID,
			"iss": issuer,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		fakeTokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

		service, _ := setup()
		_, err := service.ValidateToken(fakeTokenString)

		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("Fail: Should reject malformed token string", func(t *testing.T) {
		service, _ := setup()

		extractedID, err := service.ValidateToken("this-is-not-a-jwt")

		assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
		assert.Empty(t, extractedID)
	})
}
