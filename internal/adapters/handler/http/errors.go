package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-goals/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Clock supplies the current instant. Its location decides which wall clock
// the 5 AM tracking cutoff is read from.
type Clock func() time.Time

func SystemClock(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}

func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return "", false
	}
	return userID, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, errorResponse{Error: "unauthorized access"})

	case errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrCompletionNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})

	case errors.Is(err, domain.ErrGoalTitleEmpty),
		errors.Is(err, domain.ErrGoalTitleTooLong),
		errors.Is(err, domain.ErrGoalInvalidUserID),
		errors.Is(err, domain.ErrInvalidDateKey),
		errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrMotivationTooLong),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrFutureDate):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrGoalLimitReached):
		c.JSON(http.StatusPaymentRequired, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrCompletionExists):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
