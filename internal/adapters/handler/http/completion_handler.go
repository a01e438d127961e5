package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
)

type CompletionHandler struct {
	svc   *services.CompletionService
	clock Clock
}

func NewCompletionHandler(svc *services.CompletionService, clock Clock) *CompletionHandler {
	return &CompletionHandler{svc: svc, clock: clock}
}

type toggleRequest struct {
	GoalID string `json:"goal_id" binding:"required"`
	Date   string `json:"date"`
}

func (h *CompletionHandler) RegisterRoutes(router *gin.RouterGroup) {
	completions := router.Group("/completions")
	{
		completions.GET("", h.List)
		completions.POST("/toggle", h.Toggle)
	}
}

// List godoc
// @Summary List completions in a date range
// @Description Without bounds the tracking day's month is returned.
// @Tags completions
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {array} domain.Completion
// @Failure 400 {object} errorResponse
// @Router /completions [get]
func (h *CompletionHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	month := calendar.MonthOf(calendar.ResolveTrackingDay(h.clock()))
	from, err := parseDateParam(c.Query("from"), month.First())
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := parseDateParam(c.Query("to"), month.Last())
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid to date, expected YYYY-MM-DD"})
		return
	}

	list, err := h.svc.List(c.Request.Context(), userID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Toggle godoc
// @Summary Flip a goal's completion on a day
// @Description An empty date toggles the tracking day. Future days are rejected.
// @Tags completions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body toggleRequest true "Goal and optional day"
// @Success 200 {object} services.ToggleResult
// @Failure 403 {object} errorResponse
// @Failure 422 {object} errorResponse "Future date"
// @Router /completions/toggle [post]
func (h *CompletionHandler) Toggle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := h.svc.Toggle(c.Request.Context(), services.ToggleInput{
		UserID: userID,
		GoalID: req.GoalID,
		Date:   req.Date,
	}, h.clock())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseDateParam(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	return calendar.ParseDateKey(value)
}
