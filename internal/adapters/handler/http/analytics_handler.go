package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
)

// maxCustomDays bounds custom windows to roughly one year.
const maxCustomDays = 366

type AnalyticsHandler struct {
	svc   *services.AnalyticsService
	clock Clock
}

func NewAnalyticsHandler(svc *services.AnalyticsService, clock Clock) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, clock: clock}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/analytics", h.GetReport)
}

// GetReport godoc
// @Summary Aggregate completions over a window
// @Description Free accounts only see their first goals and the current month.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param window query string false "all, last7, last30, last3months, year or custom" default(all)
// @Param start query string false "Custom window start (YYYY-MM-DD)"
// @Param end query string false "Custom window end (YYYY-MM-DD)"
// @Param months query string false "Comma separated months shown in the tracker (YYYY-MM), at most 24, each within 24 months of the current month"
// @Success 200 {object} analytics.Report
// @Failure 400 {object} errorResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	now := h.clock()
	req := domain.WindowRequest{
		Selector: domain.WindowSelector(c.DefaultQuery("window", string(domain.WindowAllTime))),
	}

	if req.Selector == domain.WindowCustom {
		start, err := calendar.ParseDateKey(c.Query("start"))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid start, expected YYYY-MM-DD"})
			return
		}
		end, err := calendar.ParseDateKey(c.Query("end"))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid end, expected YYYY-MM-DD"})
			return
		}
		if end.Before(start) {
			handleError(c, domain.ErrInvalidWindow)
			return
		}
		if calendar.DaysBetween(start, end) > maxCustomDays {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "date range too large, max 1 year allowed"})
			return
		}
		req.Start, req.End = start, end
	}

	months, err := parseMonths(c.Query("months"), calendar.MonthOf(calendar.ResolveTrackingDay(now)))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	req.Months = months

	report, err := h.svc.Report(c.Request.Context(), services.ReportInput{
		UserID: userID,
		Window: req,
		Now:    now,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

var (
	errInvalidMonths  = errors.New("invalid months, expected YYYY-MM list")
	errMonthsTooMany  = fmt.Errorf("too many months, max %d allowed", maxMonthRange)
	errMonthOutOfSpan = fmt.Errorf("months must lie within %d months of the current month", maxMonthRange)
)

// parseMonths reads the tracker's month list. Every month must sit within
// maxMonthRange months of current so the all-time window stays bounded.
func parseMonths(value string, current calendar.YearMonth) ([]calendar.YearMonth, error) {
	if value == "" {
		return nil, nil
	}

	parts := strings.Split(value, ",")
	if len(parts) > maxMonthRange {
		return nil, errMonthsTooMany
	}

	months := make([]calendar.YearMonth, 0, len(parts))
	for _, part := range parts {
		t, err := time.Parse("2006-01", strings.TrimSpace(part))
		if err != nil {
			return nil, errInvalidMonths
		}

		m := calendar.MonthOf(t)
		offset := (m.Year-current.Year)*12 + int(m.Month) - int(current.Month)
		if offset < -maxMonthRange || offset > maxMonthRange {
			return nil, errMonthOutOfSpan
		}
		months = append(months, m)
	}
	return months, nil
}
