package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
)

const maxMonthRange = 24

type CalendarHandler struct {
	clock Clock
}

func NewCalendarHandler(clock Clock) *CalendarHandler {
	return &CalendarHandler{clock: clock}
}

type todayResponse struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Month string `json:"month"`
}

type monthListItem struct {
	calendar.YearMonth
	Key   string `json:"key"`
	Label string `json:"label"`
}

func (h *CalendarHandler) RegisterRoutes(router *gin.RouterGroup) {
	cal := router.Group("/calendar")
	{
		cal.GET("/today", h.Today)
		cal.GET("/months", h.Months)
		cal.GET("/:year/:month", h.Month)
	}
}

// Today godoc
// @Summary Current tracking day
// @Description Before 5 AM the tracking day is still the previous calendar day.
// @Tags calendar
// @Produce json
// @Success 200 {object} todayResponse
// @Router /calendar/today [get]
func (h *CalendarHandler) Today(c *gin.Context) {
	today := calendar.ResolveTrackingDay(h.clock())

	c.JSON(http.StatusOK, todayResponse{
		Date:  calendar.FormatDateKey(today),
		Label: today.Format("Monday, January 2"),
		Month: calendar.FormatMonthYear(today.Year(), today.Month()),
	})
}

// Months godoc
// @Summary Consecutive months
// @Tags calendar
// @Produce json
// @Param year query int false "First year, defaults to the tracking day's"
// @Param month query int false "First month (1-12), defaults to the tracking day's"
// @Param count query int false "Number of months (1-24)" default(1)
// @Success 200 {array} monthListItem
// @Failure 400 {object} errorResponse
// @Router /calendar/months [get]
func (h *CalendarHandler) Months(c *gin.Context) {
	today := calendar.ResolveTrackingDay(h.clock())

	year, err := intQuery(c, "year", today.Year())
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid year"})
		return
	}
	month, err := intQuery(c, "month", int(today.Month()))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid month"})
		return
	}
	count, err := intQuery(c, "count", 1)
	if err != nil || count < 1 || count > maxMonthRange {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "count must be between 1 and 24"})
		return
	}

	months := calendar.MonthRange(year, time.Month(month), count)
	items := make([]monthListItem, 0, len(months))
	for _, m := range months {
		items = append(items, monthListItem{
			YearMonth: m,
			Key:       m.String(),
			Label:     calendar.FormatMonthYear(m.Year, m.Month),
		})
	}

	c.JSON(http.StatusOK, items)
}

// Month godoc
// @Summary Sunday-first month grid
// @Tags calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} calendar.MonthGrid
// @Failure 400 {object} errorResponse
// @Router /calendar/{year}/{month} [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid month"})
		return
	}

	c.JSON(http.StatusOK, calendar.GenerateMonthGrid(year, time.Month(month)))
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
