package calendar

import (
	"fmt"
	"time"
)

// Day is one cell of a month grid.
type Day struct {
	Date           time.Time `json:"-"`
	Key            string    `json:"date"`
	DayName        string    `json:"day_name"`
	DayOfMonth     int       `json:"day_of_month"`
	IsCurrentMonth bool      `json:"is_current_month"`
}

// Week is a Sunday-first row of seven grid days.
type Week struct {
	StartDate string `json:"start_date"`
	Days      []Day  `json:"days"`
}

// MonthGrid lays a month out as Sunday-first weeks, padded with the trailing
// days of the previous month and the leading days of the next one.
type MonthGrid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Label string     `json:"label"`
	Weeks []Week     `json:"weeks"`
}

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// First is the first day of the month.
func (ym YearMonth) First() time.Time {
	return Date(ym.Year, ym.Month, 1)
}

// Last is the last day of the month.
func (ym YearMonth) Last() time.Time {
	return Date(ym.Year, ym.Month+1, 0)
}

// Days is the number of days in the month.
func (ym YearMonth) Days() int {
	return ym.Last().Day()
}

// String renders the month as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// MonthOf returns the month containing date.
func MonthOf(date time.Time) YearMonth {
	return YearMonth{Year: date.Year(), Month: date.Month()}
}

// GenerateMonthGrid builds the padded grid of a month. A month outside 1..12
// is normalized like time.Date does (month 13 of 2024 is January 2025).
func GenerateMonthGrid(year int, month time.Month) MonthGrid {
	first := Date(year, month, 1)
	ym := MonthOf(first)

	start := WeekStart(first)
	end := WeekEnd(ym.Last())

	grid := MonthGrid{
		Year:  ym.Year,
		Month: ym.Month,
		Label: FormatMonthYear(ym.Year, ym.Month),
	}

	var current []Day
	for _, date := range EachDay(start, end) {
		current = append(current, Day{
			Date:           date,
			Key:            FormatDateKey(date),
			DayName:        date.Weekday().String()[:3],
			DayOfMonth:     date.Day(),
			IsCurrentMonth: date.Month() == ym.Month && date.Year() == ym.Year,
		})

		if len(current) == 7 {
			grid.Weeks = append(grid.Weeks, Week{
				StartDate: current[0].Key,
				Days:      current,
			})
			current = nil
		}
	}

	return grid
}

// MonthRange lists count consecutive months starting at (year, month).
func MonthRange(year int, month time.Month, count int) []YearMonth {
	months := make([]YearMonth, 0, max(count, 0))
	for i := 0; i < count; i++ {
		months = append(months, MonthOf(Date(year, month+time.Month(i), 1)))
	}
	return months
}

// FormatMonthYear renders a month as "January 2024".
func FormatMonthYear(year int, month time.Month) string {
	return Date(year, month, 1).Format("January 2006")
}
