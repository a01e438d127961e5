package analytics

// Report is the full analytics bundle for one window. A report built from
// insufficient data is still fully populated: counts and percentages are
// zero and every series is an empty, non-nil slice.
type Report struct {
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	TotalDays   int    `json:"total_days"`
	TotalGoals  int    `json:"total_goals"`

	TotalCompletions        int     `json:"total_completions"`
	CompletionRate          float64 `json:"completion_rate"`
	CurrentStreak           int     `json:"current_streak"`
	LongestStreak           int     `json:"longest_streak"`
	AverageDailyCompletions float64 `json:"average_daily_completions"`
	ConsistencyScore        float64 `json:"consistency_score"`

	Goals    []GoalStat    `json:"goals"`
	Weekdays []WeekdayStat `json:"weekdays"`
	Months   []MonthStat   `json:"months"`
	Weeks    []WeekStat    `json:"weeks"`
	Daily    []DailyPoint  `json:"daily"`
}

// GoalStat is the completion rate of one goal over the window.
type GoalStat struct {
	GoalID    string  `json:"goal_id"`
	Title     string  `json:"title"`
	Completed int     `json:"completed"`
	Rate      float64 `json:"rate"`
}

// WeekdayStat buckets completions by day of week, Sunday = 0.
type WeekdayStat struct {
	Weekday   int     `json:"weekday"`
	Name      string  `json:"name"`
	Completed int     `json:"completed"`
	Possible  int     `json:"possible"`
	Rate      float64 `json:"rate"`
}

// MonthStat compares one full calendar month.
type MonthStat struct {
	Month     string  `json:"month"`
	Label     string  `json:"label"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"`
}

// WeekStat is one Sunday-start week of the weekly series.
type WeekStat struct {
	WeekStart string `json:"week_start"`
	Completed int    `json:"completed"`
}

// DailyPoint is the number of goals completed on one day.
type DailyPoint struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}
