package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
)

var (
	ErrCompletionNotFound = errors.New("completion not found")
	ErrCompletionExists   = errors.New("goal already completed on this date")
	ErrFutureDate         = errors.New("cannot complete a goal on a future date")
	ErrInvalidDateKey     = calendar.ErrInvalidDateKey
)

// Completion records that a goal was done on a calendar day. Absence of a
// record means the goal was not done; there is no stored false state.
type Completion struct {
	GoalID    string    `json:"goal_id" db:"goal_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Date      string    `json:"date" db:"date"`
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewCompletion(goalID, userID string, date time.Time) *Completion {
	return &Completion{
		GoalID:    goalID,
		UserID:    userID,
		Date:      calendar.FormatDateKey(date),
		Completed: true,
		CreatedAt: time.Now().UTC(),
	}
}

func (c *Completion) Validate() error {
	if strings.TrimSpace(c.GoalID) == "" {
		return errors.New("goal_id is required")
	}
	if strings.TrimSpace(c.UserID) == "" {
		return errors.New("user_id is required")
	}
	if _, err := calendar.ParseDateKey(c.Date); err != nil {
		return err
	}
	return nil
}

func (c *Completion) Key() CompletionKey {
	return CompletionKey{GoalID: c.GoalID, Date: c.Date}
}

// CompletionKey is the composite identity of a completion. Hashing the pair
// directly keeps ids containing separators from colliding.
type CompletionKey struct {
	GoalID string
	Date   string
}

// CompletionSet is a sparse set of completed (goal, day) pairs with constant
// time membership checks.
type CompletionSet struct {
	keys     map[CompletionKey]struct{}
	earliest time.Time
}

func NewCompletionSet() *CompletionSet {
	return &CompletionSet{keys: make(map[CompletionKey]struct{})}
}

// CompletionSetFrom builds a set from stored records. Records with a
// malformed date are skipped rather than failing the whole set.
func CompletionSetFrom(records []*Completion) *CompletionSet {
	set := NewCompletionSet()
	for _, r := range records {
		if r == nil {
			continue
		}
		date, err := calendar.ParseDateKey(r.Date)
		if err != nil {
			continue
		}
		set.Add(r.GoalID, date)
	}
	return set
}

func (s *CompletionSet) Add(goalID string, date time.Time) {
	day := calendar.DateOf(date)
	s.keys[CompletionKey{GoalID: goalID, Date: calendar.FormatDateKey(day)}] = struct{}{}

	if s.earliest.IsZero() || day.Before(s.earliest) {
		s.earliest = day
	}
}

// Has reports whether goalID is completed on the day identified by dateKey.
func (s *CompletionSet) Has(goalID, dateKey string) bool {
	if s == nil {
		return false
	}
	_, ok := s.keys[CompletionKey{GoalID: goalID, Date: dateKey}]
	return ok
}

func (s *CompletionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Earliest is the first completed day, or the zero time for an empty set.
func (s *CompletionSet) Earliest() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.earliest
}
