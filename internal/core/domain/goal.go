package domain

import (
	"errors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrGoalTitleEmpty    = errors.New("goal title cannot be empty")
	ErrGoalTitleTooLong  = errors.New("goal title is too long (max 100 chars)")
	ErrGoalInvalidUserID = errors.New("invalid user id")
	ErrGoalLimitReached  = errors.New("goal limit reached for the current plan")
)

const (
	MaxGoalTitleLen = 100

	// GuestIDPrefix marks ids minted by a guest client before sign-in.
	GuestIDPrefix = "temp-"
)

type Goal struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	SortOrder int       `json:"sort_order" db:"sort_order"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrGoalTitleEmpty
	}
	if utf8.RuneCountInString(trimmed) > MaxGoalTitleLen {
		return "", ErrGoalTitleTooLong
	}
	return trimmed, nil
}

func NewGoal(userID, title string, sortOrder int) (*Goal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrGoalInvalidUserID
	}

	cleanTitle, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Goal{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     cleanTitle,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (g *Goal) Rename(title string) error {
	cleanTitle, err := validateTitle(title)
	if err != nil {
		return err
	}

	g.Title = cleanTitle
	g.UpdatedAt = time.Now().UTC()
	return nil
}

func (g *Goal) ChangePosition(newOrder int) {
	if g.SortOrder == newOrder {
		return
	}
	g.SortOrder = newOrder
	g.UpdatedAt = time.Now().UTC()
}

func IsGuestID(id string) bool {
	return strings.HasPrefix(id, GuestIDPrefix)
}

// SortGoals orders goals by sort order, breaking ties by creation time.
func SortGoals(goals []*Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		if goals[i].SortOrder != goals[j].SortOrder {
			return goals[i].SortOrder < goals[j].SortOrder
		}
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
}

// NextSortOrder is one past the highest sort order in goals, or 0 when empty.
func NextSortOrder(goals []*Goal) int {
	if len(goals) == 0 {
		return 0
	}

	highest := goals[0].SortOrder
	for _, g := range goals[1:] {
		if g.SortOrder > highest {
			highest = g.SortOrder
		}
	}
	return highest + 1
}

// MoveGoal moves the goal activeID to the index currently held by overID and
// renumbers every goal's sort order to its new index. It reports false when
// either id is unknown, leaving goals untouched.
func MoveGoal(goals []*Goal, activeID, overID string) ([]*Goal, bool) {
	from, to := -1, -1
	for i, g := range goals {
		if g.ID == activeID {
			from = i
		}
		if g.ID == overID {
			to = i
		}
	}
	if from == -1 || to == -1 {
		return goals, false
	}

	reordered := make([]*Goal, 0, len(goals))
	reordered = append(reordered, goals[:from]...)
	reordered = append(reordered, goals[from+1:]...)

	moved := goals[from]
	reordered = append(reordered[:to], append([]*Goal{moved}, reordered[to:]...)...)

	for i, g := range reordered {
		g.ChangePosition(i)
	}
	return reordered, true
}
