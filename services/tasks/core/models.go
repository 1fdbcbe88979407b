package core

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTitleLength matches the width of the title column.
const MaxTitleLength = 255

type TaskStatus string

const (
	StatusTODO       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inprogress"
	StatusDone       TaskStatus = "done"
)

func (st TaskStatus) Valid() bool {
	switch st {
	case StatusTODO, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

type Task struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Status      TaskStatus `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

// NextUpdatedAt is the updated_at a patch stamps over prev: now, or one
// microsecond past prev when the clock has not moved beyond it.
func NextUpdatedAt(prev, now time.Time) time.Time {
	if next := prev.Add(time.Microsecond); now.Before(next) {
		return next
	}
	return now
}

// Validate checks the invariants every stored task holds.
func (t Task) Validate() error {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return errTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errTitleTooLong
	}
	if !t.Status.Valid() {
		return errInvalidStatus
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return invalid("updated_at precedes created_at")
	}
	return nil
}
