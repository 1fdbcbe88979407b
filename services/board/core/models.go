package core

import (
	"fmt"
	"strings"
	"time"
)

type TaskStatus string

const (
	StatusTODO       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inprogress"
	StatusDone       TaskStatus = "done"
)

// Statuses lists the board columns in display order.
var Statuses = []TaskStatus{StatusTODO, StatusInProgress, StatusDone}

func (st TaskStatus) Valid() bool {
	switch st {
	case StatusTODO, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Label is the column heading of the status.
func (st TaskStatus) Label() string {
	switch st {
	case StatusTODO:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return string(st)
	}
}

// ParseStatus accepts the wire values case-insensitively.
func ParseStatus(s string) (TaskStatus, error) {
	st := TaskStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: invalid status %q", ErrValidation, s)
	}
	return st, nil
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskInput is the body of a create request. An empty status means todo.
type TaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status,omitempty"`
}

// TaskPatch is a partial update; nil fields are not sent.
type TaskPatch struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// Apply returns t with the present fields of p. UpdatedAt is left alone.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}

type Column struct {
	Status TaskStatus
	Title  string
	Tasks  []Task
}
