package core

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("invalid task")
	ErrNotFound    = errors.New("task not found")
	ErrUnavailable = errors.New("task service unavailable")
)

// ErrTitleRequired is returned by TaskForm.Submit before any service call.
var ErrTitleRequired = fmt.Errorf("%w: Title is required", ErrValidation)

// ValidateInput checks a create request the way the server does.
func ValidateInput(in TaskInput) error {
	if isBlank(in.Title) {
		return ErrTitleRequired
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("%w: Invalid status", ErrValidation)
	}
	return nil
}

// ValidatePatch checks an update request the way the server does.
func ValidatePatch(p TaskPatch) error {
	if p.Empty() {
		return fmt.Errorf("%w: No fields to update", ErrValidation)
	}
	if p.Title != nil && isBlank(*p.Title) {
		return fmt.Errorf("%w: Title cannot be empty", ErrValidation)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: Invalid status", ErrValidation)
	}
	return nil
}
