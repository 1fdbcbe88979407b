package core

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskInvalidArgs = errors.New("task invalid args")
)

// invalid wraps ErrTaskInvalidArgs with a message meant for the API caller.
func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrTaskInvalidArgs, msg)
}

var (
	errTitleRequired = invalid("Title is required")
	errTitleEmpty    = invalid("Title cannot be empty")
	errTitleTooLong  = invalid(fmt.Sprintf("Title exceeds %d characters", MaxTitleLength))
	errInvalidStatus = invalid("Invalid status")
	errEmptyPatch    = invalid("No fields to update")
	errInvalidID     = invalid("Invalid id")
)
