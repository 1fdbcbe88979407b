package core

import (
	"strings"
	"unicode/utf8"
)

// TaskPatch is a partial update. A nil field is left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

// PatchField is one column assignment of an update.
type PatchField struct {
	Column string
	Value  string
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

func (p TaskPatch) Validate() error {
	if p.Empty() {
		return errEmptyPatch
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return errTitleEmpty
		}
		if utf8.RuneCountInString(title) > MaxTitleLength {
			return errTitleTooLong
		}
	}
	if p.Status != nil && !p.Status.Valid() {
		return errInvalidStatus
	}
	return nil
}

// Fields returns the present fields in a fixed column order: title,
// description, status. Titles are trimmed.
func (p TaskPatch) Fields() []PatchField {
	var title, status *string
	if p.Title != nil {
		v := strings.TrimSpace(*p.Title)
		title = &v
	}
	if p.Status != nil {
		v := string(*p.Status)
		status = &v
	}

	ordered := [...]struct {
		column string
		value  *string
	}{
		{"title", title},
		{"description", p.Description},
		{"status", status},
	}

	out := make([]PatchField, 0, len(ordered))
	for _, f := range ordered {
		if f.value != nil {
			out = append(out, PatchField{Column: f.column, Value: *f.value})
		}
	}
	return out
}

// Apply returns t with the patch applied. It does not touch UpdatedAt.
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
