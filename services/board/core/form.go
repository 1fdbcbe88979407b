package core

import "context"

// TaskForm is the create/edit form. Submit checks the title locally and
// never calls the service when it is blank.
type TaskForm struct {
	Title       string
	Description string
	Status      TaskStatus

	editID string
	err    string
}

// NewTaskForm opens an empty form for a task in the given column.
func NewTaskForm(status TaskStatus) *TaskForm {
	if status == "" {
		status = StatusTODO
	}
	return &TaskForm{Status: status}
}

// EditTaskForm opens a form prefilled from t.
func EditTaskForm(t Task) *TaskForm {
	return &TaskForm{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		editID:      t.ID,
	}
}

func (f *TaskForm) Editing() bool {
	return f.editID != ""
}

// Err is the message shown on the form.
func (f *TaskForm) Err() string {
	return f.err
}

func (f *TaskForm) Submit(ctx context.Context, b *Board) (Task, error) {
	f.err = ""
	if isBlank(f.Title) {
		f.err = "Title is required"
		return Task{}, ErrTitleRequired
	}

	var (
		t   Task
		err error
	)
	if f.Editing() {
		title, desc, status := f.Title, f.Description, f.Status
		t, err = b.Update(ctx, f.editID, TaskPatch{Title: &title, Description: &desc, Status: &status})
	} else {
		t, err = b.Add(ctx, TaskInput{Title: f.Title, Description: f.Description, Status: f.Status})
	}
	if err != nil {
		f.err = err.Error()
		return Task{}, err
	}
	return t, nil
}
