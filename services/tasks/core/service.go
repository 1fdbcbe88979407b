package core

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Service struct {
	db    DB
	now   func() time.Time
	newID func() string
}

type Option func(*Service)

// WithClock overrides the clock used for created_at / updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides the task id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(db DB, opts ...Option) *Service {
	s := &Service{
		db:    db,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp is truncated to microseconds, the precision both supported
// databases keep.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Service) ListTasks(ctx context.Context) ([]Task, error) {
	items, err := s.db.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Task{}
	}
	return items, nil
}

// CreateTask stores a new task. An empty status defaults to todo.
func (s *Service) CreateTask(ctx context.Context, title, description string, status TaskStatus) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, errTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return Task{}, errTitleTooLong
	}
	if status == "" {
		status = StatusTODO
	}
	if !status.Valid() {
		return Task{}, errInvalidStatus
	}

	now := s.timestamp()
	return s.db.CreateTask(ctx, Task{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *Service) GetTask(ctx context.Context, id string) (Task, error) {
	if strings.TrimSpace(id) == "" {
		return Task{}, errInvalidID
	}
	return s.db.GetTask(ctx, id)
}

func (s *Service) PatchTask(ctx context.Context, id string, p TaskPatch) (Task, error) {
	if strings.TrimSpace(id) == "" {
		return Task{}, errInvalidID
	}
	if err := p.Validate(); err != nil {
		return Task{}, err
	}
	return s.db.PatchTask(ctx, id, p, s.timestamp())
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errInvalidID
	}
	return s.db.DeleteTask(ctx, id)
}
