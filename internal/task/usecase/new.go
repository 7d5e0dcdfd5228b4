package usecase

import (
	"context"
	"time"

	"task-master/internal/task"
	"task-master/internal/task/repository"
	"task-master/internal/voice"
	"task-master/pkg/datemath"
	"task-master/pkg/gcalendar"
	pkgLog "task-master/pkg/log"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultSessionTTL    = 30 * time.Minute
	defaultMaxSessions   = 1024
	defaultEventDuration = time.Hour
)

// CalendarClient mirrors created tasks as calendar events.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config tunes the voice session cache and calendar mirroring.
type Config struct {
	SessionTTL    time.Duration
	MaxSessions   int
	CalendarID    string
	EventDuration time.Duration
}

// Option overrides a collaborator, mostly for tests.
type Option func(*implUseCase)

// WithClock sets the source of "now".
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithIDGenerator sets the task id generator.
func WithIDGenerator(newID func() string) Option {
	return func(uc *implUseCase) { uc.newID = newID }
}

// WithCalendar enables mirroring created tasks to a calendar.
func WithCalendar(c CalendarClient) Option {
	return func(uc *implUseCase) { uc.calendar = c }
}

type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.Repository
	dateMath      *datemath.Parser
	interpreter   *voice.Interpreter
	calendar      CalendarClient
	calendarID    string
	eventDuration time.Duration
	sessions      *expirable.LRU[string, voice.Fields]
	now           func() time.Time
	newID         func() string
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	interpreter *voice.Interpreter,
	cfg Config,
	opts ...Option,
) task.UseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = defaultEventDuration
	}

	uc := &implUseCase{
		l:             l,
		repo:          repo,
		dateMath:      dateMath,
		interpreter:   interpreter,
		calendarID:    cfg.CalendarID,
		eventDuration: cfg.EventDuration,
		sessions:      expirable.NewLRU[string, voice.Fields](cfg.MaxSessions, nil, cfg.SessionTTL),
		now:           time.Now,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// today returns midnight of the current day in the configured timezone.
func (uc *implUseCase) today() time.Time {
	return uc.dateMath.StartOfDay(uc.now())
}
