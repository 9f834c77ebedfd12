package usecase

import (
	"context"

	"task-scheduling-advisor/internal/scheduler/board"
	"task-scheduling-advisor/internal/scheduler/policy"
	"task-scheduling-advisor/internal/scheduler/repository"
	"task-scheduling-advisor/pkg/gcalendar"
	pkgLog "task-scheduling-advisor/pkg/log"
)

// Calendar receives an event for every committed schedule. Optional.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	policy     policy.Policy
	board      *board.Board
	calendar   Calendar
	calendarID string
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithCalendar mirrors committed schedules into calendarID.
func WithCalendar(c Calendar, calendarID string) Option {
	return func(uc *implUseCase) {
		uc.calendar = c
		uc.calendarID = calendarID
	}
}

// WithBoard shares an existing task view instead of creating a fresh one.
func WithBoard(b *board.Board) Option {
	return func(uc *implUseCase) {
		uc.board = b
	}
}

// New creates a new scheduler UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, pol policy.Policy, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:      l,
		repo:   repo,
		policy: pol,
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.board == nil {
		uc.board = board.New()
	}
	return uc
}
