package task

import (
	"context"
	"time"

	"task-master/internal/model"
	"task-master/internal/voice"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// List returns tasks passing the completion filter whose title or description
	// contains the query, in stored order.
	List(ctx context.Context, input ListInput) ([]model.Task, error)
	Detail(ctx context.Context, id string) (model.Task, error)

	// Create, Update, Delete, ToggleComplete and Reorder return the full
	// collection as it stands after the write.
	Create(ctx context.Context, input CreateInput) (MutationOutput, error)
	Update(ctx context.Context, t model.Task) (MutationOutput, error)
	Delete(ctx context.Context, id string) ([]model.Task, error)
	ToggleComplete(ctx context.Context, id string) (MutationOutput, error)
	Reorder(ctx context.Context, ids []string) ([]model.Task, error)

	// Agenda views.
	Day(ctx context.Context, date time.Time) (DayOutput, error)
	Progress(ctx context.Context, date time.Time) (ProgressOutput, error)
	Weekly(ctx context.Context, ref time.Time) (WeeklyOutput, error)
	CalendarMonth(ctx context.Context, month time.Time) (CalendarOutput, error)

	Share(ctx context.Context, id string) (ShareOutput, error)

	// ApplyTranscript interprets one transcript event against the session draft
	// and persists a task when the transcript asks for submission.
	ApplyTranscript(ctx context.Context, input TranscriptInput) (TranscriptOutput, error)
	Draft(ctx context.Context, session string) (voice.Fields, error)
	DiscardDraft(ctx context.Context, session string) error
}
