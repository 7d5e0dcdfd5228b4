package task

import (
	"time"

	"task-master/internal/model"
	"task-master/internal/voice"
)

// ListInput is the input for listing tasks.
type ListInput struct {
	Filter model.Filter
	Query  string
}

// CreateInput is the input for creating a task. DueDate wins when set. With
// neither Date nor Time the task is due at creation time; otherwise it is due
// on Date (today when zero) at Time (12:00 when empty).
type CreateInput struct {
	Title       string
	Description string
	Notes       string
	Category    string
	Tags        []string
	Priority    model.Priority
	DueDate     time.Time
	Date        time.Time
	Time        voice.Time
}

// MutationOutput is the affected task plus the full collection after the write.
type MutationOutput struct {
	Task  model.Task // zero when the write matched no stored task
	Tasks []model.Task
	// CalendarLink is the mirrored event's URL after Create, when mirroring
	// is configured and succeeded.
	CalendarLink string
}

// DayOutput lists the tasks due on one calendar day, earliest first.
type DayOutput struct {
	Date  time.Time
	Tasks []model.Task
}

// ProgressOutput is the completion ratio of one day. Percent is 0 when the
// day has no tasks.
type ProgressOutput struct {
	Date      time.Time
	Completed int
	Total     int
	Percent   float64
}

// DayCount is one bar of the weekly completion chart.
type DayCount struct {
	Date      time.Time
	Label     string // "Sun" .. "Sat"
	Completed int
}

// WeeklyOutput holds completed-task counts for Sunday through Saturday.
type WeeklyOutput struct {
	Start time.Time
	Days  []DayCount
}

// CalendarOutput lists the days of a month with at least one task due.
type CalendarOutput struct {
	Month time.Time
	Days  []time.Time
}

// ShareOutput is the shareable plain-text rendering of a task.
type ShareOutput struct {
	Task model.Task
	Text string
}

// TranscriptInput is one transcript event for a voice session.
type TranscriptInput struct {
	Session    string
	Transcript string
}

// TranscriptOutput is the draft after a transcript event. When the event
// submitted the draft, Task is the created task, Tasks the collection and
// Draft a fresh default draft.
type TranscriptOutput struct {
	Draft     voice.Fields
	Submitted bool
	Task      *model.Task
	Tasks     []model.Task
}
