package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"task-master/internal/model"
	"task-master/internal/task"
	"task-master/internal/task/repository"
	"task-master/internal/task/repository/local"
	"task-master/internal/task/usecase"
	"task-master/internal/voice"
	"task-master/pkg/datemath"
	"task-master/pkg/gcalendar"
	"task-master/pkg/kvstore"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCalendar struct {
	fail     bool
	requests []gcalendar.CreateEventRequest
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.fail {
		return nil, errors.New("calendar unavailable")
	}
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.example/evt-1"}, nil
}

type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("disk gone")
}
func (brokenStore) Put(ctx context.Context, key string, value []byte) error {
	return errors.New("disk gone")
}
func (brokenStore) Delete(ctx context.Context, key string) error { return nil }
func (brokenStore) Close() error                                 { return nil }

var now = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

func day(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }

func at(d, h, m int) time.Time { return time.Date(2024, 5, d, h, m, 0, 0, time.UTC) }

func newUseCase(t *testing.T, store kvstore.Store, opts ...usecase.Option) task.UseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	clock := func() time.Time { return now }
	seq := 0
	base := []usecase.Option{
		usecase.WithClock(clock),
		usecase.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("t%d", seq)
		}),
	}
	return usecase.New(
		&mockLogger{},
		local.New(store, local.DefaultKey, &mockLogger{}),
		parser,
		voice.New(parser, voice.WithClock(clock)),
		usecase.Config{},
		append(base, opts...)...,
	)
}

func mustCreate(t *testing.T, uc task.UseCase, in task.CreateInput) model.Task {
	t.Helper()
	out, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create(%q): %v", in.Title, err)
	}
	return out.Task
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		input   task.CreateInput
		wantDue time.Time
		wantErr error
	}{
		{
			name:    "empty title",
			input:   task.CreateInput{Title: "   "},
			wantErr: task.ErrEmptyTitle,
		},
		{
			name:    "defaults to creation time",
			input:   task.CreateInput{Title: "buy milk"},
			wantDue: now,
		},
		{
			name:    "time without date is today",
			input:   task.CreateInput{Title: "lunch", Time: voice.Time{Hours: "13", Minutes: "00"}},
			wantDue: at(1, 13, 0),
		},
		{
			name:    "date without time is noon",
			input:   task.CreateInput{Title: "report", Date: day(4)},
			wantDue: at(4, 12, 0),
		},
		{
			name:    "date and time",
			input:   task.CreateInput{Title: "dentist", Date: day(3), Time: voice.Time{Hours: "09", Minutes: "15"}},
			wantDue: at(3, 9, 15),
		},
		{
			name:    "explicit due date wins",
			input:   task.CreateInput{Title: "call", DueDate: at(7, 18, 45), Date: day(3)},
			wantDue: at(7, 18, 45),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(t, kvstore.NewMemory())
			out, err := uc.Create(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.Task.DueDate.Equal(tt.wantDue) {
				t.Errorf("DueDate = %v, want %v", out.Task.DueDate, tt.wantDue)
			}
			if out.Task.ID != "t1" || out.Task.Completed {
				t.Errorf("unexpected task %+v", out.Task)
			}
			if out.Task.Priority != model.PriorityMedium {
				t.Errorf("Priority = %q, want medium", out.Task.Priority)
			}
			if out.Task.Tags == nil {
				t.Errorf("Tags should default to an empty list")
			}
			if len(out.Tasks) != 1 || out.Tasks[0].ID != "t1" {
				t.Errorf("collection = %v", ids(out.Tasks))
			}
		})
	}
}

func TestCreateAppendsInOrder(t *testing.T) {
	uc := newUseCase(t, kvstore.NewMemory())
	mustCreate(t, uc, task.CreateInput{Title: "a"})
	mustCreate(t, uc, task.CreateInput{Title: "b"})
	out, err := uc.Create(context.Background(), task.CreateInput{Title: "c"})
	if err != nil {
		t.Fatal(err)
	}
	if got := ids(out.Tasks); !reflect.DeepEqual(got, []string{"t1", "t2", "t3"}) {
		t.Errorf("ids = %v", got)
	}
}

func TestCreateMirrorsToCalendar(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newUseCase(t, kvstore.NewMemory(), usecase.WithCalendar(cal))
		out, err := uc.Create(context.Background(), task.CreateInput{Title: "standup", Description: "daily", Notes: "room 4", Date: day(2)})
		if err != nil {
			t.Fatal(err)
		}
		if out.CalendarLink != "https://calendar.example/evt-1" {
			t.Errorf("CalendarLink = %q", out.CalendarLink)
		}

		if len(cal.requests) != 1 {
			t.Fatalf("calendar calls = %d, want 1", len(cal.requests))
		}
		req := cal.requests[0]
		if req.Summary != "standup" || req.Description != "daily\n\nroom 4" {
			t.Errorf("unexpected request %+v", req)
		}
		if !req.StartTime.Equal(at(2, 12, 0)) || !req.EndTime.Equal(at(2, 13, 0)) {
			t.Errorf("event window %v..%v", req.StartTime, req.EndTime)
		}
	})

	t.Run("failure is not fatal", func(t *testing.T) {
		cal := &mockCalendar{fail: true}
		uc := newUseCase(t, kvstore.NewMemory(), usecase.WithCalendar(cal))
		out, err := uc.Create(context.Background(), task.CreateInput{Title: "standup"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 1 {
			t.Errorf("task not stored")
		}
		if out.CalendarLink != "" {
			t.Errorf("CalendarLink = %q, want empty after a failed mirror", out.CalendarLink)
		}
	})

}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, kvstore.NewMemory())
	mustCreate(t, uc, task.CreateInput{Title: "Buy milk", Description: "semi skimmed"})
	mustCreate(t, uc, task.CreateInput{Title: "Write report", Description: "Q2 numbers"})
	mustCreate(t, uc, task.CreateInput{Title: "Call mom", Description: "about the MILK run"})
	if _, err := uc.ToggleComplete(ctx, "t2"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   task.ListInput
		want    []string
		wantErr error
	}{
		{name: "default is all", input: task.ListInput{}, want: []string{"t1", "t2", "t3"}},
		{name: "active", input: task.ListInput{Filter: model.FilterActive}, want: []string{"t1", "t3"}},
		{name: "completed", input: task.ListInput{Filter: model.FilterCompleted}, want: []string{"t2"}},
		{name: "query matches title or description", input: task.ListInput{Query: "milk"}, want: []string{"t1", "t3"}},
		{name: "query and filter", input: task.ListInput{Filter: model.FilterCompleted, Query: "MILK"}, want: []string{}},
		{name: "unknown filter", input: task.ListInput{Filter: "someday"}, wantErr: task.ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.List(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if g := ids(got); !reflect.DeepEqual(g, tt.want) {
				t.Errorf("ids = %v, want %v", g, tt.want)
			}
		})
	}
}

func TestUpdateAndDeleteMissingAreNoOps(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, kvstore.NewMemory())
	original := mustCreate(t, uc, task.CreateInput{Title: "keep me"})

	out, err := uc.Update(ctx, model.Task{ID: "ghost", Title: "nope"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(out.Tasks) != 1 || !reflect.DeepEqual(out.Tasks[0], original) {
		t.Errorf("collection changed: %+v", out.Tasks)
	}
	if !reflect.DeepEqual(out.Task, model.Task{}) {
		t.Errorf("Task = %+v, want zero for an unknown id", out.Task)
	}

	tasks, err := uc.Delete(ctx, "ghost")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !reflect.DeepEqual(ids(tasks), []string{"t1"}) {
		t.Errorf("collection changed: %v", ids(tasks))
	}
}

func TestUpdateReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, kvstore.NewMemory())
	created := mustCreate(t, uc, task.CreateInput{Title: "draft", Category: "work", Tags: []string{"a"}})

	edited := model.Task{ID: created.ID, Title: "final", DueDate: at(9, 8, 0)}
	out, err := uc.Update(ctx, edited)
	if err != nil {
		t.Fatal(err)
	}

	got := out.Tasks[0]
	if got.Title != "final" || got.Category != "" || len(got.Tags) != 0 || got.Priority != model.PriorityMedium {
		t.Errorf("task not replaced wholesale: %+v", got)
	}

	if _, err := uc.Update(ctx, model.Task{ID: created.ID}); !errors.Is(err, task.ErrEmptyTitle) {
		t.Errorf("err = %v, want ErrEmptyTitle", err)
	}
	if _, err := uc.Update(ctx, model.Task{Title: "x"}); !errors.Is(err, task.ErrEmptyID) {
		t.Errorf("err = %v, want ErrEmptyID", err)
	}
}

func TestDelete(t *testing.T) {
	uc := newUseCase(t, kvstore.NewMemory())
	mustCreate(t, uc, task.CreateInput{Title: "a"})
	mustCreate(t, uc, task.CreateInput{Title: "b"})

	tasks, err := uc.Delete(context.Background(), "t1")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids(tasks), []string{"t2"}) {
		t.Errorf("ids = %v", ids(tasks))
	}
}

func TestToggleComplete(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, kvstore.NewMemory())
	mustCreate(t, uc, task.CreateInput{Title: "a"})

	out, err := uc.ToggleComplete(ctx, "t1")
	if err != nil || !out.Task.Completed || !out.Tasks[0].Completed {
		t.Fatalf("first toggle: %+v, %v", out, err)
	}
	out, err = uc.ToggleComplete(ctx, "t1")
	if err != nil || out.Task.Completed {
		t.Fatalf("second toggle: %+v, %v", out, err)
	}

	if _, err := uc.ToggleComplete(ctx, "ghost"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, kvstore.NewMemory())
	mustCreate(t, uc, task.CreateInput{Title: "a"})

	if got, err := uc.Detail(ctx, "t1"); err != nil || got.Title != "a" {
		t.Errorf("Detail = %+v, %v", got, err)
	}
	if _, err := uc.Detail(ctx, "ghost"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
	if _, err := uc.Detail(ctx, ""); !errors.Is(err, task.ErrEmptyID) {
		t.Errorf("err = %v, want ErrEmptyID", err)
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		want    []string
		wantErr error
	}{
		{name: "permutation", ids: []string{"t3", "t1", "t2"}, want: []string{"t3", "t1", "t2"}},
		{name: "identity", ids: []string{"t1", "t2", "t3"}, want: []string{"t1", "t2", "t3"}},
		{name: "missing id", ids: []string{"t1", "t2"}, wantErr: task.ErrInvalidOrder},
		{name: "unknown id", ids: []string{"t1", "t2", "t9"}, wantErr: task.ErrInvalidOrder},
		{name: "duplicate id", ids: []string{"t1", "t1", "t2"}, wantErr: task.ErrInvalidOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			uc := newUseCase(t, kvstore.NewMemory())
			for _, title := range []string{"a", "b", "c"} {
				mustCreate(t, uc, task.CreateInput{Title: title})
			}

			got, err := uc.Reorder(ctx, tt.ids)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				stored, _ := uc.List(ctx, task.ListInput{})
				if !reflect.DeepEqual(ids(stored), []string{"t1", "t2", "t3"}) {
					t.Errorf("rejected reorder changed the store: %v", ids(stored))
				}
				return
			}
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("ids = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func seedAgenda(t *testing.T, uc task.UseCase) {
	t.Helper()
	ctx := context.Background()
	mustCreate(t, uc, task.CreateInput{Title: "late", DueDate: at(1, 18, 0)})
	mustCreate(t, uc, task.CreateInput{Title: "early", DueDate: at(1, 8, 0)})
	mustCreate(t, uc, task.CreateInput{Title: "tomorrow", DueDate: at(2, 9, 0)})
	mustCreate(t, uc, task.CreateInput{Title: "monday", DueDate: at(6, 9, 0)})
	mustCreate(t, uc, task.CreateInput{Title: "june", DueDate: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)})
	for _, id := range []string{"t1", "t3"} {
		if _, err := uc.ToggleComplete(ctx, id); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDay(t *testing.T) {
	uc := newUseCase(t, kvstore.NewMemory())
	seedAgenda(t, uc)

	out, err := uc.Day(context.Background(), time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Date.Equal(day(1)) {
		t.Errorf("Date = %v, want today", out.Date)
	}
	if !reflect.DeepEqual(ids(out.Tasks), []string{"t2", "t1"}) {
		t.Errorf("ids = %v, want sorted by due time", ids(out.Tasks))
	}

	out, err = uc.Day(context.Background(), day(20))
	if err != nil {
		t.Fatal(err)
	}
	if out.Tasks == nil || len(out.Tasks) != 0 {
		t.Errorf("empty day = %#v", out.Tasks)
	}
}

func TestProgress(t *testing.T) {
	uc := newUseCase(t, kvstore.NewMemory())
	seedAgenda(t, uc)

	tests := []struct {
		name      string
		date      time.Time
		completed int
		total     int
		percent   float64
	}{
		{"half", day(1), 1, 2, 50},
		{"all", day(2), 1, 1, 100},
		{"none done", day(6), 0, 1, 0},
		{"no tasks", day(20), 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Progress(context.Background(), tt.date)
			if err != nil {
				t.Fatal(err)
			}
			if out.Completed != tt.completed || out.Total != tt.total || out.Percent != tt.percent {
				t.Errorf("got %d/%d %.0f%%, want %d/%d %.0f%%",
					out.Completed, out.Total, out.Percent, tt.completed, tt.total, tt.percent)
			}
		})
	}
}

func TestWeekly(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, kvstore.NewMemory())
	seedAgenda(t, uc)
	// completed but outside the week
	mustCreate(t, uc, task.CreateInput{Title: "next week", DueDate: at(8, 9, 0)})
	if _, err := uc.ToggleComplete(ctx, "t6"); err != nil {
		t.Fatal(err)
	}

	out, err := uc.Weekly(ctx, time.Time{})
	if err != nil {
		t.Fatal(err)
	}

	if !out.Start.Equal(time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Start = %v, want Sunday Apr 28", out.Start)
	}
	var labels []string
	var counts []int
	for _, d := range out.Days {
		labels = append(labels, d.Label)
		counts = append(counts, d.Completed)
	}
	if want := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v", labels)
	}
	if want := []int{0, 0, 0, 1, 1, 0, 0}; !reflect.DeepEqual(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
}

func TestCalendarMonth(t *testing.T) {
	uc := newUseCase(t, kvstore.NewMemory())
	seedAgenda(t, uc)

	out, err := uc.CalendarMonth(context.Background(), day(17))
	if err != nil {
		t.Fatal(err)
	}
	if !out.Month.Equal(day(1)) {
		t.Errorf("Month = %v", out.Month)
	}
	want := []time.Time{day(1), day(2), day(6)}
	if !reflect.DeepEqual(out.Days, want) {
		t.Errorf("Days = %v, want %v", out.Days, want)
	}
}

func TestShare(t *testing.T) {
	uc := newUseCase(t, kvstore.NewMemory())
	mustCreate(t, uc, task.CreateInput{Title: "Buy milk", Description: "2 litres", DueDate: at(2, 9, 30)})

	out, err := uc.Share(context.Background(), "t1")
	if err != nil {
		t.Fatal(err)
	}
	want := "Task: Buy milk\nDescription: 2 litres\nDue Date: 2024-05-02T09:30:00Z"
	if out.Text != want {
		t.Errorf("Text = %q, want %q", out.Text, want)
	}

	if _, err := uc.Share(context.Background(), "ghost"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestApplyTranscript(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, kvstore.NewMemory())

	steps := []string{
		"title water the plants",
		"date tomorrow",
		"time 7:45",
		"priority high",
		"tags home, garden",
	}
	for _, s := range steps {
		out, err := uc.ApplyTranscript(ctx, task.TranscriptInput{Session: "s1", Transcript: s})
		if err != nil {
			t.Fatalf("ApplyTranscript(%q): %v", s, err)
		}
		if out.Submitted {
			t.Fatalf("ApplyTranscript(%q) submitted early", s)
		}
	}

	draft, err := uc.Draft(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if draft.Title != "water the plants" || draft.Priority != model.PriorityHigh || !draft.Date.Equal(day(2)) {
		t.Errorf("draft = %+v", draft)
	}

	out, err := uc.ApplyTranscript(ctx, task.TranscriptInput{Session: "s1", Transcript: "add task"})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Submitted || out.Task == nil {
		t.Fatalf("not submitted: %+v", out)
	}
	if !out.Task.DueDate.Equal(at(2, 7, 45)) {
		t.Errorf("DueDate = %v", out.Task.DueDate)
	}
	if !reflect.DeepEqual(out.Task.Tags, []string{"home", "garden"}) {
		t.Errorf("Tags = %v", out.Task.Tags)
	}
	if len(out.Tasks) != 1 {
		t.Errorf("collection = %v", ids(out.Tasks))
	}
	if out.Draft.Title != "" || !out.Draft.Date.Equal(day(1)) {
		t.Errorf("draft not reset: %+v", out.Draft)
	}

	fresh, _ := uc.Draft(ctx, "s1")
	if fresh.Title != "" {
		t.Errorf("session kept the submitted draft: %+v", fresh)
	}
}

func TestApplyTranscriptSingleUtterance(t *testing.T) {
	uc := newUseCase(t, kvstore.NewMemory())
	out, err := uc.ApplyTranscript(context.Background(), task.TranscriptInput{
		Session:    "s1",
		Transcript: "priority low submit",
	})
	if !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("err = %v, want ErrEmptyTitle", err)
	}
	if out.Submitted {
		t.Errorf("submitted without a title")
	}

	draft, _ := uc.Draft(context.Background(), "s1")
	if draft.Priority != model.PriorityLow {
		t.Errorf("draft lost on failed submit: %+v", draft)
	}
}

func TestVoiceSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, kvstore.NewMemory())

	if _, err := uc.ApplyTranscript(ctx, task.TranscriptInput{Session: "a", Transcript: "title first"}); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.ApplyTranscript(ctx, task.TranscriptInput{Session: "b", Transcript: "title second"}); err != nil {
		t.Fatal(err)
	}

	a, _ := uc.Draft(ctx, "a")
	b, _ := uc.Draft(ctx, "b")
	if a.Title != "first" || b.Title != "second" {
		t.Errorf("a=%q b=%q", a.Title, b.Title)
	}

	if err := uc.DiscardDraft(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	a, _ = uc.Draft(ctx, "a")
	if a.Title != "" {
		t.Errorf("discarded draft still present: %+v", a)
	}

	if _, err := uc.Draft(ctx, " "); !errors.Is(err, task.ErrEmptySession) {
		t.Errorf("err = %v, want ErrEmptySession", err)
	}
	if _, err := uc.ApplyTranscript(ctx, task.TranscriptInput{Transcript: "title x"}); !errors.Is(err, task.ErrEmptySession) {
		t.Errorf("err = %v, want ErrEmptySession", err)
	}
}

func TestStoreFailuresSurface(t *testing.T) {
	uc := newUseCase(t, brokenStore{})
	ctx := context.Background()

	if _, err := uc.List(ctx, task.ListInput{}); !errors.Is(err, repository.ErrFailedToLoad) {
		t.Errorf("List err = %v", err)
	}
	if _, err := uc.Create(ctx, task.CreateInput{Title: "x"}); !errors.Is(err, repository.ErrFailedToLoad) {
		t.Errorf("Create err = %v", err)
	}
	if _, err := uc.Day(ctx, time.Time{}); !errors.Is(err, repository.ErrFailedToLoad) {
		t.Errorf("Day err = %v", err)
	}
}
