package voice_test

import (
	"reflect"
	"testing"
	"time"

	"task-master/internal/model"
	"task-master/internal/voice"
	"task-master/pkg/datemath"
)

var now = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

func newInterpreter(t *testing.T) *voice.Interpreter {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return voice.New(parser, voice.WithClock(func() time.Time { return now }))
}

func baseFields() voice.Fields {
	f := voice.DefaultFields(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	f.Title = "prior title"
	f.Description = "prior description"
	f.Category = "prior"
	f.Tags = []string{"old"}
	return f
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		mutate     func(f *voice.Fields)
		wantSubmit bool
	}{
		{
			name:       "title only",
			transcript: "title buy milk",
			mutate:     func(f *voice.Fields) { f.Title = "buy milk" },
		},
		{
			name:       "case insensitive",
			transcript: "Title Buy Milk",
			mutate:     func(f *voice.Fields) { f.Title = "buy milk" },
		},
		{
			name:       "description",
			transcript: "description two litres, semi skimmed",
			mutate:     func(f *voice.Fields) { f.Description = "two litres, semi skimmed" },
		},
		{
			name:       "time with minutes",
			transcript: "time 5:30",
			mutate:     func(f *voice.Fields) { f.Time = voice.Time{Hours: "05", Minutes: "30"} },
		},
		{
			name:       "time hour only",
			transcript: "time 9",
			mutate:     func(f *voice.Fields) { f.Time = voice.Time{Hours: "09", Minutes: "00"} },
		},
		{
			name:       "time single digit minutes padded",
			transcript: "time 10:5",
			mutate:     func(f *voice.Fields) { f.Time = voice.Time{Hours: "10", Minutes: "05"} },
		},
		{
			name:       "time pm",
			transcript: "time 5:30 p.m.",
			mutate:     func(f *voice.Fields) { f.Time = voice.Time{Hours: "17", Minutes: "30"} },
		},
		{
			name:       "time twelve am",
			transcript: "time 12 am",
			mutate:     func(f *voice.Fields) { f.Time = voice.Time{Hours: "00", Minutes: "00"} },
		},
		{
			name:       "time out of range ignored",
			transcript: "time 25:00",
		},
		{
			name:       "time without digits ignored",
			transcript: "time later",
		},
		{
			name:       "date tomorrow",
			transcript: "date tomorrow",
			mutate:     func(f *voice.Fields) { f.Date = time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC) },
		},
		{
			name:       "date absolute",
			transcript: "date june 3rd 2024",
			mutate:     func(f *voice.Fields) { f.Date = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC) },
		},
		{
			name:       "date unparseable left unchanged",
			transcript: "date not-a-real-date",
		},
		{
			name:       "update does not trigger date",
			transcript: "update tomorrow",
		},
		{
			name:       "category",
			transcript: "category groceries",
			mutate:     func(f *voice.Fields) { f.Category = "groceries" },
		},
		{
			name:       "tags split and trimmed",
			transcript: "tags home , errands,, weekly ",
			mutate:     func(f *voice.Fields) { f.Tags = []string{"home", "errands", "weekly"} },
		},
		{
			name:       "tags empty segment ignored",
			transcript: "tags , ,",
		},
		{
			name:       "priority high",
			transcript: "priority high",
			mutate:     func(f *voice.Fields) { f.Priority = model.PriorityHigh },
		},
		{
			name:       "priority fixed check order wins over spoken order",
			transcript: "priority low and high",
			mutate:     func(f *voice.Fields) { f.Priority = model.PriorityLow },
		},
		{
			name:       "priority high before medium spoken",
			transcript: "priority high not medium",
			mutate:     func(f *voice.Fields) { f.Priority = model.PriorityMedium },
		},
		{
			name:       "priority unknown word ignored",
			transcript: "priority urgent",
		},
		{
			name:       "priority matches whole words only",
			transcript: "priority below average",
		},
		{
			name:       "add task submits",
			transcript: "okay add task",
			wantSubmit: true,
		},
		{
			name:       "submit submits",
			transcript: "please SUBMIT",
			wantSubmit: true,
		},
		{
			name:       "greedy title swallows later keywords",
			transcript: "title buy milk description get bread",
			mutate: func(f *voice.Fields) {
				f.Title = "buy milk description get bread"
				f.Description = "get bread"
			},
		},
		{
			name:       "several independent fields",
			transcript: "time 7 priority high",
			mutate: func(f *voice.Fields) {
				f.Time = voice.Time{Hours: "07", Minutes: "00"}
				f.Priority = model.PriorityHigh
			},
		},
		{
			name:       "keyword with nothing after it ignored",
			transcript: "title",
		},
		{
			name:       "unrelated speech",
			transcript: "the weather is nice",
		},
	}

	in := newInterpreter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := baseFields()
			want := baseFields()
			if tt.mutate != nil {
				tt.mutate(&want)
			}

			got, submit := in.Interpret(tt.transcript, current)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Interpret(%q)\n got  %+v\n want %+v", tt.transcript, got, want)
			}
			if submit != tt.wantSubmit {
				t.Errorf("Interpret(%q) submit = %v, want %v", tt.transcript, submit, tt.wantSubmit)
			}
		})
	}
}

func TestInterpretDoesNotAliasTags(t *testing.T) {
	in := newInterpreter(t)
	current := baseFields()

	got, _ := in.Interpret("title x", current)
	got.Tags[0] = "changed"

	if current.Tags[0] != "old" {
		t.Errorf("Interpret aliased the caller's tags: %v", current.Tags)
	}
}

func TestInterpretWithoutDateParser(t *testing.T) {
	in := voice.New(nil)
	current := baseFields()

	got, _ := in.Interpret("date tomorrow", current)
	if !got.Date.Equal(current.Date) {
		t.Errorf("date changed without a parser: %v", got.Date)
	}
}

func TestFieldsDueDate(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)

	tests := []struct {
		name string
		time voice.Time
		want time.Time
	}{
		{"set", voice.Time{Hours: "05", Minutes: "30"}, time.Date(2024, 5, 1, 5, 30, 0, 0, loc)},
		{"default", voice.Time{Hours: voice.DefaultHours, Minutes: voice.DefaultMinutes}, time.Date(2024, 5, 1, 12, 0, 0, 0, loc)},
		{"garbage falls back", voice.Time{Hours: "xx", Minutes: "99"}, time.Date(2024, 5, 1, 12, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := voice.DefaultFields(day)
			f.Time = tt.time
			if got := f.DueDate(loc); !got.Equal(tt.want) {
				t.Errorf("DueDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultFields(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	f := voice.DefaultFields(day)

	if f.Priority != model.PriorityMedium {
		t.Errorf("Priority = %q", f.Priority)
	}
	if f.Time != (voice.Time{Hours: "12", Minutes: "00"}) {
		t.Errorf("Time = %+v", f.Time)
	}
	if f.Tags == nil || len(f.Tags) != 0 {
		t.Errorf("Tags = %#v", f.Tags)
	}
	if !f.Date.Equal(day) {
		t.Errorf("Date = %v", f.Date)
	}
}
