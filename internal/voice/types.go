package voice

import (
	"strconv"
	"time"

	"task-master/internal/model"
)

// Default draft time, matching the task entry form.
const (
	DefaultHours   = "12"
	DefaultMinutes = "00"
)

// Time is a wall-clock time of day as two-digit strings.
type Time struct {
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
}

// Fields is an in-progress task draft that transcripts are applied to.
type Fields struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	Time        Time           `json:"time"`
	Category    string         `json:"category"`
	Tags        []string       `json:"tags"`
	Priority    model.Priority `json:"priority"`
}

// DefaultFields returns a fresh draft due on day at 12:00 with medium priority.
func DefaultFields(day time.Time) Fields {
	return Fields{
		Date:     day,
		Time:     Time{Hours: DefaultHours, Minutes: DefaultMinutes},
		Tags:     []string{},
		Priority: model.PriorityMedium,
	}
}

// DueDate combines the draft's date and time in loc. Unreadable time parts
// fall back to the defaults.
func (f Fields) DueDate(loc *time.Location) time.Time {
	hours, err := strconv.Atoi(f.Time.Hours)
	if err != nil || hours < 0 || hours > 23 {
		hours, _ = strconv.Atoi(DefaultHours)
	}
	minutes, err := strconv.Atoi(f.Time.Minutes)
	if err != nil || minutes < 0 || minutes > 59 {
		minutes = 0
	}
	d := f.Date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), hours, minutes, 0, 0, loc)
}

// clone returns f with its own copy of Tags.
func (f Fields) clone() Fields {
	if f.Tags != nil {
		f.Tags = append([]string(nil), f.Tags...)
	}
	return f
}
