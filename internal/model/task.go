package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Priority ranks a task. The zero value decodes as PriorityMedium.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority accepts the three priority words case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow, true
	case PriorityMedium:
		return PriorityMedium, true
	case PriorityHigh:
		return PriorityHigh, true
	}
	return "", false
}

// Task is the persisted to-do record.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Completed   bool      `json:"completed"`
	Notes       string    `json:"notes"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags"`
	Priority    Priority  `json:"priority"`
}

// UnmarshalJSON defaults the fields that older records were stored without.
func (t *Task) UnmarshalJSON(data []byte) error {
	type raw Task
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*t = Task(r)
	t.Normalize()
	return nil
}

// Normalize fills defaulted fields: empty tag list and medium priority.
func (t *Task) Normalize() {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if p, ok := ParsePriority(string(t.Priority)); ok {
		t.Priority = p
	} else {
		t.Priority = PriorityMedium
	}
}

// Filter selects tasks by completion state.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Match reports whether t passes the filter. Unknown filters match everything.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}
