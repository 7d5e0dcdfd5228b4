package model_test

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"task-master/internal/model"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in     string
		want   model.Priority
		wantOK bool
	}{
		{"low", model.PriorityLow, true},
		{"MEDIUM", model.PriorityMedium, true},
		{" High ", model.PriorityHigh, true},
		{"urgent", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := model.ParsePriority(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePriority(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTaskJSONRoundTrip(t *testing.T) {
	due := time.Date(2024, 5, 1, 17, 30, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "a", Title: "buy milk", DueDate: due, Tags: []string{"home", "errand"}, Priority: model.PriorityHigh, Category: "shopping"},
		{ID: "b", Title: "call mom", Description: "sunday", DueDate: due.AddDate(0, 0, 1), Completed: true, Notes: "done early", Tags: []string{}, Priority: model.PriorityLow},
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got []model.Task
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, tasks) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, tasks)
	}
}

func TestTaskDecodeLegacyRecord(t *testing.T) {
	legacy := `{"id":"x","title":"old","description":"","dueDate":"2024-05-01T12:00:00.000Z","completed":false,"notes":""}`

	var task model.Task
	if err := json.Unmarshal([]byte(legacy), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if task.Priority != model.PriorityMedium {
		t.Errorf("Priority = %q, want medium", task.Priority)
	}
	if task.Tags == nil || len(task.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty slice", task.Tags)
	}
	if task.Category != "" {
		t.Errorf("Category = %q, want empty", task.Category)
	}
	if !task.DueDate.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("DueDate = %v", task.DueDate)
	}
}

func TestFilterMatch(t *testing.T) {
	open := model.Task{ID: "1"}
	done := model.Task{ID: "2", Completed: true}

	tests := []struct {
		filter   model.Filter
		open     bool
		complete bool
	}{
		{model.FilterAll, true, true},
		{model.FilterActive, true, false},
		{model.FilterCompleted, false, true},
		{model.Filter(""), true, true},
	}
	for _, tt := range tests {
		if got := tt.filter.Match(open); got != tt.open {
			t.Errorf("%q.Match(open) = %v", tt.filter, got)
		}
		if got := tt.filter.Match(done); got != tt.complete {
			t.Errorf("%q.Match(done) = %v", tt.filter, got)
		}
	}
}
