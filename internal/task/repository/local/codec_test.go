package local

import (
	"reflect"
	"testing"
	"time"

	"task-master/internal/model"
)

func TestCodecRoundTrip(t *testing.T) {
	due := time.Date(2024, 5, 1, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name  string
		tasks []model.Task
	}{
		{name: "empty", tasks: []model.Task{}},
		{
			name: "mixed",
			tasks: []model.Task{
				{ID: "1", Title: "buy milk", DueDate: due, Tags: []string{}, Priority: model.PriorityMedium},
				{ID: "2", Title: "gym", Description: "legs", DueDate: due.Add(time.Hour), Completed: true, Notes: "n", Category: "health", Tags: []string{"a", "b"}, Priority: model.PriorityHigh},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := encode(tt.tasks)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := decode(data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, tt.tasks) {
				t.Errorf("decode(encode(x)) = %+v, want %+v", got, tt.tasks)
			}
		})
	}
}

func TestEncodeNil(t *testing.T) {
	data, err := encode(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("encode(nil) = %s, want []", data)
	}
}

func TestDecodeNull(t *testing.T) {
	got, err := decode([]byte("null"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("decode(null) = %#v", got)
	}
}
