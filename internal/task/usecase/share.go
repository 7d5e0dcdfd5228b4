package usecase

import (
	"context"
	"fmt"
	"time"

	"task-master/internal/task"
)

// Share renders the task with id as plain text for sharing.
func (uc *implUseCase) Share(ctx context.Context, id string) (task.ShareOutput, error) {
	t, err := uc.Detail(ctx, id)
	if err != nil {
		return task.ShareOutput{}, err
	}

	text := fmt.Sprintf("Task: %s\nDescription: %s\nDue Date: %s",
		t.Title, t.Description, t.DueDate.In(uc.dateMath.Location()).Format(time.RFC3339))
	return task.ShareOutput{Task: t, Text: text}, nil
}
