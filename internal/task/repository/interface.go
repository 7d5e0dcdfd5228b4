package repository

import (
	"context"

	"task-master/internal/model"
)

// Repository is the Task Store: CRUD over the whole ordered task collection.
// Every mutation returns the collection as it stands after the write.
type Repository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	// CreateTask appends t. Duplicate IDs are not checked.
	CreateTask(ctx context.Context, t model.Task) ([]model.Task, error)
	// UpdateTask replaces the task with t.ID wholesale; missing IDs are a no-op.
	UpdateTask(ctx context.Context, t model.Task) ([]model.Task, error)
	// DeleteTask removes the task with id; missing IDs are a no-op.
	DeleteTask(ctx context.Context, id string) ([]model.Task, error)
	// ReplaceTasks overwrites the collection, e.g. after a reorder.
	ReplaceTasks(ctx context.Context, tasks []model.Task) ([]model.Task, error)
}
