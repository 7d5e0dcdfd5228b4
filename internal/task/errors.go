package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyID       = errors.New("task id is empty")
	ErrEmptyTitle    = errors.New("task title is empty")
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidOrder  = errors.New("order is not a permutation of the current tasks")
	ErrInvalidFilter = errors.New("unknown filter")
	ErrEmptySession  = errors.New("voice session id is empty")
)
