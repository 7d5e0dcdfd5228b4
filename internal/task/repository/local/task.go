package local

import (
	"context"
	"fmt"
	"time"

	"task-master/internal/model"
	repo "task-master/internal/task/repository"
)

// ListTasks decodes the stored collection. A missing or undecodable entry
// lists as empty; only backend failures are returned as errors. Records
// stored without a due date get the current time, written back once so the
// date stays put.
func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	data, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}
	if !ok {
		return []model.Task{}, nil
	}

	tasks, err := decode(data)
	if err != nil {
		r.l.Warnf(ctx, "%s: malformed entry %q treated as empty: %v", r.dsn("ListTasks"), r.key, err)
		return []model.Task{}, nil
	}

	if n := fillMissingDueDates(tasks, r.now()); n > 0 {
		r.l.Warnf(ctx, "%s: %d record(s) without dueDate set to now", r.dsn("ListTasks"), n)
		if _, err := r.save(ctx, "ListTasks", tasks); err != nil {
			r.l.Warnf(ctx, "%s: due date repair not persisted: %v", r.dsn("ListTasks"), err)
		}
	}
	return tasks, nil
}

func fillMissingDueDates(tasks []model.Task, now time.Time) int {
	n := 0
	for i := range tasks {
		if tasks[i].DueDate.IsZero() {
			tasks[i].DueDate = now
			n++
		}
	}
	return n
}

// CreateTask appends t to the end of the collection.
func (r *implRepository) CreateTask(ctx context.Context, t model.Task) ([]model.Task, error) {
	tasks, err := r.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	tasks = append(tasks, t)
	return r.save(ctx, "CreateTask", tasks)
}

// UpdateTask replaces the first task whose ID matches t.ID.
func (r *implRepository) UpdateTask(ctx context.Context, t model.Task) ([]model.Task, error) {
	tasks, err := r.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(tasks, t.ID)
	if idx == -1 {
		r.l.Debugf(ctx, "%s: no task with id %q", r.dsn("UpdateTask"), t.ID)
		return tasks, nil
	}
	tasks[idx] = t
	return r.save(ctx, "UpdateTask", tasks)
}

// DeleteTask removes every task whose ID matches id.
func (r *implRepository) DeleteTask(ctx context.Context, id string) ([]model.Task, error) {
	tasks, err := r.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return r.save(ctx, "DeleteTask", kept)
}

// ReplaceTasks overwrites the stored collection with tasks.
func (r *implRepository) ReplaceTasks(ctx context.Context, tasks []model.Task) ([]model.Task, error) {
	return r.save(ctx, "ReplaceTasks", tasks)
}

func (r *implRepository) save(ctx context.Context, method string, tasks []model.Task) ([]model.Task, error) {
	data, err := encode(tasks)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn(method), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	if err := r.store.Put(ctx, r.key, data); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func indexOf(tasks []model.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
