package usecase

import (
	"context"
	"strings"

	"task-master/internal/model"
	"task-master/internal/task"
	"task-master/internal/voice"
)

// List returns the tasks passing input.Filter whose title or description
// contains input.Query, case-insensitively.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) ([]model.Task, error) {
	filter := input.Filter
	switch filter {
	case "":
		filter = model.FilterAll
	case model.FilterAll, model.FilterActive, model.FilterCompleted:
	default:
		return nil, task.ErrInvalidFilter
	}

	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !filter.Match(t) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Detail returns the task with id.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	if id == "" {
		return model.Task{}, task.ErrEmptyID
	}
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListTasks: %v", err)
		return model.Task{}, err
	}
	t, ok := find(tasks, id)
	if !ok {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Create builds a task from input, appends it and mirrors it to the calendar
// when one is configured.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.MutationOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.MutationOutput{}, task.ErrEmptyTitle
	}

	due := input.DueDate
	switch {
	case !due.IsZero():
	case input.Date.IsZero() && input.Time == (voice.Time{}):
		due = uc.now()
	default:
		day := input.Date
		if day.IsZero() {
			day = uc.today()
		}
		due = voice.Fields{Date: day, Time: input.Time}.DueDate(uc.dateMath.Location())
	}

	t := model.Task{
		ID:          uc.newID(),
		Title:       title,
		Description: input.Description,
		DueDate:     due,
		Notes:       input.Notes,
		Category:    input.Category,
		Tags:        input.Tags,
		Priority:    input.Priority,
	}
	t.Normalize()

	tasks, err := uc.repo.CreateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.MutationOutput{}, err
	}
	uc.l.Infof(ctx, "uc.Create: created task %q id=%s", t.Title, t.ID)

	link := uc.tryCreateCalendarEvent(ctx, t)

	return task.MutationOutput{Task: t, Tasks: tasks, CalendarLink: link}, nil
}

// Update replaces the stored task with the same id. Unknown ids leave the
// collection untouched and return a zero Task.
func (uc *implUseCase) Update(ctx context.Context, t model.Task) (task.MutationOutput, error) {
	if t.ID == "" {
		return task.MutationOutput{}, task.ErrEmptyID
	}
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return task.MutationOutput{}, task.ErrEmptyTitle
	}
	t.Normalize()

	tasks, err := uc.repo.UpdateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.MutationOutput{}, err
	}
	if _, ok := find(tasks, t.ID); !ok {
		uc.l.Debugf(ctx, "uc.Update: no task with id=%s", t.ID)
		return task.MutationOutput{Tasks: tasks}, nil
	}
	return task.MutationOutput{Task: t, Tasks: tasks}, nil
}

// Delete removes the task with id. Unknown ids leave the collection untouched.
func (uc *implUseCase) Delete(ctx context.Context, id string) ([]model.Task, error) {
	if id == "" {
		return nil, task.ErrEmptyID
	}
	tasks, err := uc.repo.DeleteTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return nil, err
	}
	return tasks, nil
}

// ToggleComplete flips the completion flag of the task with id.
func (uc *implUseCase) ToggleComplete(ctx context.Context, id string) (task.MutationOutput, error) {
	t, err := uc.Detail(ctx, id)
	if err != nil {
		return task.MutationOutput{}, err
	}
	t.Completed = !t.Completed

	tasks, err := uc.repo.UpdateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleComplete UpdateTask: %v", err)
		return task.MutationOutput{}, err
	}
	return task.MutationOutput{Task: t, Tasks: tasks}, nil
}

// Reorder stores the tasks in the order given by ids, which must name every
// current task exactly once.
func (uc *implUseCase) Reorder(ctx context.Context, ids []string) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reorder ListTasks: %v", err)
		return nil, err
	}
	if len(ids) != len(tasks) {
		return nil, task.ErrInvalidOrder
	}

	// Queues keep duplicate ids, which the store does not forbid, distinct.
	byID := make(map[string][]model.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = append(byID[t.ID], t)
	}

	reordered := make([]model.Task, 0, len(tasks))
	for _, id := range ids {
		queue := byID[id]
		if len(queue) == 0 {
			return nil, task.ErrInvalidOrder
		}
		reordered = append(reordered, queue[0])
		byID[id] = queue[1:]
	}

	out, err := uc.repo.ReplaceTasks(ctx, reordered)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reorder ReplaceTasks: %v", err)
		return nil, err
	}
	return out, nil
}

func find(tasks []model.Task, id string) (model.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}
