package usecase

import (
	"context"
	"sort"
	"time"

	"task-master/internal/model"
	"task-master/internal/task"
)

// Day returns the tasks due on date's calendar day, earliest due time first.
// A zero date means today.
func (uc *implUseCase) Day(ctx context.Context, date time.Time) (task.DayOutput, error) {
	day := uc.dayOrToday(date)
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Day ListTasks: %v", err)
		return task.DayOutput{}, err
	}

	due := uc.dueOn(tasks, day)
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueDate.Before(due[j].DueDate)
	})
	return task.DayOutput{Date: day, Tasks: due}, nil
}

// Progress reports how many of date's tasks are completed.
func (uc *implUseCase) Progress(ctx context.Context, date time.Time) (task.ProgressOutput, error) {
	day := uc.dayOrToday(date)
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Progress ListTasks: %v", err)
		return task.ProgressOutput{}, err
	}

	out := task.ProgressOutput{Date: day}
	for _, t := range uc.dueOn(tasks, day) {
		out.Total++
		if t.Completed {
			out.Completed++
		}
	}
	if out.Total > 0 {
		out.Percent = float64(out.Completed) / float64(out.Total) * 100
	}
	return out, nil
}

// Weekly counts completed tasks per day of the Sunday-to-Saturday week
// containing ref.
func (uc *implUseCase) Weekly(ctx context.Context, ref time.Time) (task.WeeklyOutput, error) {
	start := uc.dateMath.StartOfWeek(uc.dayOrToday(ref))
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Weekly ListTasks: %v", err)
		return task.WeeklyOutput{}, err
	}

	days := make([]task.DayCount, 7)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = task.DayCount{Date: d, Label: d.Format("Mon")}
	}
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		for i := range days {
			if uc.dateMath.SameDay(days[i].Date, t.DueDate) {
				days[i].Completed++
				break
			}
		}
	}
	return task.WeeklyOutput{Start: start, Days: days}, nil
}

// CalendarMonth lists the distinct days of month's month with at least one
// task due, in ascending order.
func (uc *implUseCase) CalendarMonth(ctx context.Context, month time.Time) (task.CalendarOutput, error) {
	day := uc.dayOrToday(month)
	first := day.AddDate(0, 0, 1-day.Day())
	next := first.AddDate(0, 1, 0)

	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CalendarMonth ListTasks: %v", err)
		return task.CalendarOutput{}, err
	}

	seen := make(map[int]bool)
	for _, t := range tasks {
		d := uc.dateMath.StartOfDay(t.DueDate)
		if d.Before(first) || !d.Before(next) {
			continue
		}
		seen[d.Day()] = true
	}

	days := make([]time.Time, 0, len(seen))
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		if seen[d.Day()] {
			days = append(days, d)
		}
	}
	return task.CalendarOutput{Month: first, Days: days}, nil
}

func (uc *implUseCase) dayOrToday(date time.Time) time.Time {
	if date.IsZero() {
		return uc.today()
	}
	return uc.dateMath.StartOfDay(date)
}

func (uc *implUseCase) dueOn(tasks []model.Task, day time.Time) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if uc.dateMath.SameDay(t.DueDate, day) {
			out = append(out, t)
		}
	}
	return out
}
