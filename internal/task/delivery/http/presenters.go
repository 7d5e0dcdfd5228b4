package http

import (
	"strings"
	"time"

	"task-master/internal/model"
	"task-master/internal/task"
	"task-master/internal/voice"
	"task-master/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Filter string `form:"filter"`
	Query  string `form:"q"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Filter: model.Filter(strings.ToLower(strings.TrimSpace(r.Filter))),
		Query:  r.Query,
	}
}

// ---

type createReq struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Notes       string     `json:"notes"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Date        string     `json:"date"` // YYYY-MM-DD, used when due_date is absent
	Time        string     `json:"time"` // HH:MM, 12:00 when only date is set

	priority model.Priority
	date     time.Time
	time     voice.Time
}

func (r *createReq) validate(loc *time.Location) error {
	var err error
	if r.priority, err = parsePriority(r.Priority); err != nil {
		return err
	}
	if r.date, err = parseDate(r.Date, loc); err != nil {
		return err
	}
	if r.time, err = parseClock(r.Time); err != nil {
		return err
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	in := task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Notes:       r.Notes,
		Category:    r.Category,
		Tags:        r.Tags,
		Priority:    r.priority,
		Date:        r.date,
		Time:        r.time,
	}
	if r.DueDate != nil {
		in.DueDate = *r.DueDate
	}
	return in
}

// ---

type updateReq struct {
	ID          string    `json:"-"` // populated from URI param
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Notes       string    `json:"notes"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"due_date"`
	Completed   bool      `json:"completed"`

	priority model.Priority
}

func (r *updateReq) validate() error {
	if r.DueDate.IsZero() {
		return errMissingDueDate
	}
	var err error
	r.priority, err = parsePriority(r.Priority)
	return err
}

func (r updateReq) toTask() model.Task {
	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Completed:   r.Completed,
		Notes:       r.Notes,
		Category:    r.Category,
		Tags:        r.Tags,
		Priority:    r.priority,
	}
}

// ---

type reorderReq struct {
	IDs []string `json:"ids" binding:"required"`
}

type transcriptReq struct {
	Transcript string `json:"transcript" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Completed   bool      `json:"completed"`
	Notes       string    `json:"notes"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags"`
	Priority    string    `json:"priority"`
}

func newTaskResp(t model.Task) taskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		Notes:       t.Notes,
		Category:    t.Category,
		Tags:        tags,
		Priority:    string(t.Priority),
	}
}

func newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	return listResp{Tasks: newTaskListResp(tasks), Count: len(tasks)}
}

// mutationResp omits task when the write matched nothing (update of an
// unknown id).
type mutationResp struct {
	Task         *taskResp  `json:"task,omitempty"`
	Tasks        []taskResp `json:"tasks"`
	CalendarLink string     `json:"calendar_link,omitempty"`
}

func (h *handler) newMutationResp(out task.MutationOutput) mutationResp {
	resp := mutationResp{Tasks: newTaskListResp(out.Tasks), CalendarLink: out.CalendarLink}
	if out.Task.ID != "" {
		t := newTaskResp(out.Task)
		resp.Task = &t
	}
	return resp
}

type detailResp struct {
	Task taskResp `json:"task"`
}

type shareResp struct {
	Text string `json:"text"`
}

type dayResp struct {
	Date  string     `json:"date"`
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newDayResp(out task.DayOutput) dayResp {
	return dayResp{Date: out.Date.Format(response.DateFormat), Tasks: newTaskListResp(out.Tasks)}
}

type progressResp struct {
	Date      string  `json:"date"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

func (h *handler) newProgressResp(out task.ProgressOutput) progressResp {
	return progressResp{
		Date:      out.Date.Format(response.DateFormat),
		Completed: out.Completed,
		Total:     out.Total,
		Percent:   out.Percent,
	}
}

type dayCountResp struct {
	Date      string `json:"date"`
	Label     string `json:"label"`
	Completed int    `json:"completed"`
}

type weeklyResp struct {
	Start string         `json:"start"`
	Days  []dayCountResp `json:"days"`
}

func (h *handler) newWeeklyResp(out task.WeeklyOutput) weeklyResp {
	days := make([]dayCountResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = dayCountResp{Date: d.Date.Format(response.DateFormat), Label: d.Label, Completed: d.Completed}
	}
	return weeklyResp{Start: out.Start.Format(response.DateFormat), Days: days}
}

type calendarResp struct {
	Month string   `json:"month"`
	Days  []string `json:"days"`
}

func (h *handler) newCalendarResp(out task.CalendarOutput) calendarResp {
	days := make([]string, len(out.Days))
	for i, d := range out.Days {
		days[i] = d.Format(response.DateFormat)
	}
	return calendarResp{Month: out.Month.Format(monthFormat), Days: days}
}

type draftResp struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	Time        voice.Time `json:"time"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	Priority    string     `json:"priority"`
}

func (h *handler) newDraftResp(f voice.Fields) draftResp {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	return draftResp{
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date.In(h.loc).Format(response.DateFormat),
		Time:        f.Time,
		Category:    f.Category,
		Tags:        tags,
		Priority:    string(f.Priority),
	}
}

type transcriptResp struct {
	Draft     draftResp  `json:"draft"`
	Submitted bool       `json:"submitted"`
	Task      *taskResp  `json:"task,omitempty"`
	Tasks     []taskResp `json:"tasks,omitempty"`
}

func (h *handler) newTranscriptResp(out task.TranscriptOutput) transcriptResp {
	resp := transcriptResp{Draft: h.newDraftResp(out.Draft), Submitted: out.Submitted}
	if out.Task != nil {
		t := newTaskResp(*out.Task)
		resp.Task = &t
		resp.Tasks = newTaskListResp(out.Tasks)
	}
	return resp
}
