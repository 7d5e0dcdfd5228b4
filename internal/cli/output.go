package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"task-master/internal/model"
	"task-master/internal/task"
	"task-master/internal/voice"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"

	dateFormat     = "2006-01-02"
	monthFormat    = "2006-01"
	dueDateFormat  = "2006-01-02 15:04"
	clockFormat    = "15:04"
	emptyCellValue = "-"
)

func (a *app) validateOutput() error {
	switch a.output {
	case outputTable, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table, json or yaml)", a.output)
}

// taskView is the CLI rendering of a task for json and yaml output.
type taskView struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Due         string   `json:"due" yaml:"due"`
	Completed   bool     `json:"completed" yaml:"completed"`
	Notes       string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty"`
	Tags        []string `json:"tags" yaml:"tags"`
	Priority    string   `json:"priority" yaml:"priority"`

	CalendarLink string `json:"calendar_link,omitempty" yaml:"calendar_link,omitempty"`
}

type draftView struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Date        string   `json:"date" yaml:"date"`
	Time        string   `json:"time" yaml:"time"`
	Category    string   `json:"category" yaml:"category"`
	Tags        []string `json:"tags" yaml:"tags"`
	Priority    string   `json:"priority" yaml:"priority"`
}

type printer struct {
	w      io.Writer
	format string
	loc    *time.Location
}

func (p printer) taskView(t model.Task) taskView {
	return taskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Due:         t.DueDate.In(p.loc).Format(dueDateFormat),
		Completed:   t.Completed,
		Notes:       t.Notes,
		Category:    t.Category,
		Tags:        t.Tags,
		Priority:    string(t.Priority),
	}
}

func (p printer) draftView(f voice.Fields) draftView {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	return draftView{
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date.In(p.loc).Format(dateFormat),
		Time:        f.Time.Hours + ":" + f.Time.Minutes,
		Category:    f.Category,
		Tags:        tags,
		Priority:    string(f.Priority),
	}
}

// structured writes v as json or yaml. It reports false for table output.
func (p printer) structured(v any) (bool, error) {
	switch p.format {
	case outputJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case outputYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return true, err
		}
		_, err = p.w.Write(out)
		return true, err
	}
	return false, nil
}

func (p printer) tasks(tasks []model.Task) error {
	views := make([]taskView, len(tasks))
	for i, t := range tasks {
		views[i] = p.taskView(t)
	}
	if done, err := p.structured(views); done {
		return err
	}

	if len(tasks) == 0 {
		_, err := fmt.Fprintln(p.w, "No tasks.")
		return err
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tDUE\tPRIORITY\tTITLE\tCATEGORY\tTAGS")
	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.ID, checkbox(v.Completed), v.Due, v.Priority, v.Title, cell(v.Category), cell(strings.Join(v.Tags, ",")))
	}
	return tw.Flush()
}

func (p printer) task(t model.Task) error {
	return p.printTask(p.taskView(t))
}

// created prints a new task with the link of its calendar event, if any.
func (p printer) created(out task.MutationOutput) error {
	v := p.taskView(out.Task)
	v.CalendarLink = out.CalendarLink
	return p.printTask(v)
}

func (p printer) printTask(v taskView) error {
	if done, err := p.structured(v); done {
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", v.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", v.Title)
	fmt.Fprintf(tw, "Description:\t%s\n", cell(v.Description))
	fmt.Fprintf(tw, "Due:\t%s\n", v.Due)
	fmt.Fprintf(tw, "Completed:\t%t\n", v.Completed)
	fmt.Fprintf(tw, "Priority:\t%s\n", v.Priority)
	fmt.Fprintf(tw, "Category:\t%s\n", cell(v.Category))
	fmt.Fprintf(tw, "Tags:\t%s\n", cell(strings.Join(v.Tags, ", ")))
	fmt.Fprintf(tw, "Notes:\t%s\n", cell(v.Notes))
	if v.CalendarLink != "" {
		fmt.Fprintf(tw, "Calendar:\t%s\n", v.CalendarLink)
	}
	return tw.Flush()
}

func (p printer) draft(f voice.Fields) error {
	v := p.draftView(f)
	if done, err := p.structured(v); done {
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Title:\t%s\n", cell(v.Title))
	fmt.Fprintf(tw, "Description:\t%s\n", cell(v.Description))
	fmt.Fprintf(tw, "Date:\t%s %s\n", v.Date, v.Time)
	fmt.Fprintf(tw, "Priority:\t%s\n", v.Priority)
	fmt.Fprintf(tw, "Category:\t%s\n", cell(v.Category))
	fmt.Fprintf(tw, "Tags:\t%s\n", cell(strings.Join(v.Tags, ", ")))
	return tw.Flush()
}

// text prints plain text in table mode and {key: text} otherwise.
func (p printer) text(key, text string) error {
	if done, err := p.structured(map[string]string{key: text}); done {
		return err
	}
	_, err := fmt.Fprintln(p.w, text)
	return err
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func cell(s string) string {
	if s == "" {
		return emptyCellValue
	}
	return s
}
