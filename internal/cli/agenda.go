package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"task-master/internal/task"
)

type progressView struct {
	Date      string  `json:"date" yaml:"date"`
	Completed int     `json:"completed" yaml:"completed"`
	Total     int     `json:"total" yaml:"total"`
	Percent   float64 `json:"percent" yaml:"percent"`
}

type dayCountView struct {
	Date      string `json:"date" yaml:"date"`
	Label     string `json:"label" yaml:"label"`
	Completed int    `json:"completed" yaml:"completed"`
}

type monthView struct {
	Month string   `json:"month" yaml:"month"`
	Days  []string `json:"days" yaml:"days"`
}

func (a *app) dayCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Tasks due on one day, earliest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				day, err := a.parseDay(date)
				if err != nil {
					return err
				}
				out, err := uc.Day(ctx, day)
				if err != nil {
					return err
				}
				p := a.printer(cmd.OutOrStdout())
				if p.format == outputTable {
					fmt.Fprintf(p.w, "%s\n\n", out.Date.In(p.loc).Format("Monday, January 2, 2006"))
				}
				return p.tasks(out.Tasks)
			})
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "YYYY-MM-DD or a phrase like tomorrow (default today)")
	return cmd
}

func (a *app) progressCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Completed share of one day's tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				day, err := a.parseDay(date)
				if err != nil {
					return err
				}
				out, err := uc.Progress(ctx, day)
				if err != nil {
					return err
				}
				p := a.printer(cmd.OutOrStdout())
				v := progressView{
					Date:      out.Date.In(p.loc).Format(dateFormat),
					Completed: out.Completed,
					Total:     out.Total,
					Percent:   out.Percent,
				}
				if done, err := p.structured(v); done {
					return err
				}
				_, err = fmt.Fprintf(p.w, "%s: %d of %d tasks completed (%.0f%%)\n", v.Date, v.Completed, v.Total, v.Percent)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "YYYY-MM-DD or a phrase like yesterday (default today)")
	return cmd
}

func (a *app) weekCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Completed tasks per day of the week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				day, err := a.parseDay(date)
				if err != nil {
					return err
				}
				out, err := uc.Weekly(ctx, day)
				if err != nil {
					return err
				}
				p := a.printer(cmd.OutOrStdout())
				views := make([]dayCountView, len(out.Days))
				for i, d := range out.Days {
					views[i] = dayCountView{Date: d.Date.In(p.loc).Format(dateFormat), Label: d.Label, Completed: d.Completed}
				}
				if done, err := p.structured(views); done {
					return err
				}
				tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "DAY\tDATE\tCOMPLETED")
				for _, v := range views {
					fmt.Fprintf(tw, "%s\t%s\t%d %s\n", v.Label, v.Date, v.Completed, strings.Repeat("#", v.Completed))
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Any day of the week to show (default today)")
	return cmd
}

func (a *app) monthCmd() *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "month",
		Short: "Days of a month that have tasks due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				var m time.Time
				if month != "" {
					var err error
					m, err = time.ParseInLocation(monthFormat, month, a.location())
					if err != nil {
						return fmt.Errorf("invalid month %q, want YYYY-MM", month)
					}
				}
				out, err := uc.CalendarMonth(ctx, m)
				if err != nil {
					return err
				}
				p := a.printer(cmd.OutOrStdout())
				v := monthView{Month: out.Month.In(p.loc).Format(monthFormat), Days: make([]string, len(out.Days))}
				for i, d := range out.Days {
					v.Days[i] = d.In(p.loc).Format(dateFormat)
				}
				if done, err := p.structured(v); done {
					return err
				}
				if len(v.Days) == 0 {
					_, err = fmt.Fprintf(p.w, "%s: no tasks\n", v.Month)
					return err
				}
				_, err = fmt.Fprintf(p.w, "%s: %s\n", v.Month, strings.Join(v.Days, " "))
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", "", "YYYY-MM (default this month)")
	return cmd
}
