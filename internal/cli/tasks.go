package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-master/internal/model"
	"task-master/internal/task"
	"task-master/internal/voice"
)

func (a *app) listCmd() *cobra.Command {
	var filter, query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				tasks, err := uc.List(ctx, task.ListInput{Filter: model.Filter(filter), Query: query})
				if err != nil {
					return err
				}
				return a.printer(cmd.OutOrStdout()).tasks(tasks)
			})
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(model.FilterAll), "all, active or completed")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only tasks whose title or description contains this text")
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	var (
		date, clock, priority string
		in                    task.CreateInput
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Example: `  taskmaster add Buy milk --date tomorrow --time 18:30 --priority high
  taskmaster add "Write report" --tags work,weekly --category Work`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				in.Title = strings.Join(args, " ")

				day, err := a.parseDay(date)
				if err != nil {
					return err
				}
				in.Date = day

				if clock != "" {
					t, err := time.Parse(clockFormat, clock)
					if err != nil {
						return fmt.Errorf("invalid time %q, want HH:MM", clock)
					}
					in.Time = voice.Time{Hours: fmt.Sprintf("%02d", t.Hour()), Minutes: fmt.Sprintf("%02d", t.Minute())}
				}

				if priority != "" {
					p, ok := model.ParsePriority(priority)
					if !ok {
						return fmt.Errorf("invalid priority %q, want low, medium or high", priority)
					}
					in.Priority = p
				}

				out, err := uc.Create(ctx, in)
				if err != nil {
					return err
				}
				return a.printer(cmd.OutOrStdout()).created(out)
			})
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Due day: YYYY-MM-DD or a phrase like tomorrow (default today; due now when neither --date nor --time is set)")
	cmd.Flags().StringVarP(&clock, "time", "t", "", "Due time HH:MM (default 12:00 when --date is set)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "low, medium or high (default medium)")
	cmd.Flags().StringVar(&in.Description, "description", "", "Description")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&in.Category, "category", "", "Category")
	cmd.Flags().StringSliceVar(&in.Tags, "tags", nil, "Comma separated tags")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				t, err := uc.Detail(ctx, args[0])
				if err != nil {
					return err
				}
				return a.printer(cmd.OutOrStdout()).task(t)
			})
		},
	}
}

func (a *app) editCmd() *cobra.Command {
	var (
		title, description, notes, category, priority, due string
		tags                                               []string
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Long:  "Only the flags given are changed; everything else keeps its stored value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				t, err := uc.Detail(ctx, args[0])
				if err != nil {
					return err
				}

				flags := cmd.Flags()
				if flags.Changed("title") {
					t.Title = title
				}
				if flags.Changed("description") {
					t.Description = description
				}
				if flags.Changed("notes") {
					t.Notes = notes
				}
				if flags.Changed("category") {
					t.Category = category
				}
				if flags.Changed("tags") {
					t.Tags = tags
				}
				if flags.Changed("priority") {
					p, ok := model.ParsePriority(priority)
					if !ok {
						return fmt.Errorf("invalid priority %q, want low, medium or high", priority)
					}
					t.Priority = p
				}
				if flags.Changed("due") {
					d, err := time.ParseInLocation(dueDateFormat, due, a.location())
					if err != nil {
						return fmt.Errorf("invalid due %q, want \"YYYY-MM-DD HH:MM\"", due)
					}
					t.DueDate = d
				}

				out, err := uc.Update(ctx, t)
				if err != nil {
					return err
				}
				if out.Task.ID == "" {
					return task.ErrTaskNotFound
				}
				return a.printer(cmd.OutOrStdout()).task(out.Task)
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma separated tags")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "low, medium or high")
	cmd.Flags().StringVar(&due, "due", "", `Due date and time "YYYY-MM-DD HH:MM"`)
	return cmd
}

func (a *app) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task between completed and active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				out, err := uc.ToggleComplete(ctx, args[0])
				if err != nil {
					return err
				}
				return a.printer(cmd.OutOrStdout()).task(out.Task)
			})
		},
	}
}

func (a *app) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				tasks, err := uc.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				return a.printer(cmd.OutOrStdout()).tasks(tasks)
			})
		},
	}
}

func (a *app) reorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <id>...",
		Short: "Store tasks in the given order",
		Long:  "Every task id must be given exactly once.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				tasks, err := uc.Reorder(ctx, args)
				if err != nil {
					return err
				}
				return a.printer(cmd.OutOrStdout()).tasks(tasks)
			})
		},
	}
}

func (a *app) shareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Print a task as shareable text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				out, err := uc.Share(ctx, args[0])
				if err != nil {
					return err
				}
				return a.printer(cmd.OutOrStdout()).text("text", out.Text)
			})
		},
	}
}
