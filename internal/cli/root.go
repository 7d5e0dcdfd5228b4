// Package cli is the taskmaster command line: the same task use case the API
// serves, driven from a terminal against the configured store.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"task-master/config"
	"task-master/internal/bootstrap"
	"task-master/internal/task"
	"task-master/pkg/datemath"
	"task-master/pkg/log"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	output     string
	verbose    bool

	cfg    *config.Config
	logger log.Logger
	domain *bootstrap.TaskDomain
	dates  *datemath.Parser
	now    func() time.Time
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:   "taskmaster",
		Short: "Task Master - tasks, agenda and voice commands",
		Long: `taskmaster manages the task list stored by the Task Master service.

It reads the same config.yaml as the API server, so both work on one store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.validateOutput()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default: search ./config, ., /etc/app/)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", outputTable, "Output format: table, json or yaml")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log to stdout")

	root.AddCommand(
		a.listCmd(),
		a.addCmd(),
		a.showCmd(),
		a.editCmd(),
		a.doneCmd(),
		a.rmCmd(),
		a.reorderCmd(),
		a.shareCmd(),
		a.dayCmd(),
		a.progressCmd(),
		a.weekCmd(),
		a.monthCmd(),
		a.voiceCmd(),
		a.calendarCmd(),
	)
	return root
}

// Execute runs the command line with os.Args.
func Execute(version string) error {
	root := NewRootCmd()
	root.Version = version
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.LoadFile(a.configPath)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg

	if a.verbose {
		a.logger = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	} else {
		a.logger = log.NewNop()
	}
	return cfg, nil
}

// useCase opens the task domain on first use.
func (a *app) useCase(ctx context.Context) (task.UseCase, error) {
	if a.domain != nil {
		return a.domain.UseCase, nil
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	domain, err := bootstrap.NewTaskDomain(ctx, cfg, a.logger)
	if err != nil {
		return nil, err
	}
	a.dates = dates
	a.domain = domain
	return domain.UseCase, nil
}

// run opens the task domain, calls fn and closes the store again.
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context, uc task.UseCase) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	uc, err := a.useCase(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.close(); cerr != nil {
			a.logger.Warnf(ctx, "Closing task store: %v", cerr)
		}
	}()
	return fn(ctx, uc)
}

// parseDay reads YYYY-MM-DD or a relative phrase such as "tomorrow" or
// "next friday". Empty input returns the zero time.
func (a *app) parseDay(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(dateFormat, raw, a.location()); err == nil {
		return t, nil
	}
	t, err := a.dates.Parse(raw, a.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return t, nil
}

func (a *app) close() error {
	if a.domain == nil {
		return nil
	}
	err := a.domain.Close()
	a.domain = nil
	return err
}

func (a *app) printer(w io.Writer) printer {
	return printer{w: w, format: a.output, loc: a.location()}
}

func (a *app) location() *time.Location {
	if a.dates != nil {
		return a.dates.Location()
	}
	return time.UTC
}
