// Package bootstrap builds the task domain from configuration for the API
// server and the CLI.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"task-master/config"
	"task-master/internal/task"
	"task-master/internal/task/repository/local"
	"task-master/internal/task/usecase"
	"task-master/internal/voice"
	"task-master/pkg/datemath"
	"task-master/pkg/gcalendar"
	"task-master/pkg/kvstore"
	"task-master/pkg/log"
)

// TaskDomain is the wired task use case plus the resources it owns.
type TaskDomain struct {
	UseCase  task.UseCase
	Location *time.Location
	Calendar *gcalendar.Client // nil unless configured

	store kvstore.Store
}

// NewTaskDomain opens the configured store and builds the task use case.
// Calendar mirroring is optional and its setup failures are only logged.
func NewTaskDomain(ctx context.Context, cfg *config.Config, l log.Logger) (*TaskDomain, error) {
	dateMath, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	store, err := kvstore.New(kvstore.Config{Driver: cfg.Storage.Driver, Path: cfg.Storage.Path})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Storage.Driver, err)
	}
	l.Infof(ctx, "Task store: driver=%s path=%s key=%s", cfg.Storage.Driver, cfg.Storage.Path, cfg.Storage.Key)

	repo := local.New(store, cfg.Storage.Key, l)
	interpreter := voice.New(dateMath)

	var opts []usecase.Option
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			l.Warn(ctx, "Run `taskmaster calendar auth` to generate an OAuth token")
			calendarClient = nil
		} else {
			l.Info(ctx, "Google Calendar initialized")
			opts = append(opts, usecase.WithCalendar(calendarClient))
		}
	}

	uc := usecase.New(l, repo, dateMath, interpreter, usecase.Config{
		SessionTTL:    cfg.Voice.SessionTTL,
		MaxSessions:   cfg.Voice.MaxSessions,
		CalendarID:    cfg.GoogleCalendar.CalendarID,
		EventDuration: cfg.GoogleCalendar.EventDuration,
	}, opts...)

	return &TaskDomain{
		UseCase:  uc,
		Location: dateMath.Location(),
		Calendar: calendarClient,
		store:    store,
	}, nil
}

// Close releases the store.
func (d *TaskDomain) Close() error {
	return d.store.Close()
}
