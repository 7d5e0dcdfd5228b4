package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"task-master/internal/task"
	"task-master/pkg/gcalendar"
)

var errCalendarDisabled = errors.New("google calendar is not configured: set google_calendar.credentials_path")

func (a *app) calendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Google Calendar mirroring",
	}
	cmd.AddCommand(a.calendarAuthCmd(), a.calendarEventsCmd())
	return cmd
}

func (a *app) calendarAuthCmd() *cobra.Command {
	var credentialsPath, tokenPath string
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Calendar access and save the OAuth token",
		Long: `auth runs the OAuth desktop-app flow once: open the printed URL, sign in,
then paste the authorization code. The token is written to
google_calendar.token_path. Service account credentials need no token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if credentialsPath == "" {
				credentialsPath = cfg.GoogleCalendar.CredentialsPath
			}
			if tokenPath == "" {
				tokenPath = cfg.GoogleCalendar.TokenPath
			}
			if credentialsPath == "" {
				return errCalendarDisabled
			}

			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credentialsPath, err)
			}
			oauthCfg, err := gcalendar.InstalledAppConfig(data)
			if err != nil {
				return fmt.Errorf("%w (expected OAuth desktop-app credentials in %q)", err, credentialsPath)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL in a browser and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code here and press Enter: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("read authorization code: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			tok, err := oauthCfg.Exchange(ctx, code)
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintf(out, "Token saved to %s. Restart the API server to enable calendar mirroring.\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&credentialsPath, "credentials", "", "OAuth credentials file (default google_calendar.credentials_path)")
	cmd.Flags().StringVar(&tokenPath, "token", "", "Where to write the token (default google_calendar.token_path)")
	return cmd
}

func (a *app) calendarEventsCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List upcoming calendar events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, _ task.UseCase) error {
				if a.domain.Calendar == nil {
					return errCalendarDisabled
				}
				if days <= 0 {
					return fmt.Errorf("--days must be positive, got %d", days)
				}

				start := a.dates.StartOfDay(a.now())
				events, err := a.domain.Calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
					CalendarID: a.cfg.GoogleCalendar.CalendarID,
					TimeMin:    start,
					TimeMax:    start.AddDate(0, 0, days),
				})
				if err != nil {
					return err
				}

				p := a.printer(cmd.OutOrStdout())
				if done, err := p.structured(events); done {
					return err
				}
				if len(events) == 0 {
					_, err := fmt.Fprintln(p.w, "No events.")
					return err
				}
				tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "START\tEND\tSUMMARY")
				for _, ev := range events {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", eventBound(ev.StartTime, ev.AllDay, p.loc), eventBound(ev.EndTime, ev.AllDay, p.loc), ev.Summary)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "Number of days from today to include")
	return cmd
}

func eventBound(t time.Time, allDay bool, loc *time.Location) string {
	if allDay {
		return t.Format(dateFormat)
	}
	return t.In(loc).Format(dueDateFormat)
}
