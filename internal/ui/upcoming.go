package ui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/notify"
)

func (a *App) upcomingCmd() *cobra.Command {
	var (
		now      string
		notified []string
	)

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show reminders that are due now",
		Long: `Print a reminder for every event whose notification window is open:
the event starts within its notification time and has not started yet.

Events whose ids are passed with --notified are skipped.`,
		Example: `  agenda upcoming
  agenda upcoming --now="2024-11-01 12:25"
  agenda upcoming --notified=erfg,yhb`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			at, err := parseNow(now, a.now)
			if err != nil {
				return err
			}
			events, err := a.loadEvents(cmd.Context())
			if err != nil {
				return err
			}

			due := notify.Upcoming(events, at, notified)
			out := cmd.OutOrStdout()
			if len(due) == 0 {
				_, _ = fmt.Fprintln(out, formatMuted("No upcoming reminders."))
				return nil
			}
			for _, e := range due {
				_, _ = fmt.Fprintf(out, "%s  %s\n", formatTime(e.StartTime), formatReminder(notify.Message(e)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&now, "now", "", `Evaluate at this time (RFC3339 or "YYYY-MM-DD HH:MM")`)
	cmd.Flags().StringSliceVar(&notified, "notified", nil, "Event ids already notified")

	return cmd
}

func (a *App) watchCmd() *cobra.Command {
	var schedule string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print reminders as events become due",
		Long: `Re-read the event file on a cron schedule and print a reminder the
first time each event's notification window opens. Runs until
interrupted.

The schedule defaults to notify.schedule from the config and accepts
standard cron expressions and descriptors such as "@every 30s".`,
		Example: `  agenda watch
  agenda watch --schedule="*/1 * * * *"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if schedule == "" {
				schedule = a.config.Notify.Schedule
			}
			src, err := a.openSource()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sink := notify.WriterSink{W: cmd.OutOrStdout(), Now: a.now}
			n := notify.NewNotifier(src, reminderSink{sink}, notify.Options{
				Logger: a.logger.With("component", "notifier"),
				Now:    a.now,
			})
			return n.Run(ctx, schedule)
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "", "Cron schedule for checks (defaults to config)")

	return cmd
}

// reminderSink colors reminder lines before handing them to the writer.
type reminderSink struct {
	next notify.WriterSink
}

func (s reminderSink) Notify(ctx context.Context, e event.Event, message string) error {
	return s.next.Notify(ctx, e, formatReminder(message))
}
