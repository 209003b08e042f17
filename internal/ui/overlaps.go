package ui

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

func (a *App) overlapsCmd() *cobra.Command {
	var (
		date     string
		start    string
		end      string
		duration int
		id       string
		view     string
	)

	cmd := &cobra.Command{
		Use:   "overlaps",
		Short: "Find events that overlap a time slot",
		Long: `Check a proposed time slot against the loaded events.

With --start and --end (or --duration) the slot on --date is checked and
every overlapping event is listed. Times are validated first: the start
must be before the end. Back-to-back events do not overlap.

Without a slot, every pair of overlapping events in the week or month
containing --date is listed.

--id excludes the event with that id, so an existing event can be
checked against the rest.`,
		Example: `  agenda overlaps --date=2024-11-01 --start=13:00 --end=14:00
  agenda overlaps --date=tomorrow --start=09:30 --duration=45
  agenda overlaps --view=month`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := dateutil.ParseRelativeDate(date, a.now())
			if err != nil {
				return fmt.Errorf("parsing --date: %w", err)
			}

			events, err := a.loadEvents(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if start == "" && end == "" && duration == 0 {
				mode := a.config.ViewMode()
				if view != "" {
					if mode, err = event.ParseViewMode(view); err != nil {
						return err
					}
				}
				printConflictPairs(out, event.Filter(events, "", ref, mode), WindowTitle(ref, mode))
				return nil
			}

			if end == "" && duration > 0 {
				end, err = slotEnd(start, duration)
				if err != nil {
					return err
				}
			}
			if start == "" || end == "" {
				return ErrIncompleteSlot
			}
			if err := checkTimes(out, start, end); err != nil {
				return err
			}

			candidate := event.Event{
				ID:        id,
				Date:      ref.Format(dateutil.DateLayout),
				StartTime: start,
				EndTime:   end,
			}
			conflicts := event.FindOverlapping(candidate, events)
			a.logger.Debug("overlap check", "date", candidate.Date, "start", start, "end", end, "conflicts", len(conflicts))

			_, _ = fmt.Fprintln(out, formatHeader(fmt.Sprintf("Slot %s %s-%s", candidate.Date, start, end)))
			if len(conflicts) == 0 {
				_, _ = fmt.Fprintln(out, formatOK("No conflicts."))
				return nil
			}
			_, _ = fmt.Fprintln(out, formatConflict(fmt.Sprintf("%d conflicting events:", len(conflicts))))
			for _, e := range conflicts {
				PrintEventRow(out, e, PrintOpts{})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date of the slot (YYYY-MM-DD, today, tomorrow, monday, ...)")
	cmd.Flags().StringVar(&start, "start", "", "Slot start (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Slot end (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Slot length in minutes, instead of --end")
	cmd.Flags().StringVar(&id, "id", "", "Ignore the event with this id")
	cmd.Flags().StringVar(&view, "view", "", "Window for listing all conflicts: week or month")

	return cmd
}

// slotEnd computes the end clock of a slot starting at start.
func slotEnd(start string, minutes int) (string, error) {
	m := event.TimeToMinutes(start)
	if m < 0 {
		return "", fmt.Errorf("--start %q: %w", start, event.ErrInvalidTimeFormat)
	}
	if m+minutes >= 24*60 {
		return "", fmt.Errorf("slot of %d minutes from %s runs past midnight", minutes, start)
	}
	return event.MinutesToTime(m + minutes), nil
}

// printConflictPairs lists every pair of overlapping events once.
func printConflictPairs(w io.Writer, events []event.Event, title string) {
	_, _ = fmt.Fprintln(w, formatHeader(title))
	pairs := 0
	for i := range events {
		for j := i + 1; j < len(events); j++ {
			a, b := events[i], events[j]
			if !event.IsOverlapping(a, b) {
				continue
			}
			pairs++
			_, _ = fmt.Fprintf(w, "  %s %s %s-%s %s  %s  %s-%s %s\n",
				formatConflict("!"),
				a.Date, a.StartTime, a.EndTime, a.Title,
				formatMuted("overlaps"),
				b.StartTime, b.EndTime, b.Title)
		}
	}
	if pairs == 0 {
		_, _ = fmt.Fprintln(w, formatOK("No overlapping events."))
	}
}
