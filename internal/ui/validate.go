package ui

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/event"
)

func (a *App) validateCmd() *cobra.Command {
	var (
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a start/end pair or the event file",
		Long: `With --start and --end, check that the start time is before the end
time. A missing value is not an error.

Without flags, validate every event in the event file and list the
ones with missing titles, malformed dates or times, or an end before
the start.`,
		Example: `  agenda validate --start=10:00 --end=09:00
  agenda validate --events=work.ics`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if start != "" || end != "" {
				if err := checkTimes(out, start, end); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, formatOK("Times are valid."))
				return nil
			}

			events, err := a.loadEvents(cmd.Context())
			if err != nil {
				return err
			}
			invalid := 0
			for _, e := range events {
				if err := e.Validate(); err != nil {
					invalid++
					_, _ = fmt.Fprintf(out, "  %s %s %q: %v\n", formatConflict("✗"), e.ID, e.Title, err)
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidEvents, invalid, len(events))
			}
			_, _ = fmt.Fprintln(out, formatOK(fmt.Sprintf("All %d events are valid.", len(events))))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")

	return cmd
}

// checkTimes reports malformed clocks and a start that is not before the
// end, writing one line per failing field.
func checkTimes(w io.Writer, start, end string) error {
	for _, f := range []struct{ name, value string }{{"start", start}, {"end", end}} {
		if f.value != "" && event.TimeToMinutes(f.value) < 0 {
			return fmt.Errorf("--%s %q: %w", f.name, f.value, event.ErrInvalidTimeFormat)
		}
	}

	te := event.ValidateTimes(start, end)
	if te.OK() {
		return nil
	}
	if te.Start != nil {
		_, _ = fmt.Fprintf(w, "  start: %s\n", formatConflict(te.Start.Error()))
	}
	if te.End != nil {
		_, _ = fmt.Fprintf(w, "  end:   %s\n", formatConflict(te.End.Error()))
	}
	return te.Err()
}
