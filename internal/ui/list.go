package ui

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

func (a *App) listCmd() *cobra.Command {
	var (
		date     string
		view     string
		term     string
		asJSON   bool
		verbose  bool
		category bool
		from     string
		to       string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in a week or month",
		Long: `List the events of the week (Sunday to Saturday) or month containing
a date, optionally narrowed by a search term.

With --from (and optionally --to) an explicit inclusive range of dates
replaces the week or month window.

The search term matches title, description or location, ignoring case.
Events that overlap another loaded event are marked with "!".`,
		Example: `  agenda list
  agenda list --date=2024-11-01 --view=month
  agenda list --date=next-monday --search=meeting
  agenda list --from=2024-11-01 --to=2024-11-15
  agenda list --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := dateutil.ParseRelativeDate(date, a.now())
			if err != nil {
				return fmt.Errorf("parsing --date: %w", err)
			}
			mode := a.config.ViewMode()
			if view != "" {
				if mode, err = event.ParseViewMode(view); err != nil {
					return err
				}
			}

			events, err := a.loadEvents(cmd.Context())
			if err != nil {
				return err
			}
			title := WindowTitle(ref, mode)
			var filtered []event.Event
			if from != "" {
				dr, err := dateutil.NewDateRange(from, to)
				if err != nil {
					return fmt.Errorf("parsing --from/--to: %w", err)
				}
				filtered = filterRange(events, term, dr)
				title = RangeTitle(dr)
			} else {
				filtered = event.Filter(events, term, ref, mode)
			}
			a.logger.Debug("list", "ref", ref.Format(dateutil.DateLayout), "view", mode, "from", from, "to", to, "search", term, "matched", len(filtered))

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(filtered); err != nil {
					return fmt.Errorf("encoding events: %w", err)
				}
				return nil
			}

			_, _ = fmt.Fprintln(out, formatHeader(title))
			if len(filtered) == 0 {
				_, _ = fmt.Fprintln(out, emptyListMessage(term))
				return nil
			}
			_, _ = fmt.Fprintln(out)

			PrintEvents(out, filtered, PrintOpts{
				Overlapping:  overlappingIDs(events),
				Verbose:      verbose,
				ShowCategory: category,
			})

			_, _ = fmt.Fprintf(out, "\n%s\n", formatMuted(fmt.Sprintf("%d events, %s scheduled",
				len(filtered), FormatDuration(TotalMinutes(filtered)))))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Reference date (YYYY-MM-DD, today, tomorrow, monday, ...)")
	cmd.Flags().StringVar(&view, "view", "", "Window to show: week or month (defaults to config)")
	cmd.Flags().StringVarP(&term, "search", "s", "", "Only events whose title, description or location contains this text")
	cmd.Flags().StringVar(&from, "from", "", "First date of an explicit range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last date of an explicit range (YYYY-MM-DD, defaults to --from)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print events as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show descriptions")
	cmd.Flags().BoolVar(&category, "category", false, "Show categories")

	return cmd
}

func emptyListMessage(term string) string {
	if term == "" {
		return "No events in this window."
	}
	return fmt.Sprintf("No events match %q in this window.", term)
}

// filterRange keeps events matching term whose date falls inside dr.
func filterRange(events []event.Event, term string, dr *dateutil.DateRange) []event.Event {
	result := make([]event.Event, 0, len(events))
	for _, e := range events {
		if !event.SearchMatches(e, term) {
			continue
		}
		day, err := dateutil.ParseDate(e.Date)
		if e.Date == "" || err != nil || !dr.Contains(day) {
			continue
		}
		result = append(result, e)
	}
	return result
}
