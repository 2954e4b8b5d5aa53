package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ukkm-backend/internal/app"
	"ukkm-backend/internal/calendar"
	"ukkm-backend/internal/query"
	"ukkm-backend/internal/timeutil"
)

// calendarCommand prints the inspection calendar of one month
func calendarCommand(opts *options) *cobra.Command {
	var (
		year     int
		month    int
		category string
		search   string
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the inspection calendar for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := timeutil.Now()
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("month must be 1-12, got %d", month)
			}

			svc := app.Seeded(nil, nil, opts.log)
			filter := query.InspectionFilter{Query: search, Category: category}
			grid := svc.Inspections.Calendar(cmd.Context(), year, time.Month(month), filter, now)
			printGrid(cmd.OutOrStdout(), grid)
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default: current)")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (default: current)")
	cmd.Flags().StringVar(&category, "category", query.All, "Inspection category filter")
	cmd.Flags().StringVarP(&search, "query", "q", "", "Name search")
	return cmd
}

// printGrid writes the weekday grid followed by the visit list
func printGrid(w io.Writer, grid calendar.Grid) {
	fmt.Fprintln(w, grid.Title)
	for _, h := range grid.Headers {
		fmt.Fprintf(w, "%-7s", h[:3])
	}
	fmt.Fprintln(w)

	for i, cell := range grid.Cells {
		switch {
		case cell.Padding:
			fmt.Fprint(w, "       ")
		default:
			mark := " "
			if len(cell.Events) > 0 {
				mark = "*"
			}
			if cell.IsToday {
				mark = "<"
			}
			fmt.Fprintf(w, "%3d%s   ", cell.Day, mark)
		}
		if i%7 == 6 {
			fmt.Fprintln(w)
		}
	}
	if len(grid.Cells)%7 != 0 {
		fmt.Fprintln(w)
	}

	for _, cell := range grid.Cells {
		for _, evt := range cell.Events {
			fmt.Fprintf(w, "%2d  L%d  %s\n", cell.Day, evt.Slot, strings.TrimSpace(evt.Name))
		}
	}
}
