package cli

import (
	"time"

	"github.com/spf13/cobra"

	"crownpick/internal/dateinput"
	"crownpick/internal/locale"
	"crownpick/internal/logging"
	"crownpick/internal/wheel"
)

type rangeOut struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func toRange(r wheel.Range) *rangeOut {
	if r.Empty() {
		return nil
	}
	return &rangeOut{Min: r.Min(), Max: r.Max()}
}

func newRangesCmd(app *App) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "Print the year, month and day ranges the date wheels offer",
		Long: `Print the selectable ranges under the configured bounds. The month range
is for --year and the day range for --year and --month; both default to today.
"selectable" reports whether the wheels can reach that year and month.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := app.cfg.Bounds()
			if err != nil {
				return writeErr(cmd, err)
			}
			loc, _ := locale.Lookup(app.cfg.Locale)
			calc := dateinput.NewCalculator(bounds, loc, app.cfg.YearSpan, logging.For("ranges"))

			now := app.now()
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			if month < 1 || month > loc.MonthsInYear(year) {
				return writeErr(cmd, errInvalidArg("--month", cmd.Flag("month").Value.String(), errOutOfRange))
			}

			years, months := calc.YearRange(now), calc.MonthRange(year)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"bounded":    calc.Bounded(),
				"year":       year,
				"month":      month,
				"selectable": years.Contains(year) && months.Contains(month),
				"years":      toRange(years),
				"months":     toRange(months),
				"days":       toRange(calc.DayRange(year, time.Month(month))),
			}})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Year for the month and day ranges")
	cmd.Flags().IntVar(&month, "month", 0, "Month (1-12) for the day range")
	cmd.Flags().String("min-date", "", "Earliest selectable date (YYYY-MM-DD)")
	cmd.Flags().String("max-date", "", "Latest selectable date (YYYY-MM-DD)")
	cmd.Flags().Int("year-span", dateinput.DefaultYearSpan, "Years either side of today on an unbounded year wheel")
	return cmd
}
