package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

func slotsCmd() *cobra.Command {
	var (
		duration int
		date     string
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the candidate start times for a service duration",
		Long: `Prints the calendar grid for a service duration without touching the
database. Existing bookings are not considered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var day *time.Time
			if date != "" {
				d, err := timezone.ParseDate(date, cfg.Location)
				if err != nil {
					return fmt.Errorf("invalid --date %q: use YYYY-MM-DD", date)
				}
				day = &d
			}

			return printSlots(cmd.OutOrStdout(), cfg.Calendar, duration, day)
		},
	}

	cmd.Flags().IntVarP(&duration, "duration", "d", 30, "Service duration in minutes")
	cmd.Flags().StringVar(&date, "date", "", "Day to check for closure (YYYY-MM-DD)")

	return cmd
}

func printSlots(w io.Writer, cal domain.Calendar, duration int, day *time.Time) error {
	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %d", duration)
	}

	if day != nil && cal.IsClosed(day.Weekday()) {
		_, err := fmt.Fprintf(w, "%s: closed\n", day.Format(timezone.LayoutDate))
		return err
	}

	count := 0
	for slot := range cal.Slots(duration) {
		if _, err := fmt.Fprintln(w, slot); err != nil {
			return err
		}
		count++
	}

	_, err := fmt.Fprintf(w, "%d slots (%d min, lunch rule %s)\n", count, duration, cal.LunchRule)
	return err
}
