package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/rsviz/core/schedule"
	"github.com/kilianp07/rsviz/core/stats"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <schedule.json>",
	Short: "Print objective value and tour statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	resp, err := schedule.ImportResponse(args[0])
	if err != nil {
		return err
	}
	s := stats.Summarize(resp)
	w := cmd.OutOrStdout()
	if ov := resp.ObjectiveValue; ov != nil {
		fmt.Fprintf(w, "unserved passengers:    %d\n", ov.NumberOfUnservedPassengers)
		fmt.Fprintf(w, "vehicles (objective):   %d\n", ov.NumberOfVehicles)
		fmt.Fprintf(w, "seat distance traveled: %d\n", ov.SeatDistanceTraveled)
	}
	fmt.Fprintf(w, "vehicles: %d\n", s.Vehicles)
	fmt.Fprintf(w, "trips: %d (%d service, %d deadhead)\n", s.Trips, s.ServiceTrips, s.DeadheadTrips)
	if s.Trips > 0 {
		fmt.Fprintf(w, "trip duration: mean %.1f min, max %.1f min\n", s.MeanTripMinutes, s.MaxTripMinutes)
		fmt.Fprintf(w, "span: %s to %s\n", s.SpanStart.Format(time.RFC3339), s.SpanEnd.Format(time.RFC3339))
	}
	return nil
}
