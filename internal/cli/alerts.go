package cli

import (
	"fmt"
	"io"

	"github.com/ppiankov/floatchat/internal/alerts"
	"github.com/ppiankov/floatchat/internal/fleet"
	"github.com/ppiankov/floatchat/internal/model"
	"github.com/spf13/cobra"
)

// alertsCmd represents the alerts command
var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Show float alerts (demo data)",
}

var alertsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List alerts with their surface readings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := fleet.Default()
		book := alerts.NewBook(f.Alerts())
		out := cmd.OutOrStdout()

		printAlerts(out, book.List())
		fmt.Fprintln(out)

		for _, e := range book.List() {
			if r, ok := f.SurfaceReading(e.Alert.FloatID); ok {
				fmt.Fprintf(out, "  %s  %s surface: %.1f°C, %.1f PSU\n", e.Alert.ID, e.Alert.FloatID, r.Temperature, r.Salinity)
			}
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Recipients:")
		for _, r := range alerts.Recipients() {
			state := "active"
			if !r.Active {
				state = "standby"
			}
			fmt.Fprintf(out, "  • %-22s %s\n", r.Name, state)
		}
		return nil
	},
}

var alertsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count alerts by severity and status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := alerts.NewBook(fleet.Default().Alerts()).Stats()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "  Total:         %d\n", stats.Total)
		fmt.Fprintf(out, "  High:          %d\n", stats.BySeverity[model.SeverityHigh])
		fmt.Fprintf(out, "  Medium:        %d\n", stats.BySeverity[model.SeverityMedium])
		fmt.Fprintf(out, "  Low:           %d\n", stats.BySeverity[model.SeverityLow])
		fmt.Fprintf(out, "  Active:        %d\n", stats.ByStatus[model.AlertActive])
		fmt.Fprintf(out, "  Acknowledged:  %d\n", stats.ByStatus[model.AlertAcknowledged])
		fmt.Fprintf(out, "  Resolved:      %d\n", stats.ByStatus[model.AlertResolved])
		return nil
	},
}

func printAlerts(w io.Writer, entries []alerts.Entry) {
	for _, e := range entries {
		a := e.Alert
		fmt.Fprintf(w, "  %-7s %-7s %-6s %-12s %s\n", a.ID, a.FloatID, a.Severity, e.Status, a.Message)
		fmt.Fprintf(w, "          %s  %.1f°N %.1f°E  %s\n", a.Type, a.Location.Lat, a.Location.Lng, a.Timestamp.Format("2006-01-02 15:04 MST"))
	}
}

func init() {
	rootCmd.AddCommand(alertsCmd)
	alertsCmd.AddCommand(alertsListCmd)
	alertsCmd.AddCommand(alertsStatsCmd)
}
