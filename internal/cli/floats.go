package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/ppiankov/floatchat/internal/fleet"
	"github.com/ppiankov/floatchat/internal/model"
	"github.com/spf13/cobra"
)

var (
	floatRegion  string
	floatStatus  string
	nearestCount int
)

// floatsCmd represents the floats command
var floatsCmd = &cobra.Command{
	Use:   "floats",
	Short: "Explore the ARGO float fleet (demo data)",
}

var floatsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List floats, optionally filtered by region or status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := fleet.Default()

		floats := f.Floats()
		switch {
		case floatRegion != "" && floatStatus != "":
			return fmt.Errorf("use either --region or --status, not both")
		case floatRegion != "":
			floats = f.ByRegion(floatRegion)
		case floatStatus != "":
			floats = f.ByStatus(model.FloatStatus(floatStatus))
		}

		out := cmd.OutOrStdout()
		for _, fl := range floats {
			printFloat(out, fl)
		}
		if len(floats) == 0 {
			fmt.Fprintln(out, "No floats match.")
		}
		return nil
	},
}

var floatsNearestCmd = &cobra.Command{
	Use:   "nearest <lat> <lng>",
	Short: "List floats by distance from a point",
	Long: `Nearest orders floats by great-circle distance from a point.

Example:
  floatchat floats nearest 14.5 72.9
  floatchat floats nearest -- -10 80 -n 2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := parseCoord(args[0], 90)
		if err != nil {
			return fmt.Errorf("latitude: %w", err)
		}
		lng, err := parseCoord(args[1], 180)
		if err != nil {
			return fmt.Errorf("longitude: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, n := range fleet.Default().Nearest(lat, lng, nearestCount) {
			fmt.Fprintf(out, "  %-8s %8.1f km  %-14s %s\n", n.Float.ID, n.DistanceKm, n.Float.Region, n.Float.Status)
		}
		return nil
	},
}

var floatsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the dashboard overview for a role",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := commandConfig(cmd)
		if err != nil {
			return err
		}

		view := cfg.Chat.DefaultRole.View()
		s := fleet.Default().Summary()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s\n%s\n\n", view.Title, view.Description)
		fmt.Fprintf(out, "  Floats:            %d (%d active, %d anomaly, %d inactive)\n",
			s.Total, s.ByStatus[model.FloatActive], s.ByStatus[model.FloatAnomaly], s.ByStatus[model.FloatInactive])
		fmt.Fprintf(out, "  Surface temp:      %.2f°C\n", s.MeanSurfaceTemp)
		fmt.Fprintf(out, "  Surface salinity:  %.2f PSU\n", s.MeanSurfaceSalinity)

		if view.ShowAdvanced {
			regions := make([]string, 0, len(s.ByRegion))
			for r := range s.ByRegion {
				regions = append(regions, r)
			}
			sort.Strings(regions)

			fmt.Fprintln(out, "  Regions:")
			for _, r := range regions {
				fmt.Fprintf(out, "    %-16s %d\n", r, s.ByRegion[r])
			}
		}
		return nil
	},
}

func printFloat(w io.Writer, fl model.Float) {
	fmt.Fprintf(w, "  %-8s %7.1f %7.1f  %-14s %-8s %s\n",
		fl.ID, fl.Lat, fl.Lng, fl.Region, fl.Status, fl.LastUpdate.Format("2006-01-02 15:04"))
}

func parseCoord(s string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("%v out of range [-%v, %v]", v, limit, limit)
	}
	return v, nil
}

func init() {
	rootCmd.AddCommand(floatsCmd)
	floatsCmd.AddCommand(floatsListCmd)
	floatsCmd.AddCommand(floatsNearestCmd)
	floatsCmd.AddCommand(floatsSummaryCmd)

	floatsListCmd.Flags().StringVar(&floatRegion, "region", "", "only floats in this region, e.g. \"Arabian Sea\"")
	floatsListCmd.Flags().StringVar(&floatStatus, "status", "", "only floats with this status (active, anomaly, inactive)")
	floatsNearestCmd.Flags().IntVarP(&nearestCount, "count", "n", 3, "number of floats (0 for all)")
	floatsSummaryCmd.Flags().StringVar(&roleName, "role", "", "dashboard role (default from config)")
}
