// internal/commands/report_charts.go
package benchplot

import (
	"github.com/mwiater/benchplot/internal/chart"
	"github.com/spf13/cobra"
)

// reportSpeedupCmd renders <name>_speedup charts.
var reportSpeedupCmd = &cobra.Command{
	Use:   "speedup",
	Short: "Render speedup charts (T_seq / T_parallel per process count)",
	Long: `Compute the speedup of every parallel method against the file's sequential
run and plot it next to the ideal linear speedup. Files without a sequential
row, with a missing column or with a non-positive time are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, []string{chart.KindSpeedup})
	},
}

// reportTimesCmd renders <name> performance charts.
var reportTimesCmd = &cobra.Command{
	Use:   "times",
	Short: "Render execution time charts per process count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, []string{chart.KindTimes})
	},
}

var reportAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Render both execution time and speedup charts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, chart.Kinds)
	},
}

func init() {
	reportCmd.AddCommand(reportSpeedupCmd)
	reportCmd.AddCommand(reportTimesCmd)
	reportCmd.AddCommand(reportAllCmd)
}
