// internal/commands/report.go
package benchplot

import (
	"fmt"

	"github.com/mwiater/benchplot/internal/appconfig"
	"github.com/mwiater/benchplot/internal/chart"
	"github.com/mwiater/benchplot/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// reportCmd hosts the chart-rendering commands.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render charts from benchmark CSV files",
	Long: `Read every CSV file (columns method, nb_proc, time) in the data directory
and render charts into the image directory. Files that cannot be charted are
reported and skipped; the remaining files are still processed.`,
}

func init() {
	flags := reportCmd.PersistentFlags()
	flags.String("data-dir", "data", "directory containing benchmark CSV files")
	flags.String("img-dir", "img", "directory receiving the rendered charts")
	flags.String("group-by", "", "optional column splitting each file into groups with their own sequential baseline (e.g. size)")
	flags.String("format", "png", "image format: png, svg or pdf")
	flags.Float64("scale", 3, "PNG resolution multiplier")
	flags.String("analysis-output", "", "optional path to write the computed speedups as JSON")

	_ = viper.BindPFlag("dataDir", flags.Lookup("data-dir"))
	_ = viper.BindPFlag("imgDir", flags.Lookup("img-dir"))
	_ = viper.BindPFlag("groupBy", flags.Lookup("group-by"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("scale", flags.Lookup("scale"))
	_ = viper.BindPFlag("analysisOutput", flags.Lookup("analysis-output"))

	rootCmd.AddCommand(reportCmd)
}

func reportOptions(cfg *appconfig.Config, kinds []string) (report.Options, error) {
	if cfg == nil {
		cfg = &appconfig.Config{}
	}
	format := cfg.ImageFormat()
	switch format {
	case "png", "svg", "pdf":
	default:
		return report.Options{}, fmt.Errorf("unsupported image format %q (want png, svg or pdf)", format)
	}
	return report.Options{
		DataDir:      cfg.DataDirPath(),
		ImgDir:       cfg.ImgDirPath(),
		Kinds:        kinds,
		GroupBy:      cfg.GroupBy,
		Workers:      cfg.WorkerCount(),
		AnalysisPath: cfg.AnalysisOutput,
		Chart: chart.Options{
			Scale:  cfg.ImageScale(),
			Format: format,
		},
		Debug: cfg.Debug,
	}, nil
}

func runReport(cmd *cobra.Command, kinds []string) error {
	opts, err := reportOptions(GetConfig(), kinds)
	if err != nil {
		return err
	}
	summary, err := report.Generate(cmd.Context(), opts, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	report.PrintSummary(cmd.OutOrStdout(), summary)
	return nil
}
