package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Data Dir:        %s\n", cfg.DataDirPath())
	fmt.Fprintf(out, "  Image Dir:       %s\n", cfg.ImgDirPath())
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Workers:         %d\n", cfg.WorkerCount())
	fmt.Fprintf(out, "  Image Format:    %s\n", cfg.ImageFormat())
	fmt.Fprintf(out, "  Image Scale:     %g\n", cfg.ImageScale())
	if cfg.GroupBy != "" {
		fmt.Fprintf(out, "  Group By:        %s\n", cfg.GroupBy)
	}
	if cfg.AnalysisOutput != "" {
		fmt.Fprintf(out, "  Analysis Output: %s\n", cfg.AnalysisOutput)
	}
}
