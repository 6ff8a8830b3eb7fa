package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &Config{}
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:         %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:      %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Report File:   %s\n", cfg.ReportFilePath())
	fmt.Fprintf(out, "  Auto Open:     %v\n", cfg.AutoOpen)
	fmt.Fprintf(out, "  Inline Assets: %v\n", cfg.InlineAssets)
	fmt.Fprintf(out, "  Time Unit:     %s\n", cfg.TimeUnitName())
	fmt.Fprintf(out, "  Count Unit:    %s\n", cfg.CountUnitName())
}
