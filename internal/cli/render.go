// internal/cli/render.go
package benchview

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/mwiater/benchview/internal/logging"
	"github.com/mwiater/benchview/internal/report"
	"github.com/mwiater/benchview/internal/suite"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	inputPath    string
	outputPath   string
	open         bool
	inlineAssets bool
	timeUnit     string
	countUnit    string
}

var renderOpts renderOptions

// renderCmd turns a benchmark suite JSON file into a static HTML report tree.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an HTML report from benchmark suite JSON",
	Long: `Read a benchmark suite file (the JSON written by benchmark runs), build
the comparison and per-scenario detail pages, and write the report tree next
to the configured output file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderOpts.inputPath == "" {
			return fmt.Errorf("input suite file is required (pass --input)")
		}

		su, err := suite.LoadFile(renderOpts.inputPath)
		if err != nil {
			return err
		}
		logging.LogStage("LOAD", renderOpts.inputPath, map[string]int{"scenarios": len(su.Scenarios)})

		cfg := renderConfig(cmd)
		if DebugEnabled() {
			pp.Println(cfg)
		}

		rep, err := report.Format(su, cfg, appVersion)
		if err != nil {
			return fmt.Errorf("failed building HTML report: %w", err)
		}
		logging.LogStage("RENDER", cfg.File, map[string]int{"pages": len(rep.Pages)})

		if err := report.Write(rep); err != nil {
			return err
		}
		logging.LogStage("WRITE", rep.Config.File, nil)

		cmd.Printf("Report written to %s\n", rep.Config.File)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOpts.inputPath, "input", "i", "benchmarks/output/results.json", "Path to suite JSON (required)")
	renderCmd.Flags().StringVarP(&renderOpts.outputPath, "output", "o", "", "Destination HTML report path (defaults to the configured reportFile)")
	renderCmd.Flags().BoolVar(&renderOpts.open, "open", false, "Open the report index in the default browser after writing")
	renderCmd.Flags().BoolVar(&renderOpts.inlineAssets, "inline-assets", false, "Embed CSS/JS into each page instead of writing asset files")
	renderCmd.Flags().StringVar(&renderOpts.timeUnit, "time-unit", "", "Fixed run time unit (nanosecond, microsecond, millisecond, second, minute, hour) or best_fit")
	renderCmd.Flags().StringVar(&renderOpts.countUnit, "count-unit", "", "Fixed throughput unit (one, thousand, million, billion) or best_fit")

	rootCmd.AddCommand(renderCmd)
}

// renderConfig merges the loaded application config with any render flags the
// user set. Flags win over the config file.
func renderConfig(cmd *cobra.Command) report.Config {
	cfg := getConfig().ReportConfig()
	if cmd.Flags().Changed("output") {
		cfg.File = renderOpts.outputPath
	}
	if cmd.Flags().Changed("open") {
		cfg.AutoOpen = renderOpts.open
	}
	if cmd.Flags().Changed("inline-assets") {
		cfg.InlineAssets = renderOpts.inlineAssets
	}
	if cmd.Flags().Changed("time-unit") {
		cfg.TimeUnit = renderOpts.timeUnit
	}
	if cmd.Flags().Changed("count-unit") {
		cfg.CountUnit = renderOpts.countUnit
	}
	return cfg
}
