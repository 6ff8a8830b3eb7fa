// internal/cli/browse.go
package benchview

import (
	"fmt"

	"github.com/mwiater/benchview/internal/suite"
	"github.com/mwiater/benchview/internal/tui"
	"github.com/spf13/cobra"
)

type browseOptions struct {
	inputPath string
}

var browseOpts browseOptions

var startBrowser = func(su *suite.Suite) error {
	_, err := tui.NewProgram(su).Run()
	return err
}

// browseCmd opens the interactive scenario browser for a suite file.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse benchmark scenarios in an interactive list",
	Long: `The 'browse' command loads a benchmark suite file and opens a terminal
list of its scenarios with their headline statistics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		su, err := suite.LoadFile(browseOpts.inputPath)
		if err != nil {
			return err
		}
		if err := startBrowser(su); err != nil {
			return fmt.Errorf("failed running scenario browser: %w", err)
		}
		return nil
	},
}

func init() {
	browseCmd.Flags().StringVarP(&browseOpts.inputPath, "input", "i", "benchmarks/output/results.json", "Path to suite JSON (required)")

	rootCmd.AddCommand(browseCmd)
}
