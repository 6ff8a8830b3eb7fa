// internal/cli/inspect.go
package benchview

import (
	"github.com/mwiater/benchview/internal/suite"
	"github.com/spf13/cobra"
)

type inspectOptions struct {
	inputPath string
}

var inspectOpts inspectOptions

// inspectCmd prints ranked per-input comparison tables without writing HTML.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print ranked comparison tables from benchmark suite JSON",
	Long: `Read a benchmark suite file and print one ranked comparison table per
benchmark input to the terminal. The fastest scenario of each input is
highlighted green, the slowest red.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		su, err := suite.LoadFile(inspectOpts.inputPath)
		if err != nil {
			return err
		}
		return runInspect(cmd.OutOrStdout(), su)
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectOpts.inputPath, "input", "i", "benchmarks/output/results.json", "Path to suite JSON (required)")

	rootCmd.AddCommand(inspectCmd)
}
