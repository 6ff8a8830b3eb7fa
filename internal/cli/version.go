// internal/cli/version.go
package benchview

import (
	"github.com/spf13/cobra"
)

// versionCmd prints the formatter version stamped into generated reports.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the benchview version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("benchview %s\n", appVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
