// cmd/benchview/main.go
package main

import (
	cmd "github.com/mwiater/benchview/internal/cli"
)

// main starts the benchview CLI application by delegating to the
// cobra root command defined in the benchview package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
