// Command products builds and renders bond and interest rate swap records.
package main

import (
	"fmt"
	"os"

	"instrument-model/internal/cli"
)

func main() {
	app := &cli.App{}
	if err := cli.NewRootCmd(app).Execute(); err != nil {
		app.Logger.Error().Err(err).Msg("Command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
