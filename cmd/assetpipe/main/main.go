package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/assetpipe/cmd/assetpipe"
	"github.com/arthur-debert/assetpipe/pkg/ui"
)

func main() {
	rootCmd := assetpipe.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
