// Command assetpipe-manpage writes the top-level man page to stdout for
// release packaging. "assetpipe man" writes the full tree instead.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/assetpipe/cmd/assetpipe"
	"github.com/arthur-debert/assetpipe/internal/version"
)

func main() {
	rootCmd := assetpipe.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "ASSETPIPE",
		Section: "1",
		Source:  "assetpipe " + version.Version,
		Manual:  "assetpipe manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
