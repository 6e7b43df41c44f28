package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/assetlint/cmd/assetlint"
	"github.com/arthur-debert/assetlint/pkg/ui/output/styles"
)

func main() {
	rootCmd := assetlint.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !assetlint.IsSilent(err) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(assetlint.ExitCode(err))
	}
}
