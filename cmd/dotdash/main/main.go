package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vincentqb/DotDash/cmd/dotdash"
	"github.com/vincentqb/DotDash/pkg/ui/output/styles"
)

func main() {
	rootCmd := dotdash.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Renderers report their own failures; everything else is printed
		// here in red.
		if !errors.Is(err, dotdash.ErrSilent) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
