package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/vincentqb/DotDash/cmd/dotdash"
	"github.com/vincentqb/DotDash/internal/version"
)

func main() {
	rootCmd := dotdash.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOTDASH",
		Section: "1",
		Source:  "dotdash " + version.Version,
		Manual:  "dotdash manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
