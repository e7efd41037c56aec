package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/velar/brewbump/cmd/brewbump"
	"github.com/velar/brewbump/internal/version"
)

func main() {
	rootCmd := brewbump.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "BREWBUMP",
		Section: "1",
		Source:  "brewbump " + version.Version,
		Manual:  "brewbump manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
