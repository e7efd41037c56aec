package main

import (
	"fmt"
	"os"

	"github.com/velar/brewbump/cmd/brewbump"
	"github.com/velar/brewbump/pkg/ui/output/styles"
)

func main() {
	rootCmd := brewbump.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
