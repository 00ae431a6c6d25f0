package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pacer",
	Short: "Terminal progress for step-by-step workflows",
	Long: `Pacer runs declarative task manifests with live terminal progress:
a step tree with status glyphs, an overall progress bar, and a
sliding-window ETA estimate.

Tasks are declared in a YAML manifest where mapping order is execution
order. A string value is a shell command, a [label, command] pair names
it explicitly, and a nested mapping groups steps:

  fetchDeps: go mod download
  build:
    compile: go build ./...
    test: [Run tests, go test ./...]`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
