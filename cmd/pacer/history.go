package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/pacer/internal/config"
	"github.com/ShayCichocki/pacer/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return showHistory()
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to show")
}

func showHistory() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := cfg.History.Path
	if path == "" {
		path = history.DefaultPath()
	}

	db, err := history.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.RecentRuns(historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSTARTED\tDURATION\tSTEPS\tRESULT")
	for _, r := range runs {
		result := "ok"
		if !r.Succeeded() {
			result = fmt.Sprintf("%d failed", r.Failed)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%s\n",
			r.ID,
			r.Started.Format("2006-01-02 15:04:05"),
			r.Duration.Round(10*time.Millisecond),
			r.Completed, r.Total,
			result,
		)
	}
	return w.Flush()
}
