package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arvind/vtop-agent/internal/features"
	"github.com/arvind/vtop-agent/internal/observability"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Analyze performance trends across graded components",
	Long:  "Fit per-course regressions over component percentages and project the next component's score.",
	RunE:  runTrend,
}

var trendDataFile string

func init() {
	trendCmd.Flags().StringVarP(&trendDataFile, "data", "d", "", "Path to the parsed document JSON (required)")
	_ = trendCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(trendCmd)
}

func runTrend(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument(trendDataFile)
	if err != nil {
		return err
	}

	trends := features.ComponentTrends(doc)
	observability.NewPrinter(os.Stdout).PrintTrends(trends)
	return nil
}
