package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arvind/vtop-agent/internal/features"
	"github.com/arvind/vtop-agent/internal/observability"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Project final grades from internal marks",
	Long:  "Compute optimistic, realistic and pessimistic final-exam scenarios per course from a parsed document.",
	RunE:  runPredict,
}

var predictDataFile string

func init() {
	predictCmd.Flags().StringVarP(&predictDataFile, "data", "d", "", "Path to the parsed document JSON (required)")
	_ = predictCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument(predictDataFile)
	if err != nil {
		return err
	}

	predictions := features.PredictGrades(doc)
	observability.NewPrinter(os.Stdout).PrintPredictions(predictions)
	return nil
}
