package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arvind/vtop-agent/internal/features"
	"github.com/arvind/vtop-agent/internal/observability"
)

var cgpaCmd = &cobra.Command{
	Use:   "cgpa",
	Short: "CGPA what-if planning and trajectory",
	Long:  "Compute the GPA required each remaining semester to hit a target CGPA, and optionally the trajectory over a CGPA history.",
	RunE:  runCGPA,
}

var (
	cgpaDataFile  string
	cgpaTarget    float64
	cgpaRemaining int
	cgpaCredits   int
	cgpaHistory   string
)

func init() {
	cgpaCmd.Flags().StringVarP(&cgpaDataFile, "data", "d", "", "Path to the parsed document JSON (required)")
	cgpaCmd.Flags().Float64Var(&cgpaTarget, "target", 9.0, "Target CGPA")
	cgpaCmd.Flags().IntVar(&cgpaRemaining, "remaining", 1, "Remaining semesters")
	cgpaCmd.Flags().IntVar(&cgpaCredits, "credits", features.DefaultCreditsPerSemester, "Credits per remaining semester")
	cgpaCmd.Flags().StringVar(&cgpaHistory, "history", "", "Comma-separated CGPA history, oldest first (e.g. 8.5,8.7,8.9)")
	_ = cgpaCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(cgpaCmd)
}

func runCGPA(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument(cgpaDataFile)
	if err != nil {
		return err
	}

	// The document carries one cumulative CGPA and the credits behind it;
	// model the completed work as a single aggregate semester.
	completed := []features.SemesterResult{
		{GPA: doc.CGPA, Credits: int(doc.CreditsCompleted)},
	}
	result := features.WhatIf(completed, cgpaTarget, cgpaRemaining, cgpaCredits)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintWhatIf(result)

	if cgpaHistory != "" {
		history, err := parseHistory(cgpaHistory)
		if err != nil {
			return err
		}
		if trajectory, ok := features.CGPATrend(history); ok {
			fmt.Printf("Trajectory: %s (strength %.3f), next ~%.2f\n",
				trajectory.Trend, trajectory.TrendStrength, trajectory.PredictedNext)
		} else {
			fmt.Println("Trajectory: need at least two history points.")
		}
	}
	return nil
}

func parseHistory(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	history := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CGPA history value %q: %w", part, err)
		}
		history = append(history, v)
	}
	return history, nil
}
