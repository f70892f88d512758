package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arvind/vtop-agent/internal/features"
	"github.com/arvind/vtop-agent/internal/observability"
)

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Plan class attendance against the minimum requirement",
	Long:  "Compute per-course skip buffers, recovery counts and status bands from a parsed document.",
	RunE:  runAttendance,
}

var (
	attendanceDataFile string
	attendanceMin      float64
)

func init() {
	attendanceCmd.Flags().StringVarP(&attendanceDataFile, "data", "d", "", "Path to the parsed document JSON (required)")
	attendanceCmd.Flags().Float64Var(&attendanceMin, "min", features.DefaultMinAttendance, "Minimum attendance percentage")
	_ = attendanceCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(attendanceCmd)
}

func runAttendance(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument(attendanceDataFile)
	if err != nil {
		return err
	}

	analyses := features.AnalyzeAttendance(doc, attendanceMin)
	observability.NewPrinter(os.Stdout).PrintAttendanceReport(analyses)
	return nil
}
