package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arvind/vtop-agent/internal/config"
	"github.com/arvind/vtop-agent/internal/features"
	"github.com/arvind/vtop-agent/internal/observability"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Parse a transcript and produce all feature reports",
	Long:  "Parse the exported transcript once, then compute every offline feature report over the document and write all artifacts under a run directory.",
	RunE:  runAll,
}

var (
	runInputFile  string
	runOutDir     string
	runConfigFile string
	runExamDate   string
	runVerbose    bool
)

func init() {
	runCmd.Flags().StringVarP(&runInputFile, "in", "i", "", "Path to the exported transcript text file (required)")
	runCmd.Flags().StringVarP(&runOutDir, "out", "o", "out", "Directory for run artifacts")
	runCmd.Flags().StringVar(&runConfigFile, "config", "", "Path to a JSON config file")
	runCmd.Flags().StringVar(&runExamDate, "exam-date", "", "Final exam date (YYYY-MM-DD) for synthesized exam entries")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print summaries for every report")

	rootCmd.AddCommand(runCmd)
}

func runAll(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if runConfigFile != "" {
		loaded, err := config.Load(runConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if runInputFile != "" {
		cfg.Transcript = runInputFile
	}
	// The flag has a non-empty default, so it only wins when set explicitly
	// or when the config carries no directory.
	if cmd.Flags().Changed("out") || cfg.OutDir == "" {
		cfg.OutDir = runOutDir
	}
	if runExamDate != "" {
		cfg.ExamDate = runExamDate
	}
	cfg.Verbose = cfg.Verbose || runVerbose
	if cfg.Transcript == "" {
		cfg.Transcript = os.Getenv("VTOP_TRANSCRIPT")
	}

	if cfg.Transcript == "" {
		return fmt.Errorf("must provide --in (or transcript in --config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, warnings, err := parseTranscript(context.Background(), cfg)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	runDir := filepath.Join(cfg.OutDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}

	minPct := cfg.MinAttendance
	if minPct == 0 {
		minPct = features.DefaultMinAttendance
	}

	// The document is immutable once parsed, so each feature report computes
	// and writes independently.
	var (
		analyses    []features.SkipAnalysis
		predictions []features.Prediction
		trends      []features.CourseTrend
	)
	var g errgroup.Group
	g.Go(func() error { return writeJSON(filepath.Join(runDir, "document.json"), doc) })
	g.Go(func() error {
		analyses = features.AnalyzeAttendance(doc, minPct)
		return writeJSON(filepath.Join(runDir, "attendance.json"), analyses)
	})
	g.Go(func() error {
		predictions = features.PredictGrades(doc)
		return writeJSON(filepath.Join(runDir, "predictions.json"), predictions)
	})
	g.Go(func() error {
		trends = features.ComponentTrends(doc)
		return writeJSON(filepath.Join(runDir, "trends.json"), trends)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintDocument(doc)
		printer.PrintWarnings(warnings)
		printer.PrintAttendanceReport(analyses)
		printer.PrintPredictions(predictions)
		printer.PrintTrends(trends)
	}
	fmt.Printf("Run %s complete: artifacts in %s\n", runID, runDir)
	return nil
}
