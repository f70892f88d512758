package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arvind/vtop-agent/internal/config"
	"github.com/arvind/vtop-agent/internal/fetch"
	"github.com/arvind/vtop-agent/internal/observability"
	"github.com/arvind/vtop-agent/internal/schemas"
	"github.com/arvind/vtop-agent/internal/transcript"
	"github.com/arvind/vtop-agent/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse an exported transcript into structured JSON",
	Long:  "Parse the raw transcript text exported by the VTOP CLI into the parsed-document JSON that validates against the parsed_document schema.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseConfigFile string
	parseExamDate   string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to the exported transcript text file (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path for the output JSON file (required)")
	parseCmd.Flags().StringVar(&parseConfigFile, "config", "", "Path to a JSON config file")
	parseCmd.Flags().StringVar(&parseExamDate, "exam-date", "", "Final exam date (YYYY-MM-DD) for synthesized exam entries")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a document summary and parser warnings")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if parseConfigFile != "" {
		loaded, err := config.Load(parseConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over config values.
	if parseInputFile != "" {
		cfg.Transcript = parseInputFile
	}
	if parseOutputFile != "" {
		cfg.Output = parseOutputFile
	}
	if parseExamDate != "" {
		cfg.ExamDate = parseExamDate
	}
	cfg.Verbose = cfg.Verbose || parseVerbose
	if cfg.Transcript == "" {
		cfg.Transcript = os.Getenv("VTOP_TRANSCRIPT")
	}

	if cfg.Transcript == "" || cfg.Output == "" {
		return fmt.Errorf("must provide --in and --out (or transcript/output in --config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, warnings, err := parseTranscript(context.Background(), cfg)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// Validate against the output contract before writing (if the schema
	// file is locatable from this working directory).
	if schemaPath := schemas.ResolveSchemaPath(schemas.DocumentSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, jsonBytes); err != nil {
			var loadErr *schemas.SchemaLoadError
			if errors.As(err, &loadErr) {
				fmt.Fprintf(os.Stderr, "Warning: schema validation skipped: %v\n", loadErr)
			} else {
				return fmt.Errorf("parsed document failed schema validation: %w", err)
			}
		}
	}

	if err := os.WriteFile(cfg.Output, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintDocument(doc)
		printer.PrintWarnings(warnings)
	}
	fmt.Printf("Parsed %d courses and %d attendance rows -> %s\n", len(doc.Marks), len(doc.Attendance), cfg.Output)
	return nil
}

// parseTranscript fetches the raw text through the source boundary and runs
// the parser over it, collecting warnings for verbose output.
func parseTranscript(ctx context.Context, cfg *config.Config) (doc *types.ParsedDocument, warnings []string, err error) {
	raw, err := fetch.FileSource{Path: cfg.Transcript}.Fetch(ctx)
	if err != nil {
		return nil, nil, err
	}

	parser := &transcript.Parser{
		ExamDate:  cfg.ExamDate,
		ExamTime:  cfg.ExamTime,
		OnWarning: func(msg string) { warnings = append(warnings, msg) },
	}
	doc, err = parser.Parse(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse transcript: %w", err)
	}
	return doc, warnings, nil
}
