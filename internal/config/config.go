// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Transcript string `json:"transcript,omitempty"` // Path to the exported transcript text file
	Output     string `json:"output,omitempty"`     // Path for the parsed document JSON
	OutDir     string `json:"out_dir,omitempty"`    // Directory for run artifacts

	// Parsing
	ExamDate string `json:"exam_date,omitempty" validate:"omitempty,datetime=2006-01-02"` // Final exam date for synthesized entries
	ExamTime string `json:"exam_time,omitempty"`                                          // Final exam time, e.g. "10:00 AM"

	// Feature parameters
	MinAttendance      float64 `json:"min_attendance,omitempty" validate:"omitempty,gt=0,lte=100"` // Attendance floor in percent
	TargetCGPA         float64 `json:"target_cgpa,omitempty" validate:"omitempty,gte=0,lte=10"`    // What-if target
	RemainingSemesters int     `json:"remaining_semesters,omitempty" validate:"omitempty,gte=0"`
	CreditsPerSemester int     `json:"credits_per_semester,omitempty" validate:"omitempty,gt=0"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed summaries and parser warnings
}

// Load reads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks ranges via struct tags and verifies referenced files exist.
// Required fields are not enforced here; they are checked after merging with
// CLI flags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Transcript != "" {
		if _, err := os.Stat(c.Transcript); os.IsNotExist(err) {
			return fmt.Errorf("config error: transcript file not found: %s", c.Transcript)
		}
	}

	return nil
}
