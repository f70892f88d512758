package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvind/vtop-agent/internal/features"
	"github.com/arvind/vtop-agent/internal/types"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.ParsedDocument{
		Profile: types.Profile{
			RegNo: "23BCE1234",
			Name:  "ARVIND KUMAR",
			CGPA:  8.75,
		},
		Semester: "Semester 5",
		Marks: []types.CourseRecord{
			{CourseName: "Artificial Intelligence", CourseCode: "BCSE307L", TotalScored: 20.5, TotalWeight: 60},
		},
		Attendance: []types.AttendanceRecord{{CourseCode: "BCSE307L"}},
	}

	p.PrintDocument(doc)
	output := buf.String()

	assert.Contains(t, output, "Parsed Transcript")
	assert.Contains(t, output, "23BCE1234")
	assert.Contains(t, output, "ARVIND KUMAR")
	assert.Contains(t, output, "8.75")
	assert.Contains(t, output, "BCSE307L")
	assert.Contains(t, output, "Attendance rows: 1")
}

func TestPrintDocument_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocument(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAttendanceReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAttendanceReport([]features.SkipAnalysis{
		{CourseCode: "BCSE307L", CurrentPercentage: 94.4, Status: features.BandSafe, BufferClasses: 9},
		{CourseCode: "BCSE203L", CurrentPercentage: 66.7, Status: features.BandCritical, RecoveryNeeded: 12},
	})
	output := buf.String()

	assert.Contains(t, output, "Attendance Planner")
	assert.Contains(t, output, "BCSE307L")
	assert.Contains(t, output, "buffer 9")
	assert.Contains(t, output, "recover 12")
}

func TestPrintAttendanceReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAttendanceReport(nil)

	assert.Contains(t, buf.String(), "No attendance records.")
}

func TestPrintPredictions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPredictions([]features.Prediction{
		{
			CourseName: "Artificial Intelligence",
			CourseCode: "BCSE307L",
			Internal:   features.InternalMarks{Total: 45, Max: 60},
			Optimistic: features.Scenario{Grade: "A", Total: 78},
			Realistic:  features.Scenario{Grade: "B", Total: 75},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "Grade Predictions")
	assert.Contains(t, output, "likely B")
	assert.Contains(t, output, "best A")
}

func TestPrintWhatIf(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWhatIf(features.WhatIfResult{
		CurrentCGPA:    8.0,
		TargetCGPA:     8.5,
		RequiredGPA:    9.0,
		CreditsNeeded:  48,
		Recommendation: "Maintain a 9.00 GPA each remaining semester to reach 8.50.",
	})
	output := buf.String()

	assert.Contains(t, output, "CGPA What-If")
	assert.Contains(t, output, "8.50")
	assert.Contains(t, output, "9.00")
}

func TestPrintTrends(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTrends([]features.CourseTrend{
		{CourseCode: "BCSE307L", Trend: features.TrendImproving, PredictedNext: 90, Samples: 3},
	})

	assert.Contains(t, buf.String(), "Performance Trends")
	assert.Contains(t, buf.String(), "Improving")
}

func TestPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWarnings(nil)
	assert.Empty(t, buf.String())

	p.PrintWarnings([]string{"no course code mapping for \"Quantum Sensing Lab\""})
	assert.Contains(t, buf.String(), "Parser Warnings")
	assert.Contains(t, buf.String(), "Quantum Sensing Lab")
}
