// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/arvind/vtop-agent/internal/features"
	"github.com/arvind/vtop-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of a parsed transcript.
func (p *Printer) PrintDocument(doc *types.ParsedDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Reg No:   %s\n", doc.RegNo))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Name))
	if doc.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.Email))
	}
	sb.WriteString(fmt.Sprintf("Semester: %s\n", doc.Semester))
	sb.WriteString(fmt.Sprintf("CGPA:     %.2f\n", doc.CGPA))
	sb.WriteString("\n")

	if len(doc.Marks) > 0 {
		sb.WriteString(fmt.Sprintf("Courses (%d):\n", len(doc.Marks)))
		count := min(len(doc.Marks), maxItemsToShow)
		for i := 0; i < count; i++ {
			course := doc.Marks[i]
			sb.WriteString(fmt.Sprintf("  • %s [%s] %.1f/%.0f\n",
				course.CourseName, course.CourseCode, course.TotalScored, course.TotalWeight))
		}
		if len(doc.Marks) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Marks)-maxItemsToShow))
		}
	}
	sb.WriteString(fmt.Sprintf("Attendance rows: %d\n", len(doc.Attendance)))

	p.printBox("Parsed Transcript", strings.TrimRight(sb.String(), "\n"))
}

// PrintAttendanceReport outputs the attendance optimizer results.
func (p *Printer) PrintAttendanceReport(analyses []features.SkipAnalysis) {
	var sb strings.Builder
	for _, a := range analyses {
		sb.WriteString(fmt.Sprintf("%-8s %5.1f%%  %-8s buffer %d", a.CourseCode, a.CurrentPercentage, a.Status, a.BufferClasses))
		if a.RecoveryNeeded > 0 {
			sb.WriteString(fmt.Sprintf("  recover %d", a.RecoveryNeeded))
		}
		sb.WriteString("\n")
	}
	if len(analyses) == 0 {
		sb.WriteString("No attendance records.\n")
	}
	p.printBox("Attendance Planner", strings.TrimRight(sb.String(), "\n"))
}

// PrintPredictions outputs grade scenarios per course.
func (p *Printer) PrintPredictions(predictions []features.Prediction) {
	var sb strings.Builder
	for _, pred := range predictions {
		sb.WriteString(fmt.Sprintf("%s [%s]\n", pred.CourseName, pred.CourseCode))
		sb.WriteString(fmt.Sprintf("  internal %.1f/%.0f\n", pred.Internal.Total, pred.Internal.Max))
		sb.WriteString(fmt.Sprintf("  best %s (%.1f)  likely %s (%.1f)  worst %s (%.1f)\n",
			pred.Optimistic.Grade, pred.Optimistic.Total,
			pred.Realistic.Grade, pred.Realistic.Total,
			pred.Pessimistic.Grade, pred.Pessimistic.Total))
	}
	if len(predictions) == 0 {
		sb.WriteString("No courses with graded components.\n")
	}
	p.printBox("Grade Predictions", strings.TrimRight(sb.String(), "\n"))
}

// PrintWhatIf outputs a CGPA what-if result.
func (p *Printer) PrintWhatIf(result features.WhatIfResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Current CGPA:  %.2f\n", result.CurrentCGPA))
	sb.WriteString(fmt.Sprintf("Target CGPA:   %.2f\n", result.TargetCGPA))
	sb.WriteString(fmt.Sprintf("Required GPA:  %.2f over %d credits\n", result.RequiredGPA, result.CreditsNeeded))
	sb.WriteString(result.Recommendation)
	p.printBox("CGPA What-If", sb.String())
}

// PrintTrends outputs per-course component trends.
func (p *Printer) PrintTrends(trends []features.CourseTrend) {
	var sb strings.Builder
	for _, tr := range trends {
		sb.WriteString(fmt.Sprintf("%-8s %-10s next ~%.1f%% (%d samples)\n", tr.CourseCode, tr.Trend, tr.PredictedNext, tr.Samples))
	}
	if len(trends) == 0 {
		sb.WriteString("Not enough component data for trends.\n")
	}
	p.printBox("Performance Trends", strings.TrimRight(sb.String(), "\n"))
}

// PrintWarnings lists parser warnings, if any.
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	p.printBox("Parser Warnings", strings.TrimRight(strings.Join(warnings, "\n"), "\n"))
}
