// Package features contains the offline consumers of a parsed transcript
// document: attendance planning, grade scenarios, GPA arithmetic and trend
// analysis. Everything here is pure computation over the parsed records.
package features

import (
	"fmt"

	"github.com/arvind/vtop-agent/internal/types"
)

// DefaultMinAttendance is the institutional attendance floor in percent.
const DefaultMinAttendance = 75.0

// AttendanceBand classifies how close a course sits to the attendance floor.
type AttendanceBand string

const (
	BandSafe     AttendanceBand = "SAFE"
	BandWarning  AttendanceBand = "WARNING"
	BandCritical AttendanceBand = "CRITICAL"
)

// SkipAnalysis is the per-course output of the attendance optimizer.
type SkipAnalysis struct {
	CourseCode        string         `json:"course_code"`
	CourseName        string         `json:"course_name"`
	CurrentPercentage float64        `json:"current_percentage"`
	BufferClasses     int            `json:"buffer_classes"`
	RecoveryNeeded    int            `json:"recovery_needed"`
	CanSkip           bool           `json:"can_skip"`
	Status            AttendanceBand `json:"status"`
	Recommendation    string         `json:"recommendation"`
}

// SkipBuffer computes how many upcoming classes can be missed while staying
// at or above minPct, and how many consecutive attendances recover a course
// already below it. minPct must be in (0, 100]. A 100% floor can never be
// recovered once a class has been missed, so recovery stays 0 there; a row
// with no classes yet recovers with a single attendance.
func SkipBuffer(attended, total int, minPct float64) (buffer, recovery int) {
	if minPct <= 0 || minPct > 100 || total < 0 || attended < 0 {
		return 0, 0
	}
	current := types.Percentage(float64(attended), float64(total))

	// Each skipped class raises the denominator only.
	t := total
	for {
		t++
		if types.Percentage(float64(attended), float64(t)) < minPct {
			break
		}
		buffer++
	}

	// (attended+k)/(total+k) approaches 1 from below, so a full-attendance
	// floor is unreachable once attended < total.
	if current < minPct && minPct < 100 {
		a, t := attended, total
		for types.Percentage(float64(a), float64(t)) < minPct {
			a++
			t++
			recovery++
		}
	}
	return buffer, recovery
}

// AnalyzeCourse produces the full skip analysis for one attendance record.
func AnalyzeCourse(rec types.AttendanceRecord, minPct float64) SkipAnalysis {
	buffer, recovery := SkipBuffer(rec.Attended, rec.TotalClasses, minPct)
	current := types.Percentage(float64(rec.Attended), float64(rec.TotalClasses))

	return SkipAnalysis{
		CourseCode:        rec.CourseCode,
		CourseName:        rec.CourseName,
		CurrentPercentage: current,
		BufferClasses:     buffer,
		RecoveryNeeded:    recovery,
		CanSkip:           buffer > 0,
		Status:            attendanceBand(current, minPct),
		Recommendation:    recommendation(current, minPct, buffer),
	}
}

// AnalyzeAttendance runs the optimizer over every attendance row, UNK rows
// included, in document order.
func AnalyzeAttendance(doc *types.ParsedDocument, minPct float64) []SkipAnalysis {
	if minPct == 0 {
		minPct = DefaultMinAttendance
	}
	analyses := make([]SkipAnalysis, 0, len(doc.Attendance))
	for _, rec := range doc.Attendance {
		analyses = append(analyses, AnalyzeCourse(rec, minPct))
	}
	return analyses
}

// attendanceBand: ten points above the floor is safe, at or above the floor
// is a warning, below is critical.
func attendanceBand(current, minPct float64) AttendanceBand {
	switch {
	case current >= minPct+10:
		return BandSafe
	case current >= minPct:
		return BandWarning
	default:
		return BandCritical
	}
}

func recommendation(current, minPct float64, buffer int) string {
	switch {
	case current >= minPct+10:
		return fmt.Sprintf("You're doing great! You can safely skip up to %d classes.", buffer)
	case current >= minPct+5:
		return fmt.Sprintf("Good attendance. You have %d buffer classes.", buffer)
	case current >= minPct:
		return "You're at the minimum. Attend all future classes!"
	default:
		return "CRITICAL! Attend continuously to recover."
	}
}
