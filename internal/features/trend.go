package features

import (
	"math"

	"github.com/arvind/vtop-agent/internal/types"
)

// Trend direction labels.
const (
	TrendImproving = "Improving"
	TrendStable    = "Stable"
	TrendDeclining = "Declining"
)

// Slope thresholds separating stable from directional trends: component
// percentages move in whole points, CGPA in hundredths.
const (
	componentSlopeBand = 2.0
	cgpaSlopeBand      = 0.05
)

// LeastSquares fits y = slope*x + intercept over equally weighted points.
// ok is false with fewer than two points or a degenerate x spread.
func LeastSquares(xs, ys []float64) (slope, intercept float64, ok bool) {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0, 0, false
	}

	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}

	denom := float64(n)*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0, false
	}
	slope = (float64(n)*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / float64(n)
	return slope, intercept, true
}

// CourseTrend is the regression summary for one course's component scores.
type CourseTrend struct {
	CourseCode    string  `json:"course_code"`
	CourseName    string  `json:"course_name"`
	Samples       int     `json:"samples"`
	Slope         float64 `json:"slope"`
	Trend         string  `json:"trend"`
	PredictedNext float64 `json:"predicted_next_component"`
}

// ComponentTrends regresses each course's component percentages against
// their appearance order and projects the next component's percentage,
// clamped to [0, 100]. Courses with fewer than two scored components are
// skipped.
func ComponentTrends(doc *types.ParsedDocument) []CourseTrend {
	var trends []CourseTrend
	for _, course := range doc.Marks {
		var xs, ys []float64
		for i, comp := range course.Components {
			if comp.MaxMarks == 0 {
				continue
			}
			xs = append(xs, float64(i))
			ys = append(ys, types.Percentage(comp.ScoredMark, comp.MaxMarks))
		}

		slope, intercept, ok := LeastSquares(xs, ys)
		if !ok {
			continue
		}
		next := clamp(slope*float64(len(course.Components))+intercept, 0, 100)

		trends = append(trends, CourseTrend{
			CourseCode:    course.CourseCode,
			CourseName:    course.CourseName,
			Samples:       len(xs),
			Slope:         round3(slope),
			Trend:         trendLabel(slope, componentSlopeBand),
			PredictedNext: round1(next),
		})
	}
	return trends
}

// CGPATrajectory is the regression summary over a CGPA history.
type CGPATrajectory struct {
	Samples       int     `json:"samples"`
	Slope         float64 `json:"slope"`
	Trend         string  `json:"trend"`
	TrendStrength float64 `json:"trend_strength"`
	PredictedNext float64 `json:"predicted_next"`
}

// CGPATrend regresses a semester-ordered CGPA history and projects the next
// value, clamped to the 10-point scale. ok is false with fewer than two
// points.
func CGPATrend(history []float64) (CGPATrajectory, bool) {
	xs := make([]float64, len(history))
	for i := range history {
		xs[i] = float64(i)
	}
	slope, intercept, ok := LeastSquares(xs, history)
	if !ok {
		return CGPATrajectory{}, false
	}

	next := clamp(slope*float64(len(history))+intercept, 0, maxGPA)
	return CGPATrajectory{
		Samples:       len(history),
		Slope:         round3(slope),
		Trend:         trendLabel(slope, cgpaSlopeBand),
		TrendStrength: round3(math.Abs(slope)),
		PredictedNext: round3(next),
	}, true
}

func trendLabel(slope, band float64) string {
	switch {
	case slope > band:
		return TrendImproving
	case slope < -band:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
