package features

import (
	"math"

	"github.com/arvind/vtop-agent/internal/types"
)

// Assessment structure constants for the source institution: internals are
// graded out of 60, the term-final exam out of 40.
const (
	InternalMax = 60.0
	FinalMax    = 40.0
)

// InternalMarks summarizes a course's internal assessment so far.
type InternalMarks struct {
	Total      float64 `json:"total"`
	Max        float64 `json:"max"`
	Percentage float64 `json:"percentage"`
}

// Scenario is one projected outcome for the term-final exam.
type Scenario struct {
	FinalMarks      float64 `json:"fat_marks"`
	FinalPercentage float64 `json:"fat_percentage"`
	Total           float64 `json:"total"`
	Grade           string  `json:"grade"`
}

// Prediction is the per-course output of the grade predictor.
type Prediction struct {
	CourseCode  string        `json:"course_code"`
	CourseName  string        `json:"course_name"`
	Internal    InternalMarks `json:"internal"`
	Optimistic  Scenario      `json:"optimistic"`
	Realistic   Scenario      `json:"realistic"`
	Pessimistic Scenario      `json:"pessimistic"`
}

// Internal sums the weightage marks scored across components against the
// standard internal maximum.
func Internal(course types.CourseRecord) InternalMarks {
	total := course.WeightageSum()
	return InternalMarks{
		Total:      total,
		Max:        InternalMax,
		Percentage: types.Percentage(total, InternalMax),
	}
}

// MarksToGrade converts a 100-point total to the institutional letter grade.
func MarksToGrade(marks float64) string {
	switch {
	case marks >= 90:
		return "S"
	case marks >= 80:
		return "A"
	case marks >= 70:
		return "B"
	case marks >= 60:
		return "C"
	case marks >= 50:
		return "D"
	default:
		return "F"
	}
}

// scenario builds one outcome from a projected final-exam score.
func scenario(internal InternalMarks, finalMarks float64) Scenario {
	total := internal.Total + finalMarks
	return Scenario{
		FinalMarks:      round1(finalMarks),
		FinalPercentage: round1(types.Percentage(finalMarks, FinalMax)),
		Total:           round1(total),
		Grade:           MarksToGrade(total),
	}
}

// PredictCourse projects optimistic, realistic and pessimistic outcomes by
// extrapolating internal performance onto the final exam: realistic is
// proportional, optimistic 10% better capped at the exam maximum,
// pessimistic 15% worse.
func PredictCourse(course types.CourseRecord) Prediction {
	internal := Internal(course)
	fraction := internal.Percentage / 100

	realistic := fraction * FinalMax
	optimistic := math.Min(FinalMax, realistic*1.1)
	pessimistic := realistic * 0.85

	return Prediction{
		CourseCode:  course.CourseCode,
		CourseName:  course.CourseName,
		Internal:    internal,
		Optimistic:  scenario(internal, optimistic),
		Realistic:   scenario(internal, realistic),
		Pessimistic: scenario(internal, pessimistic),
	}
}

// PredictGrades runs the predictor over every course with at least one
// component, in document order.
func PredictGrades(doc *types.ParsedDocument) []Prediction {
	predictions := make([]Prediction, 0, len(doc.Marks))
	for _, course := range doc.Marks {
		if len(course.Components) == 0 {
			continue
		}
		predictions = append(predictions, PredictCourse(course))
	}
	return predictions
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
