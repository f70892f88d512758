package types

import "strings"

// ComponentStatus reflects whether a graded component has been evaluated.
type ComponentStatus string

const (
	StatusCompleted ComponentStatus = "Completed"
	StatusPending   ComponentStatus = "Pending"
	StatusUnknown   ComponentStatus = "Unknown"
)

// ParseStatus maps a raw status cell onto a ComponentStatus. Anything that
// is not recognizably completed or pending degrades to StatusUnknown.
func ParseStatus(cell string) ComponentStatus {
	switch {
	case strings.Contains(strings.ToLower(cell), "complet"):
		return StatusCompleted
	case strings.Contains(strings.ToLower(cell), "pend"):
		return StatusPending
	default:
		return StatusUnknown
	}
}

// ComponentRecord is one graded component (quiz, CAT, assignment) within a
// course. Numeric fields are zero when the source cell was not a well-formed
// number; the transcript format carries no schema guarantee.
type ComponentRecord struct {
	Title         string          `json:"title"`
	MaxMarks      float64         `json:"max_marks"`
	Weightage     float64         `json:"weightage"`
	Status        ComponentStatus `json:"status"`
	ScoredMark    float64         `json:"scored_mark"`
	WeightageMark float64         `json:"weightage_mark"`
}

// DefaultTotalWeight is assumed until an explicit total line is observed.
const DefaultTotalWeight = 100

// CourseRecord is one course's mark breakdown for a semester.
// TotalScored stays 0 until the transcript's green total line is seen.
type CourseRecord struct {
	CourseName  string            `json:"course_name"`
	CourseCode  string            `json:"course_code"`
	Semester    int               `json:"semester,omitempty"`
	Components  []ComponentRecord `json:"components"`
	TotalScored float64           `json:"total_scored"`
	TotalWeight float64           `json:"total_weight"`
}

// WeightageSum adds up the weightage marks scored across all components.
func (c CourseRecord) WeightageSum() float64 {
	var sum float64
	for _, comp := range c.Components {
		sum += comp.WeightageMark
	}
	return sum
}

// Percentage computes scored/total*100 guarded against a zero denominator:
// a zero total yields 0, never NaN or Inf.
func Percentage(scored, total float64) float64 {
	if total == 0 {
		return 0
	}
	return scored / total * 100
}
