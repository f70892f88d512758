// Package types provides type definitions for the structured data extracted
// from VTOP CLI transcripts and consumed by every downstream feature.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Named defaults for profile fields the transcript may omit.
const (
	DefaultRegNo = "UNKNOWN"
	DefaultName  = "Student"
)

// Profile holds the identity fields scraped from the profile section.
// Every field is optional in the source; missing fields keep the defaults
// applied by NewProfile.
type Profile struct {
	RegNo            string  `json:"reg_no"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Program          string  `json:"program"`
	School           string  `json:"school"`
	CGPA             float64 `json:"cgpa"`
	CreditsCompleted float64 `json:"credits_completed"`
}

// NewProfile returns a Profile with all documented defaults filled in.
func NewProfile() Profile {
	return Profile{
		RegNo: DefaultRegNo,
		Name:  DefaultName,
	}
}

// ParsedDocument is the sole artifact handed across the parser boundary.
// Course and attendance order matches source appearance order; downstream
// consumers rely on it as a positional fallback when pairing marks with
// attendance.
type ParsedDocument struct {
	Profile
	Semester    string             `json:"semester"`
	Marks       []CourseRecord     `json:"marks"`
	Attendance  []AttendanceRecord `json:"attendance"`
	Exams       []ExamRecord       `json:"exams"`
	GeneratedAt string             `json:"generated_at"`
}
