package types

// ExamRecord is a synthesized final-exam entry derived from the marks list.
// The parser only emits these when the caller supplies an exam date; it
// never invents one.
type ExamRecord struct {
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	ExamType   string `json:"exam_type"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}
