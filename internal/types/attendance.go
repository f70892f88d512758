package types

// UnknownCourseCode marks attendance rows whose course name has no entry in
// the course-code table. The sentinel is preserved end to end; consumers
// decide whether to filter on it.
const UnknownCourseCode = "UNK"

// AttendanceRecord is one course's attendance snapshot. Rows with absent or
// malformed counts are kept with zeroed numbers rather than dropped, since
// aggregate statistics depend on row presence.
type AttendanceRecord struct {
	CourseCode           string `json:"course_code"`
	CourseName           string `json:"course_name"`
	CourseType           string `json:"course_type"`
	Faculty              string `json:"faculty"`
	Attended             int    `json:"attended"`
	TotalClasses         int    `json:"total_classes"`
	AttendancePercentage int    `json:"attendance_percentage"`
}
