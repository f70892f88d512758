package transcript

import (
	"fmt"
	"time"

	"github.com/arvind/vtop-agent/internal/types"
)

// DefaultExamTime is used for synthesized exam entries when the caller sets
// an exam date without a time.
const DefaultExamTime = "10:00 AM"

// finalExamType labels synthesized exam entries; FAT is the term-final
// assessment in the source system.
const finalExamType = "FAT"

// assemble merges the section fragments into the final document. Course and
// attendance order is the source appearance order; nothing is inferred
// beyond the documented defaults and the optional exam plan.
func (p *Parser) assemble(frag *fragment) *types.ParsedDocument {
	doc := &types.ParsedDocument{
		Profile:     *frag.profile,
		Semester:    currentSemesterLabel(frag.courses),
		Marks:       frag.courses,
		Attendance:  frag.attendance,
		Exams:       p.examPlan(frag.courses),
		GeneratedAt: p.now().Format(time.RFC3339),
	}
	if doc.Marks == nil {
		doc.Marks = []types.CourseRecord{}
	}
	if doc.Attendance == nil {
		doc.Attendance = []types.AttendanceRecord{}
	}
	if doc.Exams == nil {
		doc.Exams = []types.ExamRecord{}
	}
	return doc
}

// currentSemesterLabel names the latest semester seen in the marks sections.
func currentSemesterLabel(courses []types.CourseRecord) string {
	latest := 0
	for _, c := range courses {
		if c.Semester > latest {
			latest = c.Semester
		}
	}
	if latest == 0 {
		return "Current Semester"
	}
	return fmt.Sprintf("Semester %d", latest)
}

// examPlan synthesizes one final-exam entry per course when an exam date was
// configured.
func (p *Parser) examPlan(courses []types.CourseRecord) []types.ExamRecord {
	if p.ExamDate == "" {
		return nil
	}
	examTime := p.ExamTime
	if examTime == "" {
		examTime = DefaultExamTime
	}
	exams := make([]types.ExamRecord, 0, len(courses))
	for _, c := range courses {
		exams = append(exams, types.ExamRecord{
			CourseCode: c.CourseCode,
			CourseName: c.CourseName,
			ExamType:   finalExamType,
			Date:       p.ExamDate,
			Time:       examTime,
		})
	}
	return exams
}
