package transcript

import (
	"regexp"
	"strconv"

	"github.com/arvind/vtop-agent/internal/types"
)

// Fixed cell offsets within an attendance table row. Offset 0 is the row
// index column.
const (
	attCellName = iota + 1
	attCellType
	attCellFaculty
	attCellClasses
	attCellPercent
)

const attendanceRowCells = 6

// attendanceHeaderTokens identify the column-header row of the attendance
// table.
var attendanceHeaderTokens = []string{"INDEX", "SUBJECT"}

var (
	classesPattern = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)
	percentPattern = regexp.MustCompile(`(\d+)\s*%`)
)

// parseAttendance extracts one record per table row. Rows whose numeric
// cells are absent or malformed still produce a record with zeroed counts;
// rows are degraded, never dropped, because downstream aggregates count on
// row presence. Course codes come from the name table with the UNK sentinel
// as fallback.
func (p *Parser) parseAttendance(sec Section) []types.AttendanceRecord {
	var records []types.AttendanceRecord

	for _, line := range sec.Lines {
		if line.Kind != KindTableRow || isHeaderRow(line.Text, attendanceHeaderTokens) {
			continue
		}
		cells := line.Cells
		if len(cells) < attendanceRowCells {
			continue
		}

		attended, total := parseClassesCell(cells[attCellClasses])
		percentage := parsePercentCell(cells[attCellPercent])
		if percentage == 0 && total > 0 {
			// Percentage column absent or garbled: derive it from the
			// fraction instead of keeping a misleading zero.
			percentage = int(types.Percentage(float64(attended), float64(total)))
		}

		name := cells[attCellName]
		code, ok := p.codes().Resolve(name)
		if !ok {
			p.warnf("no course code mapping for attendance row %q, using %s", name, types.UnknownCourseCode)
			code = types.UnknownCourseCode
		}

		records = append(records, types.AttendanceRecord{
			CourseCode:           code,
			CourseName:           name,
			CourseType:           cells[attCellType],
			Faculty:              cells[attCellFaculty],
			Attended:             attended,
			TotalClasses:         total,
			AttendancePercentage: percentage,
		})
	}
	return records
}

// parseClassesCell reads an "attended/total" pair, degrading to zeros when
// the pattern is absent.
func parseClassesCell(cell string) (attended, total int) {
	m := classesPattern.FindStringSubmatch(cell)
	if m == nil {
		return 0, 0
	}
	attended, _ = strconv.Atoi(m[1])
	total, _ = strconv.Atoi(m[2])
	return attended, total
}

// parsePercentCell reads an "NN%" value, degrading to zero.
func parsePercentCell(cell string) int {
	m := percentPattern.FindStringSubmatch(cell)
	if m == nil {
		return 0
	}
	v, _ := strconv.Atoi(m[1])
	return v
}
