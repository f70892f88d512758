package transcript

import (
	"strconv"
	"strings"

	"github.com/arvind/vtop-agent/internal/coursemap"
	"github.com/arvind/vtop-agent/internal/types"
)

// marksRowCells is the minimum cell count for a component row. Rows with
// fewer cells are skipped; extra cells beyond the fixed offsets are ignored.
const marksRowCells = 6

// Fixed cell offsets within a marks table row.
const (
	cellTitle = iota
	cellMaxMarks
	cellWeightage
	cellStatus
	cellScoredMark
	cellWeightageMark
)

// marksHeaderTokens identify the repeated column-header rows inside a marks
// table, which must not be parsed as components.
var marksHeaderTokens = []string{"TITLE", "MAX MARKS"}

// parseNumber converts a cell to a float, degrading to 0 on anything that is
// not a well-formed number. Malformed cells never abort a row.
func parseNumber(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0
	}
	return v
}

func isHeaderRow(text string, tokens []string) bool {
	upper := strings.ToUpper(text)
	for _, tok := range tokens {
		if strings.Contains(upper, tok) {
			return true
		}
	}
	return false
}

// parseMarks walks one marks section with a single current-course
// accumulator. A course-title line opens a course; component rows accumulate
// under it; the green total line terminates and flushes it. Flushing an
// accumulator with no components is a no-op, so back-to-back title lines
// emit nothing for the first title.
func (p *Parser) parseMarks(sec Section) []types.CourseRecord {
	var courses []types.CourseRecord
	var current *types.CourseRecord

	flush := func() {
		if current != nil && len(current.Components) > 0 {
			courses = append(courses, *current)
		}
		current = nil
	}

	for _, line := range sec.Lines {
		switch line.Kind {
		case KindCourseTitle:
			flush()
			name := line.Text
			if name == "" {
				continue
			}
			current = &types.CourseRecord{
				CourseName:  name,
				CourseCode:  p.resolveCourseCode(name),
				Semester:    sec.Semester,
				Components:  nil,
				TotalScored: 0,
				TotalWeight: types.DefaultTotalWeight,
			}

		case KindTotal:
			if current == nil {
				continue
			}
			if m := totalPattern.FindStringSubmatch(StripEscByte(line.Raw)); m != nil {
				current.TotalScored = parseNumber(m[1])
				current.TotalWeight = parseNumber(m[2])
			}
			flush()

		case KindTableRow:
			if current == nil || isHeaderRow(line.Text, marksHeaderTokens) {
				continue
			}
			cells := line.Cells
			if len(cells) < marksRowCells {
				continue
			}
			current.Components = append(current.Components, types.ComponentRecord{
				Title:         cells[cellTitle],
				MaxMarks:      parseNumber(cells[cellMaxMarks]),
				Weightage:     parseNumber(cells[cellWeightage]),
				Status:        types.ParseStatus(cells[cellStatus]),
				ScoredMark:    parseNumber(cells[cellScoredMark]),
				WeightageMark: parseNumber(cells[cellWeightageMark]),
			})
		}
	}

	flush()
	return courses
}

// resolveCourseCode looks the display name up in the static table and falls
// back to a generated initialism. Unmapped names are reported through the
// warning hook so a stale table is visible instead of silently mis-mapping.
func (p *Parser) resolveCourseCode(name string) string {
	if code, ok := p.codes().Resolve(name); ok {
		return code
	}
	p.warnf("no course code mapping for %q, using initialism", name)
	return coursemap.Initialism(name)
}
