package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

// SectionKind identifies what record type a transcript section holds.
type SectionKind int

const (
	// SectionProfile holds the student identity block.
	SectionProfile SectionKind = iota
	// SectionMarks holds one semester's course mark tables.
	SectionMarks
	// SectionAttendance holds one semester's attendance table.
	SectionAttendance
)

func (k SectionKind) String() string {
	switch k {
	case SectionProfile:
		return "profile"
	case SectionMarks:
		return "marks"
	case SectionAttendance:
		return "attendance"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Section is a contiguous run of lines between a start marker and the next
// marker or end of input. The end is exclusive of the next section's marker;
// sections never overlap.
type Section struct {
	Kind     SectionKind
	Semester int
	Lines    []RawLine
}

var (
	marksMarkerPattern      = regexp.MustCompile(`^MARKS SEMESTER (\d+)$`)
	attendanceMarkerPattern = regexp.MustCompile(`^ATTENDANCE SEMESTER (\d+)$`)
)

const profileMarker = "PROFILE INFORMATION"

// sectionKind interprets a marker line's inner name. Markers that name no
// known record type are ignored by Split, which models sections the core
// does not extract (timetable, exam schedule).
func sectionKind(name string) (SectionKind, int, bool) {
	name = strings.TrimSpace(name)
	if name == profileMarker {
		return SectionProfile, 0, true
	}
	if m := marksMarkerPattern.FindStringSubmatch(name); m != nil {
		sem, _ := strconv.Atoi(m[1])
		return SectionMarks, sem, true
	}
	if m := attendanceMarkerPattern.FindStringSubmatch(name); m != nil {
		sem, _ := strconv.Atoi(m[1])
		return SectionAttendance, sem, true
	}
	return 0, 0, false
}

// Split groups classified lines into recognized sections, preserving source
// order. Lines before the first marker and whole unrecognized sections are
// dropped.
func Split(lines []RawLine) []Section {
	var sections []Section
	var current *Section

	for _, line := range lines {
		if line.Kind == KindSectionMarker {
			current = nil
			m := markerPattern.FindStringSubmatch(line.Text)
			if m == nil {
				continue
			}
			kind, sem, ok := sectionKind(m[1])
			if !ok {
				continue
			}
			sections = append(sections, Section{Kind: kind, Semester: sem})
			current = &sections[len(sections)-1]
			continue
		}
		if current != nil {
			current.Lines = append(current.Lines, line)
		}
	}
	return sections
}
