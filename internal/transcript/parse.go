package transcript

import (
	"fmt"
	"time"

	"github.com/arvind/vtop-agent/internal/coursemap"
	"github.com/arvind/vtop-agent/internal/types"
)

// Parser turns one raw transcript into one ParsedDocument. The zero value is
// usable; a nil Parser method receiver is not. Parsing is pure and performs
// no I/O, so one Parser may be used from multiple goroutines with distinct
// inputs.
type Parser struct {
	// Codes overrides the embedded course-code table.
	Codes *coursemap.Table
	// ExamDate enables synthesis of one final-exam entry per parsed course.
	// Left empty, the exams list stays empty.
	ExamDate string
	// ExamTime accompanies ExamDate; defaults to DefaultExamTime.
	ExamTime string
	// Now supplies the generation timestamp; defaults to time.Now. Parsing
	// the same input with a fixed Now is fully deterministic.
	Now func() time.Time
	// OnWarning receives advisory notes about degraded data, currently
	// course names missing from the code table. Warnings never alter the
	// document.
	OnWarning func(msg string)
}

// New returns a Parser with all defaults.
func New() *Parser {
	return &Parser{}
}

func (p *Parser) codes() *coursemap.Table {
	if p.Codes != nil {
		return p.Codes
	}
	return coursemap.Default()
}

func (p *Parser) warnf(format string, args ...any) {
	if p.OnWarning != nil {
		p.OnWarning(fmt.Sprintf(format, args...))
	}
}

func (p *Parser) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// fragment accumulates the partial outputs of the per-section parsers before
// the normalizer assembles them.
type fragment struct {
	profile    *types.Profile
	courses    []types.CourseRecord
	attendance []types.AttendanceRecord
}

// parseSection dispatches one section to its registered sub-parser. An
// unregistered kind is a programming-contract violation and is the only
// error the parsing layer can produce.
func (p *Parser) parseSection(sec Section, frag *fragment) error {
	switch sec.Kind {
	case SectionProfile:
		prof := p.parseProfile(sec)
		if frag.profile == nil {
			frag.profile = &prof
		}
	case SectionMarks:
		frag.courses = append(frag.courses, p.parseMarks(sec)...)
	case SectionAttendance:
		frag.attendance = append(frag.attendance, p.parseAttendance(sec)...)
	default:
		return &UnsupportedSectionError{Kind: sec.Kind}
	}
	return nil
}

// Parse tokenizes the whole transcript, runs every recognized section
// through its sub-parser and assembles the final document. Malformed data
// degrades to defaults; Parse only fails on an internal contract violation.
func (p *Parser) Parse(raw string) (*types.ParsedDocument, error) {
	lines := Tokenize(raw)
	frag := &fragment{}

	for _, sec := range Split(lines) {
		if err := p.parseSection(sec, frag); err != nil {
			return nil, err
		}
	}

	if frag.profile == nil {
		prof := types.NewProfile()
		frag.profile = &prof
	}
	// The CGPA banner can sit outside any recognized section; sweep the
	// whole line stream for fields the profile block did not carry.
	sweep := map[string]bool{}
	if frag.profile.CGPA == 0 {
		sweep["cgpa"] = true
	}
	if frag.profile.CreditsCompleted == 0 {
		sweep["credits_completed"] = true
	}
	if len(sweep) > 0 {
		applyProfileGrammar(frag.profile, lines, sweep)
	}

	return p.assemble(frag), nil
}

// Parse runs a default Parser over the transcript.
func Parse(raw string) (*types.ParsedDocument, error) {
	return New().Parse(raw)
}
