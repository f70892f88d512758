package transcript

import (
	"regexp"
	"strings"

	"github.com/arvind/vtop-agent/internal/types"
)

// profileRule is one entry in the profile grammar table: a line selector, an
// extractor and a field assignment. Rules are applied first-match-wins per
// field; later conflicting lines in the same section are ignored.
type profileRule struct {
	field   string
	applies func(line RawLine) bool
	extract func(line RawLine) (string, bool)
	assign  func(p *types.Profile, value string)
}

var (
	regNoPattern   = regexp.MustCompile(`\b\d{2}[A-Z]{3}\d{4}\b`)
	emailPattern   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	cgpaPattern    = regexp.MustCompile(`CGPA[:\s]*([0-9.]+)`)
	creditsPattern = regexp.MustCompile(`([0-9.]+)`)
)

func textContains(substrs ...string) func(RawLine) bool {
	return func(line RawLine) bool {
		for _, s := range substrs {
			if strings.Contains(line.Text, s) {
				return true
			}
		}
		return false
	}
}

func matchPattern(re *regexp.Regexp) func(RawLine) (string, bool) {
	return func(line RawLine) (string, bool) {
		m := re.FindStringSubmatch(line.Text)
		if m == nil {
			return "", false
		}
		// Whole-match patterns have no capture group.
		if len(m) > 1 {
			return m[1], true
		}
		return m[0], true
	}
}

// labelValue extracts the first non-empty cell following the cell that
// carries one of the labels. Non-table lines fall back to a "Label: value"
// split.
func labelValue(labels ...string) func(RawLine) (string, bool) {
	return func(line RawLine) (string, bool) {
		for _, label := range labels {
			for i, cell := range line.Cells {
				if !strings.Contains(cell, label) {
					continue
				}
				for _, next := range line.Cells[i+1:] {
					if next != "" {
						return next, true
					}
				}
			}
			if idx := strings.Index(line.Text, label); idx >= 0 {
				rest := line.Text[idx+len(label):]
				if v := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ":")); v != "" {
					return v, true
				}
			}
		}
		return "", false
	}
}

// profileGrammar is the declarative field table consumed by parseProfile.
// Adding a profile field means adding a row here, nothing else.
var profileGrammar = []profileRule{
	{
		field:   "reg_no",
		applies: textContains("Registration Number", "Reg. No."),
		extract: matchPattern(regNoPattern),
		assign:  func(p *types.Profile, v string) { p.RegNo = v },
	},
	{
		field: "name",
		applies: func(line RawLine) bool {
			return strings.Contains(line.Text, "Name") && !strings.Contains(line.Text, "Programme")
		},
		extract: labelValue("Name"),
		assign:  func(p *types.Profile, v string) { p.Name = v },
	},
	{
		field:   "email",
		applies: textContains("@", "Email"),
		extract: matchPattern(emailPattern),
		assign:  func(p *types.Profile, v string) { p.Email = v },
	},
	{
		field:   "program",
		applies: textContains("Programme", "Program"),
		extract: labelValue("Programme", "Program"),
		assign:  func(p *types.Profile, v string) { p.Program = v },
	},
	{
		field:   "school",
		applies: textContains("School"),
		extract: labelValue("School"),
		assign:  func(p *types.Profile, v string) { p.School = v },
	},
	{
		field:   "cgpa",
		applies: textContains("CGPA"),
		extract: matchPattern(cgpaPattern),
		assign:  func(p *types.Profile, v string) { p.CGPA = parseNumber(v) },
	},
	{
		field:   "credits_completed",
		applies: textContains("Credits Earned", "Credits Completed"),
		extract: matchPattern(creditsPattern),
		assign:  func(p *types.Profile, v string) { p.CreditsCompleted = parseNumber(v) },
	},
}

// parseProfile scans a profile section against the grammar table. Fields the
// section never mentions keep the defaults from types.NewProfile.
func (p *Parser) parseProfile(sec Section) types.Profile {
	profile := types.NewProfile()
	applyProfileGrammar(&profile, sec.Lines, nil)
	return profile
}

// applyProfileGrammar runs each grammar rule over the lines until its field
// is seen once. A non-nil fields set restricts which rules run.
func applyProfileGrammar(profile *types.Profile, lines []RawLine, fields map[string]bool) {
	seen := map[string]bool{}
	for _, line := range lines {
		for _, rule := range profileGrammar {
			if seen[rule.field] || (fields != nil && !fields[rule.field]) {
				continue
			}
			if !rule.applies(line) {
				continue
			}
			if v, ok := rule.extract(line); ok {
				rule.assign(profile, v)
				seen[rule.field] = true
			}
		}
	}
}
