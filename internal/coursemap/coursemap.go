// Package coursemap resolves course display names to registrar course codes.
// The mapping is a hand-curated table; names that drift between semesters
// fall back to a generated initialism, which is not guaranteed unique across
// similarly named courses.
package coursemap

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Unknown is the sentinel code for names with no table entry, used where an
// initialism fallback is not wanted (attendance rows).
const Unknown = "UNK"

//go:embed course_codes.yaml
var embeddedCodes []byte

// Table is a read-only name -> code lookup. Safe for concurrent use.
type Table struct {
	codes map[string]string
}

// Load parses a YAML mapping of course names to codes.
func Load(data []byte) (*Table, error) {
	codes := map[string]string{}
	if err := yaml.Unmarshal(data, &codes); err != nil {
		return nil, fmt.Errorf("failed to parse course code map: %w", err)
	}
	return &Table{codes: codes}, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table embedded in the binary.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(embeddedCodes)
		if err != nil {
			// The embedded file ships with the binary; failing to parse it
			// is a build defect, not a runtime condition.
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Resolve looks up the code for a course display name. ok reports whether
// the table knew the name; callers use it to flag stale mappings.
func (t *Table) Resolve(name string) (code string, ok bool) {
	code, ok = t.codes[strings.TrimSpace(name)]
	return code, ok
}

// Initialism derives a fallback code from a course name: the uppercased
// first letter of each of the first three words, or the first three
// characters when the name is a single word. Empty names yield Unknown.
func Initialism(name string) string {
	words := strings.Fields(name)
	switch {
	case len(words) >= 2:
		var b strings.Builder
		for _, w := range words[:min(3, len(words))] {
			b.WriteString(strings.ToUpper(w[:1]))
		}
		return b.String()
	case len(words) == 1:
		w := words[0]
		return strings.ToUpper(w[:min(3, len(w))])
	default:
		return Unknown
	}
}
