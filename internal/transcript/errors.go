package transcript

import "fmt"

// UnsupportedSectionError reports a section kind with no registered
// sub-parser. This is a caller contract violation, not a data-quality
// condition: malformed transcript data never produces an error.
type UnsupportedSectionError struct {
	Kind SectionKind
}

func (e *UnsupportedSectionError) Error() string {
	return fmt.Sprintf("no parser registered for section kind %s", e.Kind)
}
