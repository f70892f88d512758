package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind/vtop-agent/internal/types"
)

func profileSection(t *testing.T, rows ...string) Section {
	t.Helper()
	raw := strings.Join(append([]string{"=== PROFILE INFORMATION ==="}, rows...), "\n")
	sections := Split(Tokenize(raw))
	require.Len(t, sections, 1)
	require.Equal(t, SectionProfile, sections[0].Kind)
	return sections[0]
}

func TestParseProfile_LabeledTableCells(t *testing.T) {
	sec := profileSection(t,
		"Registration Number │ 23BCE1234",
		"Name │ ARVIND KUMAR",
		"Email │ arvind.kumar2023@vitstudent.ac.in",
		"Programme │ B.Tech Computer Science",
		"School │ School of Computer Science and Engineering",
		"CGPA: 8.75",
		"Credits Earned │ 85",
	)

	profile := New().parseProfile(sec)
	assert.Equal(t, "23BCE1234", profile.RegNo)
	assert.Equal(t, "ARVIND KUMAR", profile.Name)
	assert.Equal(t, "arvind.kumar2023@vitstudent.ac.in", profile.Email)
	assert.Equal(t, "B.Tech Computer Science", profile.Program)
	assert.Equal(t, "School of Computer Science and Engineering", profile.School)
	assert.Equal(t, 8.75, profile.CGPA)
	assert.Equal(t, 85.0, profile.CreditsCompleted)
}

func TestParseProfile_ColonSeparatedLines(t *testing.T) {
	sec := profileSection(t,
		"Name: ARVIND KUMAR",
		"Programme: B.Tech CSE",
	)

	profile := New().parseProfile(sec)
	assert.Equal(t, "ARVIND KUMAR", profile.Name)
	assert.Equal(t, "B.Tech CSE", profile.Program)
}

func TestParseProfile_FirstMatchWinsPerField(t *testing.T) {
	sec := profileSection(t,
		"Registration Number │ 23BCE1234",
		"Registration Number │ 99XYZ9999",
	)

	profile := New().parseProfile(sec)
	assert.Equal(t, "23BCE1234", profile.RegNo)
}

func TestParseProfile_MissingFieldsKeepDefaults(t *testing.T) {
	sec := profileSection(t,
		"some unrelated banner line",
	)

	profile := New().parseProfile(sec)
	assert.Equal(t, types.DefaultRegNo, profile.RegNo)
	assert.Equal(t, types.DefaultName, profile.Name)
	assert.Empty(t, profile.Email)
	assert.Zero(t, profile.CGPA)
}

func TestParseProfile_RegNoRequiresPattern(t *testing.T) {
	// A labeled line without a well-formed registration number keeps the
	// default instead of capturing garbage.
	sec := profileSection(t,
		"Registration Number │ pending",
	)

	profile := New().parseProfile(sec)
	assert.Equal(t, types.DefaultRegNo, profile.RegNo)
}

func TestApplyProfileGrammar_FieldRestriction(t *testing.T) {
	lines := Tokenize(strings.Join([]string{
		"Name: SOMEONE ELSE",
		"CGPA: 9.10",
	}, "\n"))

	profile := types.NewProfile()
	applyProfileGrammar(&profile, lines, map[string]bool{"cgpa": true})

	assert.Equal(t, 9.10, profile.CGPA)
	assert.Equal(t, types.DefaultName, profile.Name)
}
