package coursemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ResolvesKnownNames(t *testing.T) {
	table := Default()

	tests := []struct {
		name string
		code string
	}{
		{"Cloud Architecture Design", "BCSE352L"},
		{"Artificial Intelligence", "BCSE307L"},
		{"Database Systems Lab", "BCSE203P"},
	}
	for _, tt := range tests {
		code, ok := table.Resolve(tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.code, code)
	}
}

func TestResolve_TrimsWhitespace(t *testing.T) {
	code, ok := Default().Resolve("  Artificial Intelligence  ")
	require.True(t, ok)
	assert.Equal(t, "BCSE307L", code)
}

func TestResolve_UnknownName(t *testing.T) {
	_, ok := Default().Resolve("Quantum Sensing Lab")
	assert.False(t, ok)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load([]byte("not: [valid: yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "course code map")
}

func TestLoad_CustomTable(t *testing.T) {
	table, err := Load([]byte("Special Topics: XCSE999L\n"))
	require.NoError(t, err)

	code, ok := table.Resolve("Special Topics")
	require.True(t, ok)
	assert.Equal(t, "XCSE999L", code)
}

func TestInitialism(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Quantum Sensing Lab", "QSL"},
		{"Advanced Quantum Sensing Laboratory Techniques", "AQS"},
		{"machine learning", "ML"},
		{"Thermodynamics", "THE"},
		{"AI", "AI"},
		{"", Unknown},
		{"   ", Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Initialism(tt.name), tt.name)
	}
}
