package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"transcript": "transcript.txt",
		"output": "out.json",
		"exam_date": "2026-05-10",
		"min_attendance": 75,
		"target_cgpa": 9.0,
		"remaining_semesters": 2,
		"verbose": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "transcript.txt", cfg.Transcript)
	assert.Equal(t, "2026-05-10", cfg.ExamDate)
	assert.Equal(t, 75.0, cfg.MinAttendance)
	assert.Equal(t, 9.0, cfg.TargetCGPA)
	assert.Equal(t, 2, cfg.RemainingSemesters)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"transcript": `)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config passes", Config{}, false},
		{"valid ranges", Config{MinAttendance: 75, TargetCGPA: 9.5, CreditsPerSemester: 24}, false},
		{"attendance above hundred", Config{MinAttendance: 120}, true},
		{"cgpa above scale", Config{TargetCGPA: 10.5}, true},
		{"negative remaining semesters", Config{RemainingSemesters: -1}, true},
		{"bad exam date", Config{ExamDate: "10-05-2026"}, true},
		{"good exam date", Config{ExamDate: "2026-05-10"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_TranscriptMustExist(t *testing.T) {
	cfg := Config{Transcript: filepath.Join(t.TempDir(), "absent.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transcript file not found")

	path := filepath.Join(t.TempDir(), "transcript.txt")
	require.NoError(t, os.WriteFile(path, []byte("=== PROFILE INFORMATION ==="), 0644))
	cfg.Transcript = path
	assert.NoError(t, cfg.Validate())
}
