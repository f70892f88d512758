package fetch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	content := "=== PROFILE INFORMATION ===\nName │ ARVIND KUMAR\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	raw, err := FileSource{Path: path}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, content, raw)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "absent.txt")}.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read transcript")
}

func TestFileSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FileSource{Path: "irrelevant"}.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
