// Package fetch defines the narrow boundary through which raw transcripts
// reach the parser. The parser itself never calls a Source; the CLI wires
// the two together. Caching, subprocess management and credential handling
// all live on the far side of this interface.
package fetch

import (
	"context"
	"fmt"
	"os"
)

// Source supplies one decoded transcript blob.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// FileSource reads a transcript previously exported to disk by the VTOP CLI.
type FileSource struct {
	Path string
}

// Fetch reads the whole file as UTF-8 text.
func (s FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript %s: %w", s.Path, err)
	}
	return string(data), nil
}
