// Package corpus provides the poem corpus loaders: the embedded
// poems.json shipped in the binary, and an external JSON file override.
package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/wenxin-labs/shici-cli/internal/core/domain"
	"github.com/wenxin-labs/shici-cli/internal/core/ports/driven"
)

// decode parses a JSON array of poem records, preserving order.
// Anything that is not an array of four-string-field objects is a
// corpus format error.
func decode(data []byte) ([]domain.Poem, error) {
	var poems []domain.Poem
	if err := json.Unmarshal(data, &poems); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorpusFormat, err)
	}
	return poems, nil
}

// Ensure FileLoader implements the interface.
var _ driven.CorpusLoader = (*FileLoader)(nil)

// FileLoader loads the corpus from an external JSON file. Same record
// format as the embedded corpus; no other format is accepted.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the JSON corpus at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load reads and decodes the corpus file.
func (l *FileLoader) Load(_ context.Context) ([]domain.Poem, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", l.path, err)
	}
	return decode(data)
}
