// Package jsonl provides a corpus store backed by a line-delimited
// JSON file, the canonical external format for curated passages.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driven"
	"github.com/vedanta-labs/vichara-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// maxLineBytes bounds a single corpus line. Passages are short; one
// megabyte is far beyond any legitimate record.
const maxLineBytes = 1 << 20

// record is the wire shape of one corpus line. Only passage is
// required; unknown fields are ignored.
type record struct {
	ID      string   `json:"id"`
	Source  string   `json:"source"`
	Theme   []string `json:"theme"`
	Passage string   `json:"passage"`
}

// Store holds the passages parsed from a JSONL corpus file.
// The file is read once at construction; the store is immutable and
// safe for concurrent reads afterwards.
type Store struct {
	path     string
	passages []domain.Passage
	skipped  int
}

// Open reads and parses the corpus file at path. A missing file is a
// fatal configuration error (domain.ErrCorpusMissing); a malformed
// line or a record without a passage body is skipped with a warning
// so one bad record cannot take down the whole corpus.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrCorpusMissing)
		}
		return nil, fmt.Errorf("opening corpus %s: %w", path, err)
	}
	defer f.Close()

	s := &Store{path: path}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			logger.Warn("corpus %s line %d: skipping malformed record: %v", path, lineNo, err)
			s.skipped++
			continue
		}
		if strings.TrimSpace(rec.Passage) == "" {
			logger.Warn("corpus %s line %d: skipping record without passage text", path, lineNo)
			s.skipped++
			continue
		}

		s.passages = append(s.passages, domain.Passage{
			ID:     rec.ID,
			Source: rec.Source,
			Themes: rec.Theme,
			Text:   rec.Passage,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}

	logger.Info("corpus loaded from %s: %d passages, %d skipped", path, len(s.passages), s.skipped)

	return s, nil
}

// All returns every passage in file order.
func (s *Store) All(_ context.Context) ([]domain.Passage, error) {
	out := make([]domain.Passage, len(s.passages))
	copy(out, s.passages)
	return out, nil
}

// Count returns the number of loaded passages.
func (s *Store) Count(_ context.Context) (int, error) {
	return len(s.passages), nil
}

// Skipped returns how many records were rejected during loading.
func (s *Store) Skipped() int {
	return s.skipped
}

// Path returns the corpus file path.
func (s *Store) Path() string {
	return s.path
}
