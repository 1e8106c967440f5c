package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/saulo-duarte/qa-agents/internal/session"
)

// FileStore persists one JSON file per completed session.
type FileStore struct {
	dir string
}

// NewFileStore creates the output directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the response as indented JSON to a timestamped,
// subject-derived file and returns its path.
func (s *FileStore) Save(_ context.Context, resp *session.SessionResponse) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("qa_session_%s_%s.json", safeSubject(resp.Subject), timestamp)
	path := filepath.Join(s.dir, filename)

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal session response: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write session file: %w", err)
	}

	return path, nil
}

// safeSubject replaces every non-alphanumeric rune with an underscore
// so the subject can be embedded in a file name.
func safeSubject(subject string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, subject)
}
