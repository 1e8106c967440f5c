package archive_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saulo-duarte/qa-agents/internal/archive"
	"github.com/saulo-duarte/qa-agents/internal/session"
)

func TestFileStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := archive.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	resp := &session.SessionResponse{
		Subject:  "Quantum Mechanics: Basics!",
		NumPairs: 1,
		Pairs:    []session.QAPair{{ID: 1, Question: "q?", Answer: "a."}},
	}

	path, err := store.Save(context.Background(), resp)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Run("FilenameSanitized", func(t *testing.T) {
		name := filepath.Base(path)
		if !strings.HasPrefix(name, "qa_session_Quantum_Mechanics__Basics__") {
			t.Errorf("unexpected filename: %s", name)
		}
		if !strings.HasSuffix(name, ".json") {
			t.Errorf("missing .json suffix: %s", name)
		}
	})

	t.Run("ContentRoundTrips", func(t *testing.T) {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading archived file: %v", err)
		}

		var decoded session.SessionResponse
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("archived file is not valid JSON: %v", err)
		}
		if decoded.Subject != resp.Subject || decoded.NumPairs != 1 || len(decoded.Pairs) != 1 {
			t.Errorf("archived content differs: %+v", decoded)
		}
	})
}

func TestNewFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "qa_sessions")

	if _, err := archive.NewFileStore(dir); err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("output directory was not created: %v", err)
	}
}
