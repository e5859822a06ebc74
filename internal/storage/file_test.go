package storage

import (
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/statside/statside/internal/extract"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

func sampleRecords() []*extract.Record {
	a := extract.NewRecord(0)
	a.Set("name", "Faizon Brandon")
	a.Set("ranking", 1)
	a.Set("rating", "0.9987")

	b := extract.NewRecord(1)
	b.Set("name", "Jared Curtis")
	b.Set("ranking", 2)
	b.Set("rating", "0.9981")

	return []*extract.Record{a, b}
}

func TestJSONStorageWritesArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")

	s, err := NewJSONStorage(path, testLogger)
	if err != nil {
		t.Fatalf("new json storage: %v", err)
	}
	if err := s.Store("https://example.com/rankings", sampleRecords()); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var out []map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0]["name"] != "Faizon Brandon" {
		t.Errorf("name = %v", out[0]["name"])
	}
	if out[0]["_source_url"] != "https://example.com/rankings" {
		t.Errorf("_source_url = %v", out[0]["_source_url"])
	}
	if out[0]["_fetched_at"] == "" {
		t.Error("_fetched_at missing")
	}
}

func TestJSONLStorageOneObjectPerLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.jsonl")

	s, err := NewJSONLStorage(path, testLogger)
	if err != nil {
		t.Fatalf("new jsonl storage: %v", err)
	}
	if err := s.Store("https://example.com/rankings", sampleRecords()); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for i, line := range lines {
		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
	}
}

func TestCSVStorageHeadersSortedAndStable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")

	s, err := NewCSVStorage(path, testLogger)
	if err != nil {
		t.Fatalf("new csv storage: %v", err)
	}
	if err := s.Store("https://example.com/rankings", sampleRecords()); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d rows", len(rows))
	}

	header := rows[0]
	for i := 1; i < len(header); i++ {
		if header[i-1] > header[i] {
			t.Fatalf("headers not sorted: %v", header)
		}
	}
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			t.Errorf("row %d has %d columns, header has %d", i, len(row), len(header))
		}
	}
}

func TestNewFileStorageRejectsUnknownType(t *testing.T) {
	if _, err := NewFileStorage("xml", t.TempDir(), testLogger); err == nil {
		t.Fatal("expected error for unknown storage type")
	}
}

func TestNewFileStorageByType(t *testing.T) {
	dir := t.TempDir()
	for _, typ := range []string{"json", "jsonl", "csv"} {
		s, err := NewFileStorage(typ, dir, testLogger)
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}
		if s.Name() != typ {
			t.Errorf("Name() = %q, want %q", s.Name(), typ)
		}
		s.Close()
	}
}
