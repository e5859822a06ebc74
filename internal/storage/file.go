package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/statside/statside/internal/extract"
)

// entry builds the exported object for one record.
func entry(source string, rec *extract.Record) map[string]any {
	out := make(map[string]any, len(rec.Fields)+2)
	out["_source_url"] = source
	out["_fetched_at"] = time.Now().UTC().Format(time.RFC3339)
	for k, v := range rec.Fields {
		out[k] = v
	}
	return out
}

// --- JSON Storage ---

// JSONStorage writes records as a JSON array to a file.
type JSONStorage struct {
	path    string
	entries []map[string]any
	mu      sync.Mutex
	logger  *slog.Logger
}

// NewJSONStorage creates a new JSON file storage.
func NewJSONStorage(outputPath string, logger *slog.Logger) (*JSONStorage, error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &JSONStorage{
		path:   outputPath,
		logger: logger.With("component", "json_storage"),
	}, nil
}

func (s *JSONStorage) Name() string { return "json" }

func (s *JSONStorage) Store(source string, records []*extract.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		s.entries = append(s.entries, entry(source, rec))
	}
	s.logger.Debug("records buffered", "count", len(records), "total", len(s.entries))
	return nil
}

func (s *JSONStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.entries); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	s.logger.Info("JSON written", "path", s.path, "records", len(s.entries))
	return nil
}

// --- JSONL Storage ---

// JSONLStorage writes records as newline-delimited JSON (one object per line).
type JSONLStorage struct {
	path   string
	file   *os.File
	enc    *json.Encoder
	mu     sync.Mutex
	count  int
	logger *slog.Logger
}

// NewJSONLStorage creates a new JSONL file storage (streaming writes).
func NewJSONLStorage(outputPath string, logger *slog.Logger) (*JSONLStorage, error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	return &JSONLStorage{
		path:   outputPath,
		file:   f,
		enc:    json.NewEncoder(f),
		logger: logger.With("component", "jsonl_storage"),
	}, nil
}

func (s *JSONLStorage) Name() string { return "jsonl" }

func (s *JSONLStorage) Store(source string, records []*extract.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		if err := s.enc.Encode(entry(source, rec)); err != nil {
			return fmt.Errorf("encode JSONL: %w", err)
		}
		s.count++
	}
	return nil
}

func (s *JSONLStorage) Close() error {
	s.logger.Info("JSONL written", "path", s.path, "records", s.count)
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// --- CSV Storage ---

// CSVStorage writes records as CSV rows. Headers are detected from the
// first record stored.
type CSVStorage struct {
	path    string
	file    *os.File
	writer  *csv.Writer
	headers []string
	mu      sync.Mutex
	count   int
	logger  *slog.Logger
}

// NewCSVStorage creates a new CSV file storage.
func NewCSVStorage(outputPath string, logger *slog.Logger) (*CSVStorage, error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	return &CSVStorage{
		path:   outputPath,
		file:   f,
		writer: csv.NewWriter(f),
		logger: logger.With("component", "csv_storage"),
	}, nil
}

func (s *CSVStorage) Name() string { return "csv" }

func (s *CSVStorage) Store(source string, records []*extract.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		flat := flatten(source, rec)

		if s.headers == nil {
			s.headers = make([]string, 0, len(flat))
			for k := range flat {
				s.headers = append(s.headers, k)
			}
			sort.Strings(s.headers)

			if err := s.writer.Write(s.headers); err != nil {
				return fmt.Errorf("write CSV header: %w", err)
			}
		}

		row := make([]string, len(s.headers))
		for i, h := range s.headers {
			row[i] = flat[h]
		}
		if err := s.writer.Write(row); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
		s.count++
	}

	s.writer.Flush()
	return s.writer.Error()
}

func (s *CSVStorage) Close() error {
	s.logger.Info("CSV written", "path", s.path, "records", s.count)
	if s.writer != nil {
		s.writer.Flush()
	}
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// flatten renders every field to a string for CSV export.
func flatten(source string, rec *extract.Record) map[string]string {
	flat := make(map[string]string, len(rec.Fields)+1)
	flat["_source_url"] = source
	for k, v := range rec.Fields {
		switch val := v.(type) {
		case string:
			flat[k] = val
		case int:
			flat[k] = strconv.Itoa(val)
		default:
			b, _ := json.Marshal(val)
			flat[k] = string(b)
		}
	}
	return flat
}

// NewFileStorage creates the appropriate file-based storage by type.
func NewFileStorage(storageType, outputDir string, logger *slog.Logger) (Storage, error) {
	switch storageType {
	case "json":
		return NewJSONStorage(filepath.Join(outputDir, "results.json"), logger)
	case "jsonl":
		return NewJSONLStorage(filepath.Join(outputDir, "results.jsonl"), logger)
	case "csv":
		return NewCSVStorage(filepath.Join(outputDir, "results.csv"), logger)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storageType)
	}
}
