// Package storage persists completed interview records as JSON files, one
// file per interview, under a dedicated output directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/interview"
)

const defaultDir = "candidate_data"

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Store writes and reads candidate records under a single directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir, falling back to the default output
// directory when dir is empty. The directory is created lazily on first save.
func New(dir string) *Store {
	if strings.TrimSpace(dir) == "" {
		dir = defaultDir
	}
	return &Store{dir: dir}
}

// Dir returns the output directory.
func (s *Store) Dir() string { return s.dir }

// SanitizeName maps a candidate name to a filename-safe token. Spaces become
// underscores, anything outside [A-Za-z0-9_-] is dropped, and an empty
// result falls back to "unknown".
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	if name == "" {
		return "unknown"
	}
	return name
}

// Save writes the record as indented JSON named after the sanitized
// candidate name and the completion timestamp. It returns the path of the
// written file.
func (s *Store) Save(record *interview.CandidateRecord) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", s.dir, err)
	}

	completed := record.CompletedAt
	if completed.IsZero() {
		completed = time.Now()
	}

	filename := fmt.Sprintf("%s_%s.json", SanitizeName(record.Name), completed.Format("20060102_150405"))
	path := filepath.Join(s.dir, filename)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing candidate record: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing candidate record to %s: %w", path, err)
	}

	return path, nil
}

// Load reads a previously saved record by filename within the output
// directory.
func (s *Store) Load(filename string) (*interview.CandidateRecord, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading candidate record %s: %w", path, err)
	}

	var record interview.CandidateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parsing candidate record %s: %w", path, err)
	}

	return &record, nil
}

// List returns the filenames of all saved records, newest first. A missing
// output directory yields an empty list.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading output directory %s: %w", s.dir, err)
	}

	type dated struct {
		name    string
		modTime time.Time
	}

	records := make([]dated, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("reading entry %s: %w", entry.Name(), err)
		}
		records = append(records, dated{name: entry.Name(), modTime: info.ModTime()})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].modTime.After(records[j].modTime)
	})

	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.name)
	}

	return names, nil
}
