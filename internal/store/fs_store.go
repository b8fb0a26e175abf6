package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FSStore implements the Store interface using filesystem-based persistence.
// Records are stored in a directory structure: <baseDir>/solves/<id>/
//
// Thread-safety: This implementation uses atomic file operations (rename)
// and does not require locks. Multiple goroutines can safely call methods
// concurrently.
type FSStore struct {
	baseDir string // Root directory for all solve data (e.g., "./data")
}

// NewFSStore creates a new filesystem-based store.
// The baseDir will be created if it doesn't exist.
func NewFSStore(baseDir string) (*FSStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &FSStore{
		baseDir: baseDir,
	}, nil
}

// solveDir returns the directory path for a given record ID.
func (fs *FSStore) solveDir(id string) string {
	return filepath.Join(fs.baseDir, "solves", id)
}

// recordPath returns the path to the record.json file for a solve.
func (fs *FSStore) recordPath(id string) string {
	return filepath.Join(fs.solveDir(id), "record.json")
}

// SaveRecord atomically saves a record under the given ID.
// Uses temp file + rename pattern to ensure atomicity.
func (fs *FSStore) SaveRecord(id string, record *Record) error {
	if id == "" {
		return fmt.Errorf("id cannot be empty")
	}
	if record == nil {
		return fmt.Errorf("record cannot be nil")
	}

	solveDir := fs.solveDir(id)
	if err := os.MkdirAll(solveDir, 0755); err != nil {
		return fmt.Errorf("failed to create solve directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	// Write to temporary file first (atomic pattern)
	tempPath := fs.recordPath(id) + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp record file: %w", err)
	}

	// Atomic rename to final location
	finalPath := fs.recordPath(id)
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename record file: %w", err)
	}

	slog.Debug("Record saved", "id", id, "path", finalPath)
	return nil
}

// LoadRecord retrieves the record with the given ID.
func (fs *FSStore) LoadRecord(id string) (*Record, error) {
	if id == "" {
		return nil, fmt.Errorf("id cannot be empty")
	}

	path := fs.recordPath(id)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{ID: id}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat record file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to deserialize record: %w", err)
	}

	slog.Debug("Record loaded", "id", id, "path", path)
	return &record, nil
}

// ListRecords returns metadata for all available records.
func (fs *FSStore) ListRecords() ([]RecordInfo, error) {
	solvesDir := filepath.Join(fs.baseDir, "solves")

	if _, err := os.Stat(solvesDir); os.IsNotExist(err) {
		// No records exist yet, return empty slice
		return []RecordInfo{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat solves directory: %w", err)
	}

	entries, err := os.ReadDir(solvesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read solves directory: %w", err)
	}

	var infos []RecordInfo

	for _, entry := range entries {
		if !entry.IsDir() {
			continue // Skip non-directory entries
		}

		id := entry.Name()
		recordPath := fs.recordPath(id)

		if _, err := os.Stat(recordPath); os.IsNotExist(err) {
			continue // Skip directories without record.json
		}

		record, err := fs.LoadRecord(id)
		if err != nil {
			slog.Warn("Failed to load record for listing", "id", id, "error", err)
			continue // Skip corrupted records
		}

		infos = append(infos, record.ToInfo())
	}

	slog.Debug("Listed records", "count", len(infos))
	return infos, nil
}

// DeleteRecord removes the record and all associated artifacts.
func (fs *FSStore) DeleteRecord(id string) error {
	if id == "" {
		return fmt.Errorf("id cannot be empty")
	}

	solveDir := fs.solveDir(id)

	if _, err := os.Stat(solveDir); os.IsNotExist(err) {
		return &NotFoundError{ID: id}
	} else if err != nil {
		return fmt.Errorf("failed to stat solve directory: %w", err)
	}

	if err := os.RemoveAll(solveDir); err != nil {
		return fmt.Errorf("failed to remove solve directory: %w", err)
	}

	slog.Debug("Record deleted", "id", id, "path", solveDir)
	return nil
}
