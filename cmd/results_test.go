package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cwbudde/roots/internal/store"
)

func TestSelectRecordsForDeletion_ByAge(t *testing.T) {
	now := time.Now()
	infos := []store.RecordInfo{
		{ID: "rec1", Timestamp: now.AddDate(0, 0, -10)},
		{ID: "rec2", Timestamp: now.AddDate(0, 0, -5)},
		{ID: "rec3", Timestamp: now.AddDate(0, 0, -1)},
		{ID: "rec4", Timestamp: now.AddDate(0, 0, -30)},
	}

	// Delete records older than 7 days
	toDelete := selectRecordsForDeletion(infos, 0, 7)

	if len(toDelete) != 2 {
		t.Errorf("Expected 2 records to delete, got %d", len(toDelete))
	}

	found10 := false
	found30 := false
	for _, info := range toDelete {
		if info.ID == "rec1" {
			found10 = true
		}
		if info.ID == "rec4" {
			found30 = true
		}
	}

	if !found10 || !found30 {
		t.Error("Expected rec1 and rec4 to be selected for deletion")
	}
}

func TestSelectRecordsForDeletion_ByCount(t *testing.T) {
	now := time.Now()
	infos := []store.RecordInfo{
		{ID: "rec1", Timestamp: now.AddDate(0, 0, -10)},
		{ID: "rec2", Timestamp: now.AddDate(0, 0, -5)},
		{ID: "rec3", Timestamp: now.AddDate(0, 0, -1)},
		{ID: "rec4", Timestamp: now.AddDate(0, 0, -30)},
	}

	// Keep only last 2 records
	toDelete := selectRecordsForDeletion(infos, 2, 0)

	if len(toDelete) != 2 {
		t.Errorf("Expected 2 records to delete, got %d", len(toDelete))
	}

	// Should delete oldest two (rec4 and rec1)
	found30 := false
	found10 := false
	for _, info := range toDelete {
		if info.ID == "rec4" {
			found30 = true
		}
		if info.ID == "rec1" {
			found10 = true
		}
	}

	if !found30 || !found10 {
		t.Error("Expected rec4 and rec1 to be selected for deletion (oldest)")
	}
}

func TestSelectRecordsForDeletion_Combined(t *testing.T) {
	now := time.Now()
	infos := []store.RecordInfo{
		{ID: "rec1", Timestamp: now.AddDate(0, 0, -10)},
		{ID: "rec2", Timestamp: now.AddDate(0, 0, -5)},
		{ID: "rec3", Timestamp: now.AddDate(0, 0, -1)},
		{ID: "rec4", Timestamp: now.AddDate(0, 0, -30)},
		{ID: "rec5", Timestamp: now.AddDate(0, 0, -2)},
	}

	// Delete older than 7 days AND keep only last 3
	toDelete := selectRecordsForDeletion(infos, 3, 7)

	// rec4 and rec1 exceed the age limit and are also the two oldest
	if len(toDelete) < 2 {
		t.Errorf("Expected at least 2 records to delete, got %d", len(toDelete))
	}
}

func TestGetDirSize(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	content := []byte("Hello, World!")
	if err := os.WriteFile(testFile, content, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	size, err := getDirSize(tmpDir)
	if err != nil {
		t.Fatalf("getDirSize failed: %v", err)
	}

	if size < int64(len(content)) {
		t.Errorf("Expected size >= %d, got %d", len(content), size)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
	}

	for _, tt := range tests {
		result := formatBytes(tt.bytes)
		if result != tt.expected {
			t.Errorf("formatBytes(%d) = %s, expected %s", tt.bytes, result, tt.expected)
		}
	}
}

func TestResultsListCommand_NoRecords(t *testing.T) {
	tmpDir := t.TempDir()

	originalDataDir := resultsDataDir
	resultsDataDir = tmpDir
	defer func() { resultsDataDir = originalDataDir }()

	err := runListResults(nil, nil)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestResultsListCommand_WithRecords(t *testing.T) {
	tmpDir := t.TempDir()

	recordStore, err := store.NewFSStore(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	config := store.SolveConfig{
		Kind:         "iterative",
		Coefficients: []float64{1, -1},
		Begin:        0,
		End:          2,
		Eps:          1e-9,
		MaxIter:      100,
		Method:       "brent",
	}
	record := store.NewRecord("test-record-id", config, []float64{1}, nil, 12, 5*time.Millisecond)

	if err := recordStore.SaveRecord("test-record-id", record); err != nil {
		t.Fatalf("Failed to save record: %v", err)
	}

	originalDataDir := resultsDataDir
	resultsDataDir = tmpDir
	defer func() { resultsDataDir = originalDataDir }()

	err = runListResults(nil, nil)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestResultsCleanCommand_NoFlags(t *testing.T) {
	tmpDir := t.TempDir()

	originalDataDir := resultsDataDir
	resultsDataDir = tmpDir
	defer func() { resultsDataDir = originalDataDir }()

	keepLast = 0
	olderThanDays = 0

	err := runCleanResults(nil, nil)
	if err == nil {
		t.Error("Expected error when no flags specified")
	}
}

func TestResultsCleanCommand_WithForce(t *testing.T) {
	tmpDir := t.TempDir()

	recordStore, err := store.NewFSStore(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	config := store.SolveConfig{
		Kind:         "closed-form",
		Coefficients: []float64{1, -3, 2},
	}
	record := store.NewRecord("old-record", config, []float64{1, 2}, nil, 0, time.Millisecond)
	record.Timestamp = time.Now().AddDate(0, 0, -30)

	if err := recordStore.SaveRecord("old-record", record); err != nil {
		t.Fatalf("Failed to save record: %v", err)
	}

	originalDataDir := resultsDataDir
	resultsDataDir = tmpDir
	defer func() { resultsDataDir = originalDataDir }()

	keepLast = 0
	olderThanDays = 7
	forceClean = true

	err = runCleanResults(nil, nil)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	_, err = recordStore.LoadRecord("old-record")
	if err == nil {
		t.Error("Expected record to be deleted")
	}
}
