package store

// Store defines the interface for solve record persistence operations.
// Implementations must be thread-safe and handle concurrent access gracefully.
//
// Error handling conventions:
//   - Return nil error on success
//   - Return ErrNotFound if a record doesn't exist (for Load/Delete)
//   - Return descriptive errors for I/O, serialization, or validation failures
//   - Wrap underlying errors with context using fmt.Errorf("context: %w", err)
type Store interface {
	// SaveRecord atomically saves a solve record under the given ID.
	// If a record already exists for this ID, it is overwritten.
	// The implementation should use atomic write strategies (e.g., temp file + rename)
	// to prevent corruption in case of failures.
	SaveRecord(id string, record *Record) error

	// LoadRecord retrieves the record with the given ID.
	// Returns ErrNotFound if no record exists for this ID.
	// Returns an error if the record exists but cannot be read or deserialized.
	LoadRecord(id string) (*Record, error)

	// ListRecords returns metadata for all available records.
	// The returned slice may be empty if no records exist.
	// Returns an error if the record directory cannot be scanned.
	ListRecords() ([]RecordInfo, error)

	// DeleteRecord removes the record and all associated artifacts
	// for the given ID. This includes:
	//   - record.json
	//   - trace.jsonl
	//   - plot.png
	//
	// Returns ErrNotFound if no record exists for this ID.
	DeleteRecord(id string) error
}

// ErrNotFound is returned when a requested record does not exist.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents a missing record error.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return "record not found: " + e.ID
	}
	return "record not found"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}
