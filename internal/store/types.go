package store

import (
	"time"
)

// SolveConfig holds the request that produced a record (persisted copy).
// This avoids import cycles with the server package.
type SolveConfig struct {
	// Kind is the solve strategy: "closed-form", "iterative" or "scan"
	Kind string `json:"kind"`

	// Coefficients of the polynomial, highest degree first. Empty for
	// iterative solves of an opaque function.
	Coefficients []float64 `json:"coefficients,omitempty"`

	// Begin and End bound the search interval (iterative and scan kinds)
	Begin float64 `json:"begin,omitempty"`
	End   float64 `json:"end,omitempty"`

	// Eps is the convergence tolerance for value and interval width
	Eps float64 `json:"eps,omitempty"`

	// MaxIter caps the iteration count
	MaxIter int `json:"maxIter,omitempty"`

	// Method selects the iterative algorithm: bisection, secant, newton,
	// regula-falsi or brent
	Method string `json:"method,omitempty"`

	// Samples is the grid resolution for scan solves
	Samples int `json:"samples,omitempty"`
}

// Record represents a completed (or failed) solve, serialized to JSON
// for persistence.
//
// Only the request and the outcome are saved; the per-iteration interval
// history goes to trace.jsonl next to the record so that listing stays
// cheap even for long runs.
type Record struct {
	// ID is the unique identifier for this solve
	ID string `json:"id"`

	// Config holds the request that was solved
	Config SolveConfig `json:"config"`

	// Roots are the roots found, in ascending order. Empty when the solve
	// failed or the polynomial has no real roots.
	Roots []float64 `json:"roots"`

	// Err is the failure message, empty on success
	Err string `json:"err,omitempty"`

	// Iterations is the number of iterations the search performed.
	// Zero for closed-form solves.
	Iterations int `json:"iterations"`

	// Elapsed is the wall-clock solve duration
	Elapsed time.Duration `json:"elapsed"`

	// Timestamp records when this record was created
	Timestamp time.Time `json:"timestamp"`
}

// RecordInfo contains metadata about a record without the full root data.
// Used for listing records efficiently.
type RecordInfo struct {
	// ID is the unique identifier for this record
	ID string `json:"id"`

	// Kind is the solve strategy
	Kind string `json:"kind"`

	// Method is the iterative algorithm, empty for closed-form solves
	Method string `json:"method,omitempty"`

	// NumRoots is the number of roots found
	NumRoots int `json:"numRoots"`

	// Failed reports whether the solve ended with an error
	Failed bool `json:"failed"`

	// Timestamp records when this record was created
	Timestamp time.Time `json:"timestamp"`
}

// NewRecord creates a record from a finished solve.
func NewRecord(id string, config SolveConfig, roots []float64, solveErr error, iterations int, elapsed time.Duration) *Record {
	r := &Record{
		ID:         id,
		Config:     config,
		Roots:      roots,
		Iterations: iterations,
		Elapsed:    elapsed,
		Timestamp:  time.Now(),
	}
	if solveErr != nil {
		r.Err = solveErr.Error()
	}
	return r
}

// ToInfo converts a full Record to RecordInfo (metadata only).
func (r *Record) ToInfo() RecordInfo {
	return RecordInfo{
		ID:        r.ID,
		Kind:      r.Config.Kind,
		Method:    r.Config.Method,
		NumRoots:  len(r.Roots),
		Failed:    r.Err != "",
		Timestamp: r.Timestamp,
	}
}

// Validate checks if the record has valid data.
// Returns an error if any required field is missing or invalid.
func (r *Record) Validate() error {
	if r.ID == "" {
		return &ValidationError{Field: "ID", Reason: "cannot be empty"}
	}
	if r.Timestamp.IsZero() {
		return &ValidationError{Field: "Timestamp", Reason: "cannot be zero"}
	}
	switch r.Config.Kind {
	case "closed-form":
		if len(r.Config.Coefficients) == 0 {
			return &ValidationError{Field: "Config.Coefficients", Reason: "cannot be empty"}
		}
	case "iterative":
		if r.Config.Begin >= r.Config.End {
			return &ValidationError{Field: "Config.Begin", Reason: "must be less than Config.End"}
		}
		if r.Config.Eps <= 0 {
			return &ValidationError{Field: "Config.Eps", Reason: "must be positive"}
		}
		if r.Config.MaxIter <= 0 {
			return &ValidationError{Field: "Config.MaxIter", Reason: "must be positive"}
		}
	case "scan":
		if r.Config.Begin >= r.Config.End {
			return &ValidationError{Field: "Config.Begin", Reason: "must be less than Config.End"}
		}
		if r.Config.Samples <= 0 {
			return &ValidationError{Field: "Config.Samples", Reason: "must be positive"}
		}
	case "":
		return &ValidationError{Field: "Config.Kind", Reason: "cannot be empty"}
	default:
		return &ValidationError{Field: "Config.Kind", Reason: "unknown kind " + r.Config.Kind}
	}
	if r.Iterations < 0 {
		return &ValidationError{Field: "Iterations", Reason: "cannot be negative"}
	}
	if r.Elapsed < 0 {
		return &ValidationError{Field: "Elapsed", Reason: "cannot be negative"}
	}
	return nil
}

// ValidationError represents a record validation error.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + " " + e.Reason
}
