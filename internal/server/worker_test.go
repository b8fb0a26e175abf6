package server

import (
	"context"
	"math"
	"testing"

	"github.com/cwbudde/roots"
	"github.com/cwbudde/roots/internal/store"
)

func TestRunJob_ClosedForm(t *testing.T) {
	jm := NewJobManager()
	job := jm.CreateJob(SolveConfig{
		Kind:         "closed-form",
		Coefficients: []float64{1, -3, 2}, // (x-1)(x-2)
	})

	err := runJob(context.Background(), jm, nil, "", job.ID)
	if err != nil {
		t.Fatalf("runJob should succeed: %v", err)
	}

	updated, _ := jm.GetJob(job.ID)
	if updated.State != StateCompleted {
		t.Errorf("Job should be completed, got %s", updated.State)
	}
	if len(updated.Roots) != 2 {
		t.Fatalf("Expected 2 roots, got %v", updated.Roots)
	}
	if math.Abs(updated.Roots[0]-1) > 1e-9 || math.Abs(updated.Roots[1]-2) > 1e-9 {
		t.Errorf("Expected roots [1, 2], got %v", updated.Roots)
	}
}

func TestRunJob_ClosedForm_DegreeTooHigh(t *testing.T) {
	jm := NewJobManager()
	job := jm.CreateJob(SolveConfig{
		Kind:         "closed-form",
		Coefficients: []float64{1, 0, 0, 0, 0, -1}, // degree 5
	})

	err := runJob(context.Background(), jm, nil, "", job.ID)
	if err == nil {
		t.Fatal("runJob should fail for degree 5")
	}

	updated, _ := jm.GetJob(job.ID)
	if updated.State != StateFailed {
		t.Errorf("Job should be failed, got %s", updated.State)
	}
	if updated.Error == "" {
		t.Error("Error message should be set")
	}
}

func TestRunJob_Iterative(t *testing.T) {
	baseDir := t.TempDir()
	recordStore, err := store.NewFSStore(baseDir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	jm := NewJobManager()
	job := jm.CreateJob(SolveConfig{
		Kind:         "iterative",
		Coefficients: []float64{1, -1}, // x - 1
		Begin:        0,
		End:          2,
		Eps:          1e-9,
		MaxIter:      100,
		Method:       "bisection",
	})

	err = runJob(context.Background(), jm, recordStore, baseDir, job.ID)
	if err != nil {
		t.Fatalf("runJob should succeed: %v", err)
	}

	updated, _ := jm.GetJob(job.ID)
	if updated.State != StateCompleted {
		t.Errorf("Job should be completed, got %s", updated.State)
	}
	if len(updated.Roots) != 1 || math.Abs(updated.Roots[0]-1) > 1e-6 {
		t.Errorf("Expected root near 1, got %v", updated.Roots)
	}
	if updated.Iterations == 0 {
		t.Error("Iterations should be tracked")
	}

	// Record must be persisted
	record, err := recordStore.LoadRecord(job.ID)
	if err != nil {
		t.Fatalf("Record should be saved: %v", err)
	}
	if record.Err != "" {
		t.Errorf("Record should not carry an error, got %q", record.Err)
	}

	// And the iteration trace written
	reader, err := store.NewTraceReader(baseDir, job.ID)
	if err != nil {
		t.Fatalf("Trace should exist: %v", err)
	}
	defer reader.Close()

	entries, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read trace: %v", err)
	}
	if len(entries) != updated.Iterations {
		t.Errorf("Expected %d trace entries, got %d", updated.Iterations, len(entries))
	}
}

func TestRunJob_Iterative_NoBracket(t *testing.T) {
	baseDir := t.TempDir()
	recordStore, err := store.NewFSStore(baseDir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	jm := NewJobManager()
	job := jm.CreateJob(SolveConfig{
		Kind:         "iterative",
		Coefficients: []float64{1, 0, 1}, // x^2 + 1, no real roots
		Begin:        -1,
		End:          1,
		Eps:          1e-9,
		MaxIter:      100,
		Method:       "bisection",
	})

	err = runJob(context.Background(), jm, recordStore, baseDir, job.ID)
	if err == nil {
		t.Fatal("runJob should fail without a bracket")
	}

	updated, _ := jm.GetJob(job.ID)
	if updated.State != StateFailed {
		t.Errorf("Job should be failed, got %s", updated.State)
	}

	// Failures are persisted too
	record, loadErr := recordStore.LoadRecord(job.ID)
	if loadErr != nil {
		t.Fatalf("Record should be saved even on failure: %v", loadErr)
	}
	if record.Err == "" {
		t.Error("Record should carry the failure message")
	}
}

func TestRunJob_Scan(t *testing.T) {
	jm := NewJobManager()
	job := jm.CreateJob(SolveConfig{
		Kind:         "scan",
		Coefficients: []float64{1, 0, -4}, // x^2 - 4
		Begin:        -10,
		End:          10,
		Eps:          1e-9,
		MaxIter:      100,
		Samples:      97,
	})

	err := runJob(context.Background(), jm, nil, "", job.ID)
	if err != nil {
		t.Fatalf("runJob should succeed: %v", err)
	}

	updated, _ := jm.GetJob(job.ID)
	if updated.State != StateCompleted {
		t.Errorf("Job should be completed, got %s", updated.State)
	}
	if len(updated.Roots) != 2 {
		t.Fatalf("Expected 2 roots, got %v", updated.Roots)
	}
	if math.Abs(updated.Roots[0]+2) > 1e-6 || math.Abs(updated.Roots[1]-2) > 1e-6 {
		t.Errorf("Expected roots [-2, 2], got %v", updated.Roots)
	}
}

func TestRunJob_Cancellation(t *testing.T) {
	jm := NewJobManager()
	job := jm.CreateJob(SolveConfig{
		Kind:         "closed-form",
		Coefficients: []float64{1, -1},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancelled before the worker starts

	err := runJob(ctx, jm, nil, "", job.ID)
	if err == nil {
		t.Error("runJob should return error when cancelled")
	}

	updated, _ := jm.GetJob(job.ID)
	if updated.State != StateCancelled {
		t.Errorf("Job should be cancelled, got %s", updated.State)
	}
}

func TestTrackingConvergency(t *testing.T) {
	var steps int
	tc := &trackingConvergency{
		Convergency: roots.SimpleConvergency[float64]{Eps: 1e-9, MaxIter: 100},
		onStep:      func(iter int, iv roots.Interval[float64]) { steps++ },
	}

	f := func(x float64) float64 { return x - 1 }
	root, err := roots.FindRootBisection(0.0, 2.0, f, tc)
	if err != nil {
		t.Fatalf("FindRootBisection failed: %v", err)
	}
	if math.Abs(root-1) > 1e-6 {
		t.Errorf("root = %v, want ~1", root)
	}
	if tc.iterations == 0 || steps != tc.iterations {
		t.Errorf("tracking mismatch: %d iterations, %d steps", tc.iterations, steps)
	}
}
