package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cwbudde/roots"
	"github.com/cwbudde/roots/internal/opt"
	"github.com/cwbudde/roots/internal/store"
)

// trackingConvergency wraps a Convergency policy and reports every interval
// it is asked to judge. All finders consult IsConverged once per iteration,
// so the hook doubles as an iteration counter.
type trackingConvergency struct {
	roots.Convergency[float64]
	iterations int
	onStep     func(iter int, iv roots.Interval[float64])
}

func (tc *trackingConvergency) IsConverged(iv roots.Interval[float64]) bool {
	tc.iterations++
	if tc.onStep != nil {
		tc.onStep(tc.iterations, iv)
	}
	return tc.Convergency.IsConverged(iv)
}

// runJob executes a solve job in the background.
// If recordStore is not nil, the finished job is persisted as a record;
// iterative solves additionally get a per-iteration trace.jsonl.
func runJob(ctx context.Context, jm *JobManager, recordStore store.Store, baseDir, jobID string) error {
	job, exists := jm.GetJob(jobID)
	if !exists {
		return fmt.Errorf("job not found: %s", jobID)
	}

	err := jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateRunning
	})
	if err != nil {
		return err
	}

	slog.Info("Starting job", "job_id", jobID, "kind", job.Config.Kind, "method", job.Config.Method)

	// Check for cancellation before starting
	select {
	case <-ctx.Done():
		markJobCancelled(jm, jobID)
		return ctx.Err()
	default:
	}

	start := time.Now()
	found, iterations, solveErr := solveJob(jm, job, baseDir)
	elapsed := time.Since(start)

	select {
	case <-ctx.Done():
		markJobCancelled(jm, jobID)
		return ctx.Err()
	default:
	}

	endTime := time.Now()
	if solveErr != nil {
		markJobFailed(jm, jobID, solveErr)
	} else {
		err = jm.UpdateJob(jobID, func(j *Job) {
			j.State = StateCompleted
			j.Roots = found
			j.Iterations = iterations
			j.EndTime = &endTime
		})
		if err != nil {
			return err
		}

		slog.Info("Job completed",
			"job_id", jobID,
			"elapsed", elapsed,
			"roots", found,
			"iterations", iterations,
		)
	}

	// Broadcast final event
	state := StateCompleted
	if solveErr != nil {
		state = StateFailed
	}
	jm.broadcaster.Broadcast(ProgressEvent{
		JobID:      jobID,
		State:      state,
		Iterations: iterations,
		Begin:      job.Config.Begin,
		End:        job.Config.End,
		Timestamp:  time.Now(),
	})

	// Persist the outcome, success or not
	if recordStore != nil {
		record := store.NewRecord(jobID, job.Config, found, solveErr, iterations, elapsed)
		if err := recordStore.SaveRecord(jobID, record); err != nil {
			slog.Error("Failed to save record", "job_id", jobID, "error", err)
		}
	}

	return solveErr
}

// solveJob dispatches on the request kind and returns the roots found and
// the iteration count (zero for closed-form and scan solves).
func solveJob(jm *JobManager, job *Job, baseDir string) ([]float64, int, error) {
	config := job.Config

	switch config.Kind {
	case "closed-form":
		tail, err := normalizeCoefficients(config.Coefficients)
		if err != nil {
			return nil, 0, err
		}
		result, ok := roots.FindRootsSturm(tail)
		if !ok {
			return nil, 0, fmt.Errorf("no closed form for degree %d, use a scan solve", len(tail))
		}
		return result.Slice(), 0, nil

	case "iterative":
		return solveIterative(jm, job, baseDir)

	case "scan":
		f := polyFunc(config.Coefficients)
		conv := roots.SimpleConvergency[float64]{Eps: config.Eps, MaxIter: config.MaxIter}
		optimizer := opt.NewMayfly(config.MaxIter, 20, 1)
		return opt.FindAllRoots(f, config.Begin, config.End, config.Samples, conv, optimizer), 0, nil

	default:
		return nil, 0, fmt.Errorf("unknown kind: %s", config.Kind)
	}
}

// solveIterative runs the selected bracketed or open search with a tracking
// policy that broadcasts progress and writes the interval trace.
func solveIterative(jm *JobManager, job *Job, baseDir string) ([]float64, int, error) {
	config := job.Config
	f := polyFunc(config.Coefficients)

	var tw *store.TraceWriter
	if baseDir != "" {
		var err error
		tw, err = store.NewTraceWriter(baseDir, job.ID, false)
		if err != nil {
			slog.Warn("Failed to create trace writer", "job_id", job.ID, "error", err)
		} else {
			defer tw.Close()
		}
	}

	tc := &trackingConvergency{
		Convergency: roots.SimpleConvergency[float64]{Eps: config.Eps, MaxIter: config.MaxIter},
		onStep: func(iter int, iv roots.Interval[float64]) {
			if tw != nil {
				entry := store.TraceEntry{
					Iteration: iter,
					Begin:     iv.Begin.X,
					End:       iv.End.X,
					Y:         iv.End.Y,
					Timestamp: time.Now(),
				}
				if err := tw.Write(entry); err != nil {
					slog.Warn("Failed to write trace entry", "job_id", job.ID, "error", err)
				}
			}

			jm.UpdateJob(job.ID, func(j *Job) {
				j.Iterations = iter
			})
			jm.broadcaster.Broadcast(ProgressEvent{
				JobID:      job.ID,
				State:      StateRunning,
				Iterations: iter,
				Begin:      iv.Begin.X,
				End:        iv.End.X,
				Y:          iv.End.Y,
				Timestamp:  time.Now(),
			})
		},
	}

	var root float64
	var err error
	switch config.Method {
	case "bisection":
		root, err = roots.FindRootBisection(config.Begin, config.End, f, tc)
	case "secant":
		root, err = roots.FindRootSecant(config.Begin, config.End, f, tc)
	case "newton":
		df := polyFunc(polyDerivative(config.Coefficients))
		start := (config.Begin + config.End) / 2
		root, err = roots.FindRootNewtonRaphson(start, f, df, tc)
	case "regula-falsi":
		root, err = roots.FindRootRegulaFalsi(config.Begin, config.End, f, tc)
	case "brent":
		root, err = roots.FindRootBrent(config.Begin, config.End, f, tc)
	default:
		return nil, 0, fmt.Errorf("unknown method: %s", config.Method)
	}

	if err != nil {
		return nil, tc.iterations, err
	}
	return []float64{root}, tc.iterations, nil
}

// markJobFailed marks a job as failed with an error message
func markJobFailed(jm *JobManager, jobID string, err error) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateFailed
		j.Error = err.Error()
		j.EndTime = &endTime
	})
	slog.Error("Job failed", "job_id", jobID, "error", err)
}

// markJobCancelled marks a job as cancelled
func markJobCancelled(jm *JobManager, jobID string) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCancelled
		j.EndTime = &endTime
	})
	slog.Info("Job cancelled", "job_id", jobID)
}
