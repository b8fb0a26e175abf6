package server

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobManager_CreateJob(t *testing.T) {
	jm := NewJobManager()

	config := SolveConfig{
		Kind:         "iterative",
		Coefficients: []float64{1, -1},
		Begin:        0,
		End:          2,
		Eps:          1e-9,
		MaxIter:      100,
		Method:       "bisection",
	}

	job := jm.CreateJob(config)

	require.NotEmpty(t, job.ID)
	assert.Equal(t, StatePending, job.State)
	assert.Equal(t, "bisection", job.Config.Method)
}

func TestJobManager_GetJob(t *testing.T) {
	jm := NewJobManager()

	job := jm.CreateJob(SolveConfig{Kind: "closed-form", Coefficients: []float64{1, -1}})

	retrieved, exists := jm.GetJob(job.ID)
	require.True(t, exists)
	assert.Equal(t, job.ID, retrieved.ID)

	_, exists = jm.GetJob("nonexistent")
	assert.False(t, exists)
}

func TestJobManager_ListJobs(t *testing.T) {
	jm := NewJobManager()

	assert.Empty(t, jm.ListJobs())

	jm.CreateJob(SolveConfig{Kind: "closed-form", Coefficients: []float64{1, -1}})
	jm.CreateJob(SolveConfig{Kind: "closed-form", Coefficients: []float64{1, -2}})

	assert.Len(t, jm.ListJobs(), 2)
}

func TestJobManager_UpdateJob(t *testing.T) {
	jm := NewJobManager()

	job := jm.CreateJob(SolveConfig{Kind: "closed-form", Coefficients: []float64{1, -1}})

	err := jm.UpdateJob(job.ID, func(j *Job) {
		j.State = StateRunning
		j.Iterations = 10
		j.Roots = []float64{1}
	})
	require.NoError(t, err)

	updated, _ := jm.GetJob(job.ID)
	assert.Equal(t, StateRunning, updated.State)
	assert.Equal(t, 10, updated.Iterations)
	assert.Equal(t, []float64{1}, updated.Roots)

	err = jm.UpdateJob("nonexistent", func(j *Job) {})
	assert.Error(t, err)
}

func TestJobManager_GetRunningJobs(t *testing.T) {
	jm := NewJobManager()

	a := jm.CreateJob(SolveConfig{Kind: "closed-form", Coefficients: []float64{1, -1}})
	jm.CreateJob(SolveConfig{Kind: "closed-form", Coefficients: []float64{1, -2}})

	require.NoError(t, jm.UpdateJob(a.ID, func(j *Job) { j.State = StateRunning }))

	running := jm.GetRunningJobs()
	require.Len(t, running, 1)
	assert.Equal(t, a.ID, running[0].ID)
}

func TestJobManager_ReturnsCopies(t *testing.T) {
	jm := NewJobManager()

	job := jm.CreateJob(SolveConfig{Kind: "closed-form", Coefficients: []float64{1, -1}})

	// Mutating a returned job must not leak into the manager
	got, exists := jm.GetJob(job.ID)
	require.True(t, exists)
	got.State = StateFailed
	got.Roots = append(got.Roots, 99)

	fresh, _ := jm.GetJob(job.ID)
	assert.Equal(t, StatePending, fresh.State)
	assert.Empty(t, fresh.Roots)

	listed := jm.ListJobs()
	require.Len(t, listed, 1)
	listed[0].Iterations = 42

	fresh, _ = jm.GetJob(job.ID)
	assert.Zero(t, fresh.Iterations)
}

func TestJobManager_ConcurrentReadWrite(t *testing.T) {
	jm := NewJobManager()

	job := jm.CreateJob(SolveConfig{
		Kind:         "iterative",
		Coefficients: []float64{1, -1},
		Begin:        0,
		End:          2,
		Method:       "bisection",
	})

	// A worker mutates the job while handlers encode snapshots of it
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; i <= 500; i++ {
			jm.UpdateJob(job.ID, func(j *Job) {
				j.Iterations = i
				j.Roots = []float64{float64(i)}
			})
		}
	}()

	for i := 0; i < 200; i++ {
		if _, err := json.Marshal(jm.ListJobs()); err != nil {
			t.Fatalf("Failed to encode job list: %v", err)
		}
		got, exists := jm.GetJob(job.ID)
		require.True(t, exists)
		if _, err := json.Marshal(got); err != nil {
			t.Fatalf("Failed to encode job: %v", err)
		}
	}
	<-done
}

func TestJobManager_ThreadSafety(t *testing.T) {
	jm := NewJobManager()

	job := jm.CreateJob(SolveConfig{Kind: "closed-form", Coefficients: []float64{1, -1}})

	// Simulate concurrent updates
	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(iteration int) {
			jm.UpdateJob(job.ID, func(j *Job) {
				j.Iterations = iteration
				time.Sleep(1 * time.Millisecond)
			})
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	// Should not crash - actual value depends on race
	_, exists := jm.GetJob(job.ID)
	assert.True(t, exists)
}
