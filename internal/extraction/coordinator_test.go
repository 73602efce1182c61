package extraction_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanvir/vocabflash/internal/extraction"
	"github.com/tanvir/vocabflash/internal/models"
	"github.com/tanvir/vocabflash/internal/worker"
)

func waitForJob(t *testing.T, c *extraction.Coordinator, jobID string) models.ExtractionJob {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("job did not reach a terminal state in time")
		case <-time.After(10 * time.Millisecond):
		}
		job, ok := c.Job(jobID)
		require.True(t, ok)
		if job.Status == models.JobCompleted || job.Status == models.JobFailed {
			return job
		}
	}
}

func TestCoordinator_AllFilesSucceed(t *testing.T) {
	pool := worker.NewPool(3, 16)
	pool.Start(context.Background())
	defer pool.Stop()

	c := extraction.NewCoordinator(extraction.NewStore(), pool)
	job := c.CreateJob(1, []models.ProjectFile{
		{ID: 1, OriginalName: "a.txt"},
		{ID: 2, OriginalName: "b.txt"},
	})

	for _, fileID := range []int64{1, 2} {
		err := c.Enqueue(job.JobID, fileID, func(ctx context.Context) (models.ExtractionResult, error) {
			return models.ExtractionResult{WordsExtracted: 4, WordCount: 20, UniqueWords: 4}, nil
		})
		require.NoError(t, err)
	}

	final := waitForJob(t, c, job.JobID)
	assert.Equal(t, models.JobCompleted, final.Status)
	assert.Equal(t, 2, final.CompletedFiles)
	assert.Equal(t, 0, final.FailedFiles)
}

func TestCoordinator_FailureDoesNotAbortSiblings(t *testing.T) {
	pool := worker.NewPool(3, 16)
	pool.Start(context.Background())
	defer pool.Stop()

	c := extraction.NewCoordinator(extraction.NewStore(), pool)
	job := c.CreateJob(1, []models.ProjectFile{
		{ID: 1, OriginalName: "a.txt"},
		{ID: 2, OriginalName: "broken.txt"},
		{ID: 3, OriginalName: "c.txt"},
	})

	ok := func(ctx context.Context) (models.ExtractionResult, error) {
		return models.ExtractionResult{WordsExtracted: 1}, nil
	}
	fail := func(ctx context.Context) (models.ExtractionResult, error) {
		return models.ExtractionResult{}, errors.New("ocr failure")
	}

	require.NoError(t, c.Enqueue(job.JobID, 1, ok))
	require.NoError(t, c.Enqueue(job.JobID, 2, fail))
	require.NoError(t, c.Enqueue(job.JobID, 3, ok))

	final := waitForJob(t, c, job.JobID)
	assert.Equal(t, models.JobFailed, final.Status)
	assert.Equal(t, 2, final.CompletedFiles)
	assert.Equal(t, 1, final.FailedFiles)
	assert.Equal(t, models.ItemSuccess, final.Items[0].Status)
	assert.Equal(t, models.ItemError, final.Items[1].Status)
	assert.Equal(t, "ocr failure", final.Items[1].Error)
	assert.Equal(t, models.ItemSuccess, final.Items[2].Status)
}

func TestCoordinator_BoundedConcurrency(t *testing.T) {
	const workers = 3
	pool := worker.NewPool(workers, 32)
	pool.Start(context.Background())
	defer pool.Stop()

	c := extraction.NewCoordinator(extraction.NewStore(), pool)

	files := make([]models.ProjectFile, 12)
	for i := range files {
		files[i] = models.ProjectFile{ID: int64(i + 1), OriginalName: "f.txt"}
	}
	job := c.CreateJob(1, files)

	var mu sync.Mutex
	running, peak := 0, 0

	for _, f := range files {
		require.NoError(t, c.Enqueue(job.JobID, f.ID, func(ctx context.Context) (models.ExtractionResult, error) {
			mu.Lock()
			running++
			if running > peak {
				peak = running
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
			return models.ExtractionResult{}, nil
		}))
	}

	final := waitForJob(t, c, job.JobID)
	assert.Equal(t, models.JobCompleted, final.Status)

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, workers, "no more than %d tasks may run at once", workers)
}

func TestCoordinator_EnqueueAfterStop(t *testing.T) {
	pool := worker.NewPool(1, 4)
	pool.Start(context.Background())

	c := extraction.NewCoordinator(extraction.NewStore(), pool)
	job := c.CreateJob(1, []models.ProjectFile{{ID: 1, OriginalName: "a.txt"}})

	pool.Stop()

	err := c.Enqueue(job.JobID, 1, func(ctx context.Context) (models.ExtractionResult, error) {
		return models.ExtractionResult{}, nil
	})
	assert.ErrorIs(t, err, worker.ErrPoolStopped)
}
