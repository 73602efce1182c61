package extraction

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanvir/vocabflash/internal/models"
)

func testFiles(n int) []models.ProjectFile {
	files := make([]models.ProjectFile, 0, n)
	for i := 0; i < n; i++ {
		files = append(files, models.ProjectFile{
			ID:           int64(i + 1),
			OriginalName: "doc.txt",
		})
	}
	return files
}

func TestStoreCreateJob(t *testing.T) {
	store := NewStore()

	job := store.CreateJob(1, testFiles(3))

	require.NotEmpty(t, job.JobID)
	assert.Equal(t, models.JobQueued, job.Status)
	assert.Equal(t, 3, job.TotalFiles)
	assert.Len(t, job.Items, 3)
	for _, item := range job.Items {
		assert.Equal(t, models.ItemQueued, item.Status)
		assert.Equal(t, 0, item.Progress)
	}
}

func TestStoreGet_UnknownJob(t *testing.T) {
	store := NewStore()

	_, ok := store.Get("no-such-job")
	assert.False(t, ok)
}

func TestStoreGet_ReturnsSnapshot(t *testing.T) {
	store := NewStore()
	job := store.CreateJob(1, testFiles(1))

	snap, ok := store.Get(job.JobID)
	require.True(t, ok)

	// Mutating the snapshot must not leak into the store.
	snap.Items[0].Status = models.ItemError
	again, _ := store.Get(job.JobID)
	assert.Equal(t, models.ItemQueued, again.Items[0].Status)
}

func TestStoreLifecycle_AllSucceed(t *testing.T) {
	store := NewStore()
	job := store.CreateJob(1, testFiles(2))

	store.markProcessing(job.JobID, 1)
	current, _ := store.Get(job.JobID)
	assert.Equal(t, models.JobProcessing, current.Status)
	assert.Equal(t, models.ItemProcessing, current.Items[0].Status)
	assert.Equal(t, 50, current.Items[0].Progress)

	store.markSuccess(job.JobID, 1, models.ExtractionResult{WordsExtracted: 10, WordCount: 40, UniqueWords: 12})
	store.markProcessing(job.JobID, 2)
	store.markSuccess(job.JobID, 2, models.ExtractionResult{WordsExtracted: 5, WordCount: 9, UniqueWords: 5})

	final, _ := store.Get(job.JobID)
	assert.Equal(t, models.JobCompleted, final.Status)
	assert.Equal(t, 2, final.CompletedFiles)
	assert.Equal(t, 0, final.FailedFiles)
	assert.Equal(t, 10, final.Items[0].WordsExtracted)
	assert.Equal(t, 100, final.Items[0].Progress)
}

func TestStoreLifecycle_FailureIsolated(t *testing.T) {
	store := NewStore()
	job := store.CreateJob(1, testFiles(3))

	store.markProcessing(job.JobID, 1)
	store.markSuccess(job.JobID, 1, models.ExtractionResult{WordsExtracted: 3})
	store.markProcessing(job.JobID, 2)
	store.markError(job.JobID, 2, "decode failure")
	store.markProcessing(job.JobID, 3)
	store.markSuccess(job.JobID, 3, models.ExtractionResult{WordsExtracted: 7})

	final, _ := store.Get(job.JobID)
	assert.Equal(t, models.JobFailed, final.Status)
	assert.Equal(t, 2, final.CompletedFiles)
	assert.Equal(t, 1, final.FailedFiles)
	assert.Equal(t, models.ItemSuccess, final.Items[0].Status)
	assert.Equal(t, models.ItemError, final.Items[1].Status)
	assert.Equal(t, "decode failure", final.Items[1].Error)
	assert.Equal(t, models.ItemSuccess, final.Items[2].Status)
}

func TestStoreTerminalItemsNotDoubleCounted(t *testing.T) {
	store := NewStore()
	job := store.CreateJob(1, testFiles(1))

	store.markProcessing(job.JobID, 1)
	store.markSuccess(job.JobID, 1, models.ExtractionResult{})
	store.markSuccess(job.JobID, 1, models.ExtractionResult{})
	store.markError(job.JobID, 1, "late failure")

	final, _ := store.Get(job.JobID)
	assert.Equal(t, 1, final.CompletedFiles)
	assert.Equal(t, 0, final.FailedFiles)
	assert.Equal(t, models.JobCompleted, final.Status)
}

func TestStoreConcurrentFinishes(t *testing.T) {
	// Many tasks finishing at once must each be counted exactly once and
	// the terminal status derived correctly.
	const n = 50
	store := NewStore()
	job := store.CreateJob(1, testFiles(n))

	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(fileID int64) {
			defer wg.Done()
			store.markProcessing(job.JobID, fileID)
			if fileID%5 == 0 {
				store.markError(job.JobID, fileID, "boom")
			} else {
				store.markSuccess(job.JobID, fileID, models.ExtractionResult{})
			}
		}(int64(i))
	}
	wg.Wait()

	final, _ := store.Get(job.JobID)
	assert.Equal(t, n-n/5, final.CompletedFiles)
	assert.Equal(t, n/5, final.FailedFiles)
	assert.Equal(t, models.JobFailed, final.Status)
}
