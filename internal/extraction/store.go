package extraction

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tanvir/vocabflash/internal/models"
)

// Store holds extraction job state in memory. It is constructed once per
// process and injected wherever job state is read or written; there is no
// package-level state.
//
// Item fields are only ever written by the single task processing that file,
// but aggregate counters and the job status can be touched by two tasks
// finishing at the same time, so every mutation goes through the store mutex
// to keep each item counted exactly once.
type Store struct {
	mu   sync.Mutex
	jobs map[string]*models.ExtractionJob
}

func NewStore() *Store {
	return &Store{jobs: make(map[string]*models.ExtractionJob)}
}

// CreateJob registers a new job with one queued item per file and returns a
// snapshot of it.
func (s *Store) CreateJob(projectID int64, files []models.ProjectFile) models.ExtractionJob {
	now := time.Now()
	job := &models.ExtractionJob{
		JobID:      uuid.NewString(),
		ProjectID:  projectID,
		Status:     models.JobQueued,
		TotalFiles: len(files),
		Items:      make([]models.ExtractionJobItem, 0, len(files)),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, f := range files {
		job.Items = append(job.Items, models.ExtractionJobItem{
			FileID:   f.ID,
			FileName: f.OriginalName,
			Status:   models.ItemQueued,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.JobID] = job
	return snapshot(job)
}

// Get returns a snapshot of a job, or false if it does not exist. Jobs are
// never deleted by the store itself.
func (s *Store) Get(jobID string) (models.ExtractionJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return models.ExtractionJob{}, false
	}
	return snapshot(job), true
}

// markProcessing moves an item (and, on the first dequeue, the job) into the
// processing state.
func (s *Store) markProcessing(jobID string, fileID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, item := s.find(jobID, fileID)
	if item == nil {
		return
	}
	job.Status = models.JobProcessing
	item.Status = models.ItemProcessing
	item.Progress = 50
	job.UpdatedAt = time.Now()
}

// markSuccess records a finished item and re-derives the aggregate status.
func (s *Store) markSuccess(jobID string, fileID int64, res models.ExtractionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, item := s.find(jobID, fileID)
	if item == nil || terminal(item.Status) {
		return
	}
	item.Status = models.ItemSuccess
	item.Progress = 100
	item.WordsExtracted = res.WordsExtracted
	item.WordCount = res.WordCount
	item.UniqueWords = res.UniqueWords
	job.CompletedFiles++
	s.finalize(job)
}

// markError records a failed item verbatim; the failure is isolated to this
// item and never aborts siblings.
func (s *Store) markError(jobID string, fileID int64, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, item := s.find(jobID, fileID)
	if item == nil || terminal(item.Status) {
		return
	}
	item.Status = models.ItemError
	item.Progress = 100
	item.Error = message
	job.FailedFiles++
	s.finalize(job)
}

// finalize derives the terminal job status once every item has finished.
// Aggregate status is always derived, never set independently.
func (s *Store) finalize(job *models.ExtractionJob) {
	job.UpdatedAt = time.Now()
	if job.CompletedFiles+job.FailedFiles < job.TotalFiles {
		return
	}
	if job.FailedFiles > 0 {
		job.Status = models.JobFailed
	} else {
		job.Status = models.JobCompleted
	}
}

// find must be called with the mutex held.
func (s *Store) find(jobID string, fileID int64) (*models.ExtractionJob, *models.ExtractionJobItem) {
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, nil
	}
	for i := range job.Items {
		if job.Items[i].FileID == fileID {
			return job, &job.Items[i]
		}
	}
	return job, nil
}

func terminal(status models.JobItemStatus) bool {
	return status == models.ItemSuccess || status == models.ItemError
}

func snapshot(job *models.ExtractionJob) models.ExtractionJob {
	copied := *job
	copied.Items = make([]models.ExtractionJobItem, len(job.Items))
	copy(copied.Items, job.Items)
	return copied
}
