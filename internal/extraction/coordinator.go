package extraction

import (
	"context"

	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/models"
	"github.com/tanvir/vocabflash/internal/worker"
)

// Task processes one file end to end (extract, normalize, detect, tokenize,
// count, persist) and reports what it produced.
type Task func(ctx context.Context) (models.ExtractionResult, error)

// Coordinator schedules per-file extraction tasks on a bounded worker pool
// and tracks their status in the job store. Tasks run independently; one
// file's failure never aborts its siblings, and a failed item is terminal
// unless the caller submits a whole new job.
type Coordinator struct {
	store *Store
	pool  *worker.Pool
}

func NewCoordinator(store *Store, pool *worker.Pool) *Coordinator {
	return &Coordinator{store: store, pool: pool}
}

// CreateJob registers a job with one queued item per file.
func (c *Coordinator) CreateJob(projectID int64, files []models.ProjectFile) models.ExtractionJob {
	return c.store.CreateJob(projectID, files)
}

// Job returns a point-in-time snapshot of a job's status.
func (c *Coordinator) Job(jobID string) (models.ExtractionJob, bool) {
	return c.store.Get(jobID)
}

// Enqueue schedules the task for one file of a job.
func (c *Coordinator) Enqueue(jobID string, fileID int64, task Task) error {
	return c.pool.Submit(&fileJob{
		store:  c.store,
		jobID:  jobID,
		fileID: fileID,
		task:   task,
	})
}

// fileJob adapts one extraction task to the worker pool.
type fileJob struct {
	store  *Store
	jobID  string
	fileID int64
	task   Task
}

func (j *fileJob) Name() string { return "extract_file" }

func (j *fileJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"job_id":  j.jobID,
		"file_id": j.fileID,
	})

	j.store.markProcessing(j.jobID, j.fileID)

	res, err := j.task(ctx)
	if err != nil {
		log.Warn("file extraction failed: %v", err)
		j.store.markError(j.jobID, j.fileID, err.Error())
		return err
	}

	log.Debug("file extraction succeeded: words_extracted=%d, unique=%d", res.WordsExtracted, res.UniqueWords)
	j.store.markSuccess(j.jobID, j.fileID, res)
	return nil
}
