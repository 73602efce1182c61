package models

import "time"

type JobStatus string

const (
	JobQueued     JobStatus = "queued"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

type JobItemStatus string

const (
	ItemQueued     JobItemStatus = "queued"
	ItemProcessing JobItemStatus = "processing"
	ItemSuccess    JobItemStatus = "success"
	ItemError      JobItemStatus = "error"
)

// ExtractionResult summarizes what one file's extraction produced.
type ExtractionResult struct {
	WordsExtracted int `json:"words_extracted"`
	WordCount      int `json:"word_count"`
	UniqueWords    int `json:"unique_words"`
}

// ExtractionJobItem tracks one file within an extraction job. It is mutated
// only by the task processing that file and is terminal once status is
// success or error.
type ExtractionJobItem struct {
	FileID         int64         `json:"file_id"`
	FileName       string        `json:"file_name"`
	Status         JobItemStatus `json:"status"`
	Progress       int           `json:"progress"`
	WordsExtracted int           `json:"words_extracted,omitempty"`
	WordCount      int           `json:"word_count,omitempty"`
	UniqueWords    int           `json:"unique_words,omitempty"`
	Error          string        `json:"error,omitempty"`
}

// ExtractionJob is the aggregate status for a batch of files. Status is
// derived from the items: completed when every item finished without
// failures, failed when every item finished and at least one errored.
type ExtractionJob struct {
	JobID          string              `json:"job_id"`
	ProjectID      int64               `json:"project_id"`
	Status         JobStatus           `json:"status"`
	TotalFiles     int                 `json:"total_files"`
	CompletedFiles int                 `json:"completed_files"`
	FailedFiles    int                 `json:"failed_files"`
	Items          []ExtractionJobItem `json:"items"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}
