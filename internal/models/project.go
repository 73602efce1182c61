package models

import "time"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type Project struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectFile is an uploaded document registered with a project. FileName is
// the stored name under the upload directory; OriginalName is what the user
// uploaded it as.
type ProjectFile struct {
	ID               int64     `json:"id"`
	ProjectID        int64     `json:"project_id"`
	FileName         string    `json:"file_name"`
	OriginalName     string    `json:"original_name"`
	ProcessingStatus string    `json:"processing_status"`
	CreatedAt        time.Time `json:"created_at"`
}

// Project and file processing statuses.
const (
	ProjectCreated    = "CREATED"
	ProjectProcessing = "PROCESSING"
	ProjectReady      = "READY"

	FileUploaded   = "UPLOADED"
	FileQueued     = "QUEUED"
	FileProcessing = "PROCESSING"
	FileCompleted  = "COMPLETED"
	FileFailed     = "FAILED"
)
