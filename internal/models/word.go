package models

import "time"

// Word is one deduplicated vocabulary entry extracted from a project's files.
// Frequency counts occurrences within the filtered token stream only; stop
// words and short tokens never accumulate frequency.
type Word struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id"`
	Word       string    `json:"word"`
	Frequency  int       `json:"frequency"`
	WordLength int       `json:"word_length"`
	Language   string    `json:"language"`
	CreatedAt  time.Time `json:"created_at"`
}

// WordFilter narrows word listings.
type WordFilter struct {
	ProjectID    int64
	Language     string
	MinFrequency int
	Search       string
	OrderBy      string
	OrderDir     string
	Limit        int
	Offset       int
}
