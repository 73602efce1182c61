package services

import (
	"context"
	"path/filepath"

	"github.com/tanvir/vocabflash/internal/errors"
	"github.com/tanvir/vocabflash/internal/extraction"
	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/models"
	"github.com/tanvir/vocabflash/internal/repository"
	"github.com/tanvir/vocabflash/internal/textproc"
)

// ExtractionService runs vocabulary extraction over a project's uploaded files
type ExtractionService interface {
	StartExtraction(ctx context.Context, projectID int64, fileIDs []int64) (models.ExtractionJob, error)
	JobStatus(ctx context.Context, jobID string) (models.ExtractionJob, error)
}

// ExtractionConfig bundles the tunables of the extraction pipeline.
type ExtractionConfig struct {
	UploadDir       string
	MaxWordsPerFile int
	MinWordLength   int
}

type extractionService struct {
	projects    repository.ProjectRepository
	words       repository.WordRepository
	coordinator *extraction.Coordinator
	extractor   extraction.TextExtractor
	detector    textproc.Detector
	cfg         ExtractionConfig
}

// NewExtractionService creates a new ExtractionService
func NewExtractionService(
	projects repository.ProjectRepository,
	words repository.WordRepository,
	coordinator *extraction.Coordinator,
	extractor extraction.TextExtractor,
	detector textproc.Detector,
	cfg ExtractionConfig,
) ExtractionService {
	return &extractionService{
		projects:    projects,
		words:       words,
		coordinator: coordinator,
		extractor:   extractor,
		detector:    detector,
		cfg:         cfg,
	}
}

func (s *extractionService) StartExtraction(ctx context.Context, projectID int64, fileIDs []int64) (models.ExtractionJob, error) {
	log := logger.FromContext(ctx)
	log.Info("starting extraction: project_id=%d, files=%d", projectID, len(fileIDs))

	if len(fileIDs) == 0 {
		return models.ExtractionJob{}, errors.NewValidationError("file_ids", "at least one file is required")
	}

	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return models.ExtractionJob{}, errors.NewInternalError(err)
	}
	if project == nil {
		return models.ExtractionJob{}, errors.NewNotFoundError("project", projectID)
	}

	files, err := s.projects.FilesByIDs(ctx, projectID, fileIDs)
	if err != nil {
		return models.ExtractionJob{}, errors.NewInternalError(err)
	}
	if len(files) == 0 {
		return models.ExtractionJob{}, errors.NewNotFoundError("files", fileIDs)
	}
	if len(files) != len(fileIDs) {
		return models.ExtractionJob{}, errors.NewValidationError("file_ids", "one or more files do not belong to this project")
	}

	if err := s.projects.UpdateStatus(ctx, projectID, models.ProjectProcessing); err != nil {
		return models.ExtractionJob{}, errors.NewInternalError(err)
	}

	job := s.coordinator.CreateJob(projectID, files)
	for _, f := range files {
		if err := s.projects.UpdateFileStatus(ctx, f.ID, models.FileQueued); err != nil {
			log.Warn("failed to mark file queued: file_id=%d: %v", f.ID, err)
		}
		file := f
		task := func(taskCtx context.Context) (models.ExtractionResult, error) {
			return s.processFile(taskCtx, project, file)
		}
		if err := s.coordinator.Enqueue(job.JobID, file.ID, task); err != nil {
			log.Error("failed to enqueue file: file_id=%d: %v", file.ID, err)
			return models.ExtractionJob{}, errors.NewInternalError(err)
		}
	}

	log.Info("extraction job queued: job_id=%s, files=%d", job.JobID, len(files))
	return job, nil
}

func (s *extractionService) JobStatus(ctx context.Context, jobID string) (models.ExtractionJob, error) {
	job, ok := s.coordinator.Job(jobID)
	if !ok {
		return models.ExtractionJob{}, errors.NewNotFoundError("job", jobID)
	}

	// Flip the project to ready the first time a terminal job is observed.
	if job.Status == models.JobCompleted || job.Status == models.JobFailed {
		project, err := s.projects.Get(ctx, job.ProjectID)
		if err == nil && project != nil && project.Status == models.ProjectProcessing {
			if err := s.projects.UpdateStatus(ctx, job.ProjectID, models.ProjectReady); err != nil {
				logger.FromContext(ctx).Warn("failed to mark project ready: %v", err)
			}
		}
	}
	return job, nil
}

// processFile runs the full pipeline for one file: extract raw text,
// normalize, detect language, build the vocabulary, count frequencies, and
// persist the capped frequency table.
func (s *extractionService) processFile(ctx context.Context, project *models.Project, file models.ProjectFile) (models.ExtractionResult, error) {
	log := logger.FromContext(ctx).WithField("file", file.OriginalName)

	if err := s.projects.UpdateFileStatus(ctx, file.ID, models.FileProcessing); err != nil {
		log.Warn("failed to mark file processing: %v", err)
	}

	raw, err := s.extractor.Extract(ctx, filepath.Join(s.cfg.UploadDir, file.FileName))
	if err != nil {
		s.failFile(ctx, file.ID)
		return models.ExtractionResult{}, err
	}

	text := textproc.Normalize(raw, textproc.DefaultOptions())
	lang := s.detector.Detect(text)
	stopWords := textproc.StopWords(lang)

	vocabulary := textproc.ExtractUniqueWords(text, true, s.cfg.MinWordLength, stopWords)
	freq := textproc.CountFrequencies(text, vocabulary)
	table := textproc.FrequencyTable(text, freq, s.cfg.MaxWordsPerFile)

	language := string(lang)
	if lang == textproc.LangUnknown {
		language = string(textproc.LangEnglish)
	}

	var created, skipped int
	for _, entry := range table {
		inserted, err := s.words.Insert(ctx, models.Word{
			ProjectID:  project.ID,
			Word:       entry.Word,
			Frequency:  entry.Frequency,
			WordLength: len([]rune(entry.Word)),
			Language:   language,
		})
		if err != nil {
			s.failFile(ctx, file.ID)
			return models.ExtractionResult{}, err
		}
		if inserted {
			created++
		} else {
			skipped++
		}
	}

	if err := s.projects.UpdateFileStatus(ctx, file.ID, models.FileCompleted); err != nil {
		log.Warn("failed to mark file completed: %v", err)
	}

	log.Info("file processed: language=%s, unique=%d, created=%d, skipped=%d",
		language, len(vocabulary), created, skipped)
	return models.ExtractionResult{
		WordsExtracted: created,
		// The raw token count of the processed text, stop words and
		// filtered tokens included.
		WordCount:   len(textproc.Tokenize(text)),
		UniqueWords: len(vocabulary),
	}, nil
}

func (s *extractionService) failFile(ctx context.Context, fileID int64) {
	if err := s.projects.UpdateFileStatus(ctx, fileID, models.FileFailed); err != nil {
		logger.FromContext(ctx).Warn("failed to mark file failed: file_id=%d: %v", fileID, err)
	}
}
