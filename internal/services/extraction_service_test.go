package services_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/tanvir/vocabflash/internal/extraction"
	"github.com/tanvir/vocabflash/internal/models"
	"github.com/tanvir/vocabflash/internal/repository"
	"github.com/tanvir/vocabflash/internal/repository/sqlite"
	"github.com/tanvir/vocabflash/internal/services"
	"github.com/tanvir/vocabflash/internal/testutil"
	"github.com/tanvir/vocabflash/internal/textproc"
	"github.com/tanvir/vocabflash/internal/worker"
)

// ExtractionServiceSuite drives the full pipeline against real repositories,
// a real worker pool, and real files on disk.
type ExtractionServiceSuite struct {
	suite.Suite
	db        *sql.DB
	pool      *worker.Pool
	svc       services.ExtractionService
	projects  repository.ProjectRepository
	words     repository.WordRepository
	uploadDir string
	userID    int64
}

func (s *ExtractionServiceSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.uploadDir = s.T().TempDir()

	s.projects = sqlite.NewProjectRepository(s.db)
	s.words = sqlite.NewWordRepository(s.db)

	store := extraction.NewStore()
	s.pool = worker.NewPool(2, 16)
	s.pool.Start(context.Background())

	s.svc = services.NewExtractionService(
		s.projects,
		s.words,
		extraction.NewCoordinator(store, s.pool),
		extraction.NewPlainTextExtractor(),
		textproc.NewDetector(),
		services.ExtractionConfig{
			UploadDir:       s.uploadDir,
			MaxWordsPerFile: 500,
			MinWordLength:   3,
		},
	)

	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (username) VALUES (?)`, "reader")
	s.Require().NoError(err)
	err = s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE username = ?`, "reader").Scan(&s.userID)
	s.Require().NoError(err)
}

func (s *ExtractionServiceSuite) TearDownTest() {
	s.pool.Stop()
	testutil.MustClose(s.T(), s.db)
}

func (s *ExtractionServiceSuite) createProject() int64 {
	ctx := context.Background()
	id, err := s.projects.Insert(ctx, models.Project{UserID: s.userID, Name: "novel"})
	s.Require().NoError(err)
	return id
}

func (s *ExtractionServiceSuite) addFile(projectID int64, name, content string) int64 {
	path := filepath.Join(s.uploadDir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))

	id, err := s.projects.InsertFile(context.Background(), models.ProjectFile{
		ProjectID:    projectID,
		FileName:     name,
		OriginalName: name,
	})
	s.Require().NoError(err)
	return id
}

func (s *ExtractionServiceSuite) waitForJob(jobID string) models.ExtractionJob {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, err := s.svc.JobStatus(context.Background(), jobID)
		s.Require().NoError(err)
		if job.Status == models.JobCompleted || job.Status == models.JobFailed {
			return job
		}
		time.Sleep(10 * time.Millisecond)
	}
	s.FailNow("job did not finish in time")
	return models.ExtractionJob{}
}

func (s *ExtractionServiceSuite) TestRejectsEmptyFileList() {
	projectID := s.createProject()
	_, err := s.svc.StartExtraction(context.Background(), projectID, nil)
	s.Require().Error(err)
	s.Contains(err.Error(), "VALIDATION_ERROR")
}

func (s *ExtractionServiceSuite) TestRejectsUnknownProject() {
	_, err := s.svc.StartExtraction(context.Background(), 999, []int64{1})
	s.Require().Error(err)
	s.Contains(err.Error(), "NOT_FOUND")
}

func (s *ExtractionServiceSuite) TestExtractsVocabularyEndToEnd() {
	ctx := context.Background()
	projectID := s.createProject()
	fileID := s.addFile(projectID, "sample.txt",
		"The Quick quick FOX fox jumps over the lazy dog. The fox is quick.")

	job, err := s.svc.StartExtraction(ctx, projectID, []int64{fileID})
	s.Require().NoError(err)
	s.Equal(1, job.TotalFiles)

	final := s.waitForJob(job.JobID)
	s.Equal(models.JobCompleted, final.Status)
	s.Equal(1, final.CompletedFiles)
	s.Equal(0, final.FailedFiles)

	s.Require().Len(final.Items, 1)
	// WordCount is the raw token count of the processed text, stop words
	// included; UniqueWords counts only the filtered vocabulary.
	s.Equal(14, final.Items[0].WordCount)
	s.Equal(5, final.Items[0].UniqueWords)
	s.Equal(5, final.Items[0].WordsExtracted)

	words, err := s.words.ListByProject(ctx, projectID)
	s.Require().NoError(err)

	byWord := make(map[string]int, len(words))
	for _, w := range words {
		byWord[w.Word] = w.Frequency
	}
	// Stop words ("the", "is", "over") never reach the table; counts are
	// case-insensitive.
	s.Equal(3, byWord["quick"])
	s.Equal(3, byWord["fox"])
	s.Equal(1, byWord["jumps"])
	s.Equal(1, byWord["lazy"])
	s.Equal(1, byWord["dog"])
	s.NotContains(byWord, "the")
	s.NotContains(byWord, "over")

	// Project and file land in their terminal states.
	project, err := s.projects.Get(ctx, projectID)
	s.Require().NoError(err)
	s.Equal(models.ProjectReady, project.Status)

	files, err := s.projects.FilesByIDs(ctx, projectID, []int64{fileID})
	s.Require().NoError(err)
	s.Require().Len(files, 1)
	s.Equal(models.FileCompleted, files[0].ProcessingStatus)
}

func (s *ExtractionServiceSuite) TestOneFailingFileDoesNotAbortSiblings() {
	ctx := context.Background()
	projectID := s.createProject()

	goodID := s.addFile(projectID, "good.txt", "vocabulary vocabulary retention")
	badID, err := s.projects.InsertFile(ctx, models.ProjectFile{
		ProjectID:    projectID,
		FileName:     "missing.txt",
		OriginalName: "missing.txt",
	})
	s.Require().NoError(err)

	job, err := s.svc.StartExtraction(ctx, projectID, []int64{goodID, badID})
	s.Require().NoError(err)

	final := s.waitForJob(job.JobID)
	s.Equal(models.JobFailed, final.Status)
	s.Equal(1, final.CompletedFiles)
	s.Equal(1, final.FailedFiles)

	for _, item := range final.Items {
		switch item.FileID {
		case goodID:
			s.Equal(models.ItemSuccess, item.Status)
			s.Positive(item.WordsExtracted)
		case badID:
			s.Equal(models.ItemError, item.Status)
			s.NotEmpty(item.Error)
		}
	}

	words, err := s.words.ListByProject(ctx, projectID)
	s.Require().NoError(err)
	s.NotEmpty(words)
}

func (s *ExtractionServiceSuite) TestDuplicateWordsAcrossFilesAreSkipped() {
	ctx := context.Background()
	projectID := s.createProject()
	firstID := s.addFile(projectID, "first.txt", "retention retention curve")
	secondID := s.addFile(projectID, "second.txt", "retention practice")

	job, err := s.svc.StartExtraction(ctx, projectID, []int64{firstID})
	s.Require().NoError(err)
	s.waitForJob(job.JobID)

	job, err = s.svc.StartExtraction(ctx, projectID, []int64{secondID})
	s.Require().NoError(err)
	final := s.waitForJob(job.JobID)
	s.Equal(models.JobCompleted, final.Status)

	// The second file re-extracts "retention" but the existing row wins.
	words, err := s.words.ListByProject(ctx, projectID)
	s.Require().NoError(err)
	byWord := make(map[string]int, len(words))
	for _, w := range words {
		byWord[w.Word] = w.Frequency
	}
	s.Equal(2, byWord["retention"])
	s.Contains(byWord, "curve")
	s.Contains(byWord, "practice")
}

func TestExtractionServiceSuite(t *testing.T) {
	suite.Run(t, new(ExtractionServiceSuite))
}
