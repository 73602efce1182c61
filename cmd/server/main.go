package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tanvir/vocabflash/internal/api"
	"github.com/tanvir/vocabflash/internal/config"
	"github.com/tanvir/vocabflash/internal/db"
	"github.com/tanvir/vocabflash/internal/extraction"
	"github.com/tanvir/vocabflash/internal/logger"
	"github.com/tanvir/vocabflash/internal/repository/sqlite"
	"github.com/tanvir/vocabflash/internal/services"
	"github.com/tanvir/vocabflash/internal/textproc"
	"github.com/tanvir/vocabflash/internal/worker"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("VocabFlash Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("upload_dir=%s", cfg.UploadDir)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("extraction_worker_count=%d", cfg.ExtractionWorkerCount)
	log.Debug("extraction_queue_size=%d", cfg.ExtractionQueueSize)
	log.Debug("max_words_per_file=%d", cfg.MaxWordsPerFile)
	log.Debug("min_word_length=%d", cfg.MinWordLength)
	log.Debug("due_card_limit=%d", cfg.DueCardLimit)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories
	users := sqlite.NewUserRepository(database.DB)
	projects := sqlite.NewProjectRepository(database.DB)
	words := sqlite.NewWordRepository(database.DB)
	flashcards := sqlite.NewFlashcardRepository(database.DB)
	progress := sqlite.NewProgressRepository(database.DB)

	// Extraction pipeline
	extractionPool := worker.NewPool(cfg.ExtractionWorkerCount, cfg.ExtractionQueueSize)
	jobStore := extraction.NewStore()
	coordinator := extraction.NewCoordinator(jobStore, extractionPool)

	// Services
	projectService := services.NewProjectService(projects, cfg.UploadDir)
	extractionService := services.NewExtractionService(
		projects,
		words,
		coordinator,
		extraction.NewPlainTextExtractor(),
		textproc.NewDetector(),
		services.ExtractionConfig{
			UploadDir:       cfg.UploadDir,
			MaxWordsPerFile: cfg.MaxWordsPerFile,
			MinWordLength:   cfg.MinWordLength,
		},
	)
	vocabularyService := services.NewVocabularyService(projects, words)
	learningService := services.NewLearningService(flashcards, words, progress)

	srv := &api.Server{
		Users:        users,
		Projects:     projectService,
		Extraction:   extractionService,
		Vocabulary:   vocabularyService,
		Learning:     learningService,
		DueCardLimit: cfg.DueCardLimit,
	}

	ctx, cancel := context.WithCancel(context.Background())
	extractionPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first so no new extraction jobs arrive.
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Drain in-flight extraction work.
	log.Debug("stopping extraction pool")
	extractionPool.Stop()
	cancel()

	log.Info("===========================================")
	log.Info("VocabFlash Server Stopped")
	log.Info("===========================================")
}
