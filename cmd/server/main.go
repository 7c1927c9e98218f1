package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"spellingtrainer/internal/audio"
	"spellingtrainer/internal/config"
	"spellingtrainer/internal/handlers"
	"spellingtrainer/internal/logging"
	"spellingtrainer/internal/practice"
	"spellingtrainer/internal/repository"
	"spellingtrainer/internal/service"
	"spellingtrainer/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close()

	logger.Info("Storage ready",
		zap.String("backend", cfg.StorageBackend),
		zap.String("key", cfg.StorageKey))

	repo := repository.NewWordRepository(store, cfg.StorageKey, logger)

	// Speech
	var speaker service.Speaker = audio.NopSpeaker{}
	audioDir := ""
	if cfg.TTSEnabled {
		tts := audio.NewTTSService(cfg.AudioDir, cfg.TTSBaseURL, cfg.TTSLanguage)
		if removed, err := tts.CleanupAudioFiles(); err != nil {
			logger.Warn("Failed to clean up audio files", zap.Error(err))
		} else if removed > 0 {
			logger.Info("Removed cached audio files", zap.Int("count", removed))
		}
		s := audio.NewSpeaker(tts, logger)
		defer s.Wait()
		defer s.Stop()
		speaker = s
		audioDir = tts.AudioDir()
	}

	// Initialize services
	wordService := service.NewWordService(repo, cfg.UploadMaxSize, logger)
	practiceService := service.NewPracticeService(repo, speaker, practice.Options{
		AdvanceDelay: cfg.CorrectAdvanceDelay,
		Logger:       logger,
	})
	defer practiceService.Close()
	backupService := service.NewBackupService(repo, cfg.StorageBackend, logger)

	// Initialize handlers
	router := handlers.NewRouter(
		handlers.NewWordHandler(wordService, logger),
		handlers.NewPracticeHandler(practiceService, logger),
		handlers.NewBackupHandler(backupService, cfg.UploadMaxSize, logger),
		audioDir,
		logger,
	)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting", zap.String("addr", "http://localhost"+server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Server shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
