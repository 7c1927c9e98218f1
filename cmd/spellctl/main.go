// Command spellctl manages the spelling trainer word store from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spellingtrainer/internal/config"
	"spellingtrainer/internal/logging"
	"spellingtrainer/internal/repository"
	"spellingtrainer/internal/service"
	"spellingtrainer/internal/storage"
)

// app holds what every subcommand needs once the root command has set it up
type app struct {
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
	store  storage.DocumentStore
	words  *service.WordService
	backup *service.BackupService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "spellctl",
		Short: "Manage the spelling trainer word store",
		Long: `spellctl adds, lists and removes practice words and backs up the word store.

Storage is selected with the same environment variables the server reads
(STORAGE_BACKEND, DATABASE_TYPE, DB_PATH, DATABASE_URL, REDIS_URL).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newAddCmd(a),
		newImportCSVCmd(a),
		newDeleteCmd(a),
		newListCmd(a),
		newSentenceCmd(a),
		newClearCmd(a),
		newExportCmd(a),
		newImportCmd(a),
	)
	return root
}

func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	} else if level == "info" {
		// keep command output readable
		level = "warn"
	}
	a.logger, err = logging.NewConsole(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.store, err = storage.Open(ctx, cfg, a.logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	repo := repository.NewWordRepository(a.store, cfg.StorageKey, a.logger)
	a.words = service.NewWordService(repo, cfg.UploadMaxSize, a.logger)
	a.backup = service.NewBackupService(repo, cfg.StorageBackend, a.logger)
	return nil
}

func (a *app) teardown() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
