package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oxolabs/oxo-console/internal/config"
	"github.com/oxolabs/oxo-console/internal/game"
	"github.com/oxolabs/oxo-console/internal/repository"
	"github.com/oxolabs/oxo-console/internal/repository/storage"
	"github.com/oxolabs/oxo-console/transport/console"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	repo, closeStorage, err := newSnapshotRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not set up snapshot storage: %w", err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close snapshot storage", "error", err)
		}
	}()

	engine := game.New(logger, repo)
	gameConsole := console.New(logger, engine, os.Stdin, os.Stdout)

	// run the console game loop
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting console game", "backend", conf.Storage.Backend)
		errCh <- gameConsole.Run(ctx)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newSnapshotRepository - picks the snapshot backend named in the config and
// returns it along with its close function.
func newSnapshotRepository(ctx context.Context, conf *config.Config) (repository.SnapshotRepository, func() error, error) {
	noop := func() error { return nil }

	switch conf.Storage.Backend {
	case config.BackendFile:
		fileStorage, err := storage.NewFileStorage(conf.Storage.File.Dir, conf.Storage.File.Name)
		if err != nil {
			return nil, nil, fmt.Errorf("could not prepare snapshot file: %w", err)
		}

		return repository.NewFileSnapshotRepository(fileStorage.Path), noop, nil

	case config.BackendRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Storage.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisSnapshotRepository(redisStorage.Connection), redisStorage.Close, nil

	case config.BackendSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Storage.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteSnapshotRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownBackend, conf.Storage.Backend)
	}
}
