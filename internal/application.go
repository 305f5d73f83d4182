package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-local/internal/service"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-local/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	prefs, closer, err := openPreferences(ctx, log, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closer.Close(); err != nil {
			log.Error("could not close preference storage", "error", err)
		}
	}()

	themeService := service.NewThemeService(logger, prefs, conf.Preferences.Key)

	loadCtx, loadCancel := context.WithTimeout(ctx, conf.Preferences.Timeout)
	theme := themeService.Load(loadCtx)
	loadCancel()

	log.Info("Theme loaded", "theme", theme)

	renderer := tui.NewRenderer()
	gameController := tictactoe.NewGameController(logger, renderer)
	gameController.Reset()

	router := usecase.NewInputRouter(logger, gameController, themeService)
	model := tui.NewModel(ctx, logger, conf.Preferences.Timeout, router, renderer, themeService)

	options := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if !conf.DisableMouse {
		options = append(options, tea.WithMouseAllMotion())
	}

	program := tea.NewProgram(model, options...)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			program.Quit()
		case <-ctx.Done():
		}
	}()

	log.Info("Starting game", "backend", conf.Preferences.Backend)

	if _, err = program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal program error: %w", err)
	}

	log.Info("Game closed")

	return nil
}

type closerFunc func() error

func (that closerFunc) Close() error {
	return that()
}

// openPreferences connects the configured preference backend.
func openPreferences(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.PreferenceRepository, io.Closer, error) {
	switch conf.Preferences.Backend {
	case config.BackendMemory:
		return repository.NewMemoryPreferenceRepository(), closerFunc(func() error { return nil }), nil

	case config.BackendSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		initCtx, cancel := context.WithTimeout(ctx, conf.Preferences.Timeout)
		defer cancel()

		if err = sqliteStorage.Init(initCtx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		log.Info("Using sqlite preferences", "path", conf.SQLiteStoragePath)

		return repository.NewSQLitePreferenceRepository(sqliteStorage.Connection), sqliteStorage, nil

	case config.BackendRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, apperror.ErrStorageAddrNotFound
		}

		connCtx, cancel := context.WithTimeout(ctx, conf.Preferences.Timeout)
		defer cancel()

		redisStorage, err := storage.NewRedisStorage(connCtx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		log.Info("Using redis preferences", "addr", redisAddrString)

		return repository.NewRedisPreferenceRepository(redisStorage.Connection), redisStorage, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownBackend, conf.Preferences.Backend)
	}
}
