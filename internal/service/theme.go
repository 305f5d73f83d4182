package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type ThemeService interface {
	Load(ctx context.Context) entity.Theme
	Current() entity.Theme
	Toggle(ctx context.Context) (entity.Theme, error)
}

type preferenceRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type themeService struct {
	logger *slog.Logger

	preferenceRepo preferenceRepo
	key            string

	current entity.Theme
}

func NewThemeService(logger *slog.Logger, preferenceRepo preferenceRepo, key string) ThemeService {
	return &themeService{
		logger:         logger.With("component", "theme_service"),
		preferenceRepo: preferenceRepo,
		key:            key,
		current:        entity.ThemeLight,
	}
}

// Load reads the stored theme once; missing or unreadable values fall back to light.
func (that *themeService) Load(ctx context.Context) entity.Theme {
	log := that.logger.With("method", "Load", "key", that.key)

	value, err := that.preferenceRepo.Get(ctx, that.key)
	switch {
	case errors.Is(err, apperror.ErrPreferenceNotFound):
		log.Debug("no stored theme, using default")
	case err != nil:
		log.Error("failed to read theme preference", "error", err)
	default:
		if entity.ParseTheme(value) != entity.Theme(value) {
			log.Warn("invalid stored theme, using default", "value", value)
		}
	}

	that.current = entity.ParseTheme(value)

	return that.current
}

func (that *themeService) Current() entity.Theme {
	return that.current
}

// Toggle switches the theme and persists it. The new theme stays active even
// when it could not be saved.
func (that *themeService) Toggle(ctx context.Context) (entity.Theme, error) {
	that.current = that.current.Toggle()

	if err := that.preferenceRepo.Set(ctx, that.key, string(that.current)); err != nil {
		return that.current, fmt.Errorf("failed to save theme: %w", err)
	}

	that.logger.Info("theme changed", "theme", that.current)

	return that.current, nil
}
