package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

type memoryPreference struct {
	values map[string]string
}

// NewMemoryPreferenceRepository keeps preferences for the lifetime of the process only.
func NewMemoryPreferenceRepository() PreferenceRepository {
	return &memoryPreference{
		values: make(map[string]string),
	}
}

func (that *memoryPreference) Get(_ context.Context, key string) (string, error) {
	value, ok := that.values[key]
	if !ok {
		return "", apperror.ErrPreferenceNotFound
	}

	return value, nil
}

func (that *memoryPreference) Set(_ context.Context, key, value string) error {
	that.values[key] = value

	return nil
}
