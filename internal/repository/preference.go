package repository

import (
	"context"
)

// PreferenceRepository stores single string values under fixed keys.
// Get returns apperror.ErrPreferenceNotFound when nothing is stored.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
