package application

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/testing/suite"
)

func testConfig(backend string) *config.Config {
	return &config.Config{
		Preferences: config.Preferences{
			Backend: backend,
			Key:     "ttt_theme",
			Timeout: time.Second,
		},
	}
}

func TestOpenPreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		// Given: the memory backend
		conf := testConfig(config.BackendMemory)

		// When: opening preferences
		prefs, closer, err := openPreferences(ctx, suite.NewLogger(), conf)

		// Then: a working repository is returned
		require.NoError(t, err)
		require.NoError(t, prefs.Set(ctx, "ttt_theme", "dark"))
		assert.NoError(t, closer.Close())
	})

	t.Run("SQLite survives reopening", func(t *testing.T) {
		// Given: the sqlite backend in a temp dir
		conf := testConfig(config.BackendSQLite)
		conf.SQLiteStoragePath = filepath.Join(t.TempDir(), "tictactoe.db")

		prefs, closer, err := openPreferences(ctx, suite.NewLogger(), conf)
		require.NoError(t, err)
		require.NoError(t, prefs.Set(ctx, "ttt_theme", "dark"))
		require.NoError(t, closer.Close())

		// When: opening the same file again
		prefs, closer, err = openPreferences(ctx, suite.NewLogger(), conf)
		require.NoError(t, err)
		defer closer.Close()

		// Then: the stored value is still there
		value, err := prefs.Get(ctx, "ttt_theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", value)
	})

	t.Run("Redis without address", func(t *testing.T) {
		// Given: the redis backend with no host
		conf := testConfig(config.BackendRedis)

		// When: opening preferences
		_, _, err := openPreferences(ctx, suite.NewLogger(), conf)

		// Then: the missing address is reported
		require.ErrorIs(t, err, apperror.ErrStorageAddrNotFound)
	})

	t.Run("Unknown backend", func(t *testing.T) {
		// Given: an unsupported backend name
		conf := testConfig("postgres")

		// When: opening preferences
		_, _, err := openPreferences(ctx, suite.NewLogger(), conf)

		// Then: start-up is refused
		require.ErrorIs(t, err, apperror.ErrUnknownBackend)
	})
}
