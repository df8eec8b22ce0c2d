package sqlite_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/duskmode/internal/domain/repository"
	"github.com/bnema/duskmode/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 8
	var wg sync.WaitGroup
	dbs := make([]any, goroutines)
	errs := make([]error, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
	assert.True(t, lazy.IsInitialized())
}

func TestLazySettingsRepository_UnavailableStore(t *testing.T) {
	ctx := testCtx()

	// A regular file where the database directory should be makes opening fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "sub", "settings.db"))

	repo := sqlite.NewLazySettingsRepository(lazy)

	_, err := repo.GetGlobal(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrStoreUnavailable))
	assert.False(t, lazy.IsInitialized())

	// The next access retries once the path is usable.
	require.NoError(t, os.Remove(blocker))
	got, err := repo.GetGlobal(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, lazy.Close())
}
