package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "corpus.db"), store.Path())

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestReplaceAndAll_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	passages := []domain.Passage{
		{ID: "p-1", Source: "Text One", Themes: []string{"truth", "speech"}, Text: "Speak the truth."},
		{ID: "", Source: "Text Two", Themes: nil, Text: "Anonymous wisdom."},
		{ID: "p-3", Source: "Text Three", Themes: []string{"duty"}, Text: "Do your duty."},
	}

	require.NoError(t, store.Replace(ctx, passages))

	got, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "p-1", got[0].ID)
	assert.Equal(t, []string{"truth", "speech"}, got[0].Themes)
	assert.Equal(t, "Anonymous wisdom.", got[1].Text)
	assert.Empty(t, got[1].ID)
	assert.Equal(t, "Do your duty.", got[2].Text)
}

func TestReplace_SwapsContents(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, []domain.Passage{
		{ID: "old", Text: "old corpus"},
	}))
	require.NoError(t, store.Replace(ctx, []domain.Passage{
		{ID: "new-1", Text: "new corpus"},
		{ID: "new-2", Text: "more new corpus"},
	}))

	got, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new-1", got[0].ID)
	assert.Equal(t, "new-2", got[1].ID)
}

func TestMigrate_Idempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Replace(context.Background(), []domain.Passage{
		{ID: "p", Text: "persists"},
	}))
	require.NoError(t, store.Close())

	// Reopen: migrations must not re-run or clobber data.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
