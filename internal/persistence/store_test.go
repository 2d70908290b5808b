package persistence

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnaakkaaii/numbermerge/internal/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	game, err := domain.NewGame(domain.DefaultConfig(), rand.New(rand.NewSource(8)))
	require.NoError(t, err)
	for i := 0; i < 15; i++ {
		_, err := game.Move(domain.Directions[i%len(domain.Directions)])
		require.NoError(t, err)
	}

	store := NewStore(filepath.Join(t.TempDir(), "save.json"))
	assert.False(t, store.Exists())
	require.NoError(t, store.Save(game.Snapshot()))
	assert.True(t, store.Exists())

	state, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, game.Snapshot(), state)

	restored, err := domain.Restore(state, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, game.Snapshot(), restored.Snapshot())
}

func TestStoreFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store := NewStore(path)

	require.NoError(t, store.Save(domain.State{
		Goal:  2048,
		Score: 4,
		Moves: 1,
		Board: domain.BoardState{Size: 1, Cells: []int{4}},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n    \"goal\": 2048,\n    \"score\": 4,\n    \"moves\": 1,\n    \"board\": {"))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must be cleaned up")
}

func TestStoreOverwrite(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save.json"))
	first := domain.State{Goal: 2048, Board: domain.BoardState{Size: 1, Cells: []int{2}}}
	second := domain.State{Goal: 2048, Score: 8, Moves: 2, Board: domain.BoardState{Size: 1, Cells: []int{8}}}

	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, second, state)
}

func TestStoreMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSave)
	assert.ErrorIs(t, store.Remove(), ErrNoSave)
}

func TestStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSave)
}

func TestStoreRemove(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save.json"))
	require.NoError(t, store.Save(domain.State{Goal: 2048, Board: domain.BoardState{Size: 1, Cells: []int{0}}}))
	require.NoError(t, store.Remove())
	assert.False(t, store.Exists())
}

func TestNewStoreDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewStore("").Path())
}
