package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-planner/internal/models"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFileBackend(filepath.Join(dir, "files"))
	require.NoError(t, err)
	sqlite, err := NewSQLiteBackend(filepath.Join(dir, "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Backend{
		"file":   file,
		"sqlite": sqlite,
		"memory": NewMemoryBackend(),
	}
}

func TestBackendGetSet(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := b.Get(KeyGuests)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, b.Set(KeyGuests, []byte(`[1]`)))
			require.NoError(t, b.Set(KeyGuests, []byte(`[2]`)))

			v, ok, err := b.Get(KeyGuests)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[2]`, string(v))
		})
	}
}

func TestBackendRejectsPathKeys(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, b.Set("../escape", []byte(`[]`)))
			_, _, err := b.Get("../escape")
			assert.Error(t, err)
			_, _, err = b.Get("")
			assert.Error(t, err)
		})
	}
}

func TestFileBackendWritesReadableFiles(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	require.NoError(t, err)

	require.NoError(t, b.Set(KeyGuests, []byte(`[]`)))
	info, err := os.Stat(filepath.Join(dir, KeyGuests+".json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestLoadMissingUsesSeed(t *testing.T) {
	got, err := Load(NewMemoryBackend(), Guests, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.SeedGuests(), got)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			guests := []models.Guest{
				{ID: "a", Name: "Joana", Email: "joana@example.com", Category: models.CategoryFriends, Status: models.StatusConfirmed, PlusOne: true},
			}
			require.NoError(t, Save(b, KeyGuests, guests))
			got, err := Load(b, Guests, zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, guests, got)

			tasks := models.SeedTasks()[:2]
			require.NoError(t, Save(b, KeyTasks, tasks))
			gotTasks, err := Load(b, Tasks, zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, tasks, gotTasks)

			require.NoError(t, Save(b, KeyBudget, models.SeedBudget()))
			gotBudget, err := Load(b, Budget, zerolog.Nop())
			require.NoError(t, err)
			require.Len(t, gotBudget, 5)
			assert.Equal(t, "14500", gotBudget[0].ActualCost.String())
		})
	}
}

func TestLoadEmptyListStaysEmpty(t *testing.T) {
	b := NewMemoryBackend()
	require.NoError(t, Save[models.Task](b, KeyTasks, nil))

	got, err := Load(b, Tasks, zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadMalformedFallsBackToSeed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"wrong shape", `{"id":"1"}`},
		{"bad status", `[{"id":"1","name":"X","category":"Outros","status":"Talvez","plusOne":false}]`},
		{"missing name", `[{"id":"1","name":"","category":"Outros","status":"Pendente","plusOne":false}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMemoryBackend()
			require.NoError(t, b.Set(KeyGuests, []byte(tt.data)))
			got, err := Load(b, Guests, zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, models.SeedGuests(), got)
		})
	}
}

type failingBackend struct{ MemoryBackend }

func (failingBackend) Get(string) ([]byte, bool, error) { return nil, false, errors.New("disk gone") }
func (failingBackend) Set(string, []byte) error        { return errors.New("disk full") }

func TestBackendErrorsAreReturned(t *testing.T) {
	var b failingBackend
	_, err := Load(&b, Guests, zerolog.Nop())
	assert.ErrorContains(t, err, "disk gone")
	assert.ErrorContains(t, Save(&b, KeyGuests, models.SeedGuests()), "disk full")
}

func TestFileBackendLayout(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	require.NoError(t, err)
	require.NoError(t, Save(b, KeyBudget, models.SeedBudget()))

	data, err := os.ReadFile(filepath.Join(dir, KeyBudget+".json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"actualCost": 14500`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestOpenDrivers(t *testing.T) {
	dir := t.TempDir()
	for _, driver := range []string{"file", "sqlite", "memory"} {
		b, err := Open(driver, dir)
		require.NoError(t, err, driver)
		b.Close()
	}
	_, err := Open("redis", dir)
	assert.Error(t, err)
}
