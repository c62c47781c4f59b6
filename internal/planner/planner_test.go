package planner

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-planner/internal/editor"
	"wedding-planner/internal/models"
	"wedding-planner/internal/storage"
)

var testNow = time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)

func newTestPlanner(t *testing.T, b storage.Backend) *Planner {
	t.Helper()
	p, err := New(b, Config{
		Wedding: models.DefaultWedding(),
		Now:     func() time.Time { return testNow },
	}, zerolog.Nop())
	require.NoError(t, err)
	return p
}

func stored[T any](t *testing.T, b storage.Backend, key string) []T {
	t.Helper()
	data, ok, err := b.Get(key)
	require.NoError(t, err)
	require.True(t, ok, "key %s was never written", key)
	var out []T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestSeedScenarios(t *testing.T) {
	p := newTestPlanner(t, storage.NewMemoryBackend())
	d := p.Dashboard()

	assert.Equal(t, 1, d.ConfirmedGuests)
	assert.Equal(t, "22800", d.CurrentSpend.String())
	assert.Equal(t, "27200", d.RemainingBudget.String())
	assert.Equal(t, 25, d.TaskProgress)
	assert.Equal(t, 10, d.DaysUntil)
}

func TestCyclePendingGuestReturnsToPending(t *testing.T) {
	b := storage.NewMemoryBackend()
	p := newTestPlanner(t, b)

	var g models.Guest
	for i := 0; i < 3; i++ {
		var found bool
		var err error
		g, found, err = p.CycleGuestStatus("2")
		require.NoError(t, err)
		require.True(t, found)
	}
	assert.Equal(t, models.StatusPending, g.Status)
	assert.Equal(t, p.Guests(), stored[models.Guest](t, b, storage.KeyGuests))
}

func TestMutationsArePersisted(t *testing.T) {
	b := storage.NewMemoryBackend()
	p := newTestPlanner(t, b)

	g, err := p.AddGuest(editor.NewGuest{Name: "Paula", Phone: "5527999990000"})
	require.NoError(t, err)
	guests := stored[models.Guest](t, b, storage.KeyGuests)
	require.Len(t, guests, 5)
	assert.Equal(t, g, guests[4])

	task, err := p.AddTask("Provar o bolo")
	require.NoError(t, err)
	tasks := stored[models.Task](t, b, storage.KeyTasks)
	require.Len(t, tasks, 5)
	assert.Equal(t, task, tasks[0])

	paid := decimal.NewFromInt(14500)
	found, err := p.UpdateBudgetItem("1", editor.BudgetPatch{Paid: &paid})
	require.NoError(t, err)
	require.True(t, found)
	budget := stored[models.BudgetItem](t, b, storage.KeyBudget)
	assert.Equal(t, "14500", budget[0].Paid.String())

	// A fresh planner sees the same state.
	reloaded := newTestPlanner(t, b)
	assert.Equal(t, p.Guests(), reloaded.Guests())
	assert.Equal(t, p.Tasks(), reloaded.Tasks())
	assert.Equal(t, 1, reloaded.Dashboard().ConfirmedGuests)
}

func TestNotFoundDoesNotWrite(t *testing.T) {
	b := storage.NewMemoryBackend()
	p := newTestPlanner(t, b)

	name := "X"
	found, err := p.UpdateGuest("nope", editor.GuestPatch{Name: &name})
	require.NoError(t, err)
	assert.False(t, found)

	found, err = p.RemoveGuest("nope")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = p.ToggleTask("nope")
	require.NoError(t, err)
	assert.False(t, found)

	for _, key := range []string{storage.KeyGuests, storage.KeyBudget, storage.KeyTasks} {
		_, ok, err := b.Get(key)
		require.NoError(t, err)
		assert.False(t, ok, "%s written on a no-op", key)
	}
}

func TestInvalidPatchIsRejected(t *testing.T) {
	p := newTestPlanner(t, storage.NewMemoryBackend())
	empty := ""
	_, err := p.UpdateGuest("1", editor.GuestPatch{Name: &empty})
	assert.ErrorIs(t, err, editor.ErrInvalidPatch)
	g, err := p.Guest("1")
	require.NoError(t, err)
	assert.Equal(t, "Roberto Silva", g.Name)
}

type brokenBackend struct {
	*storage.MemoryBackend
}

func (brokenBackend) Set(string, []byte) error { return errors.New("quota exceeded") }

func TestWriteFailureKeepsSnapshot(t *testing.T) {
	p := newTestPlanner(t, brokenBackend{storage.NewMemoryBackend()})

	_, err := p.AddGuest(editor.NewGuest{Name: "Paula"})
	assert.ErrorContains(t, err, "quota exceeded")
	assert.Len(t, p.Guests(), 4)

	_, _, err = p.CycleGuestStatus("2")
	assert.Error(t, err)
	g, _ := p.Guest("2")
	assert.Equal(t, models.StatusPending, g.Status)
}

func TestSnapshotsAreCopies(t *testing.T) {
	p := newTestPlanner(t, storage.NewMemoryBackend())
	guests := p.Guests()
	guests[0].Name = "changed"
	g, _ := p.Guest(guests[0].ID)
	assert.Equal(t, "Roberto Silva", g.Name)
}

func TestGuestByPhone(t *testing.T) {
	p := newTestPlanner(t, storage.NewMemoryBackend())
	added, err := p.AddGuest(editor.NewGuest{Name: "Paula", Phone: "5527999990000"})
	require.NoError(t, err)

	g, err := p.GuestByPhone("5527999990000")
	require.NoError(t, err)
	assert.Equal(t, added.ID, g.ID)

	_, err = p.GuestByPhone("5500000000000")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = p.GuestByPhone("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileBackedRoundTrip(t *testing.T) {
	b, err := storage.NewFileBackend(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	p := newTestPlanner(t, b)

	task, err := p.AddTask("")
	require.NoError(t, err)
	_, found, err := p.ToggleTask(task.ID)
	require.NoError(t, err)
	require.True(t, found)
	removed, err := p.RemoveBudgetItem("2")
	require.NoError(t, err)
	require.True(t, removed)

	reloaded := newTestPlanner(t, b)
	assert.Equal(t, p.Tasks(), reloaded.Tasks())
	assert.Len(t, reloaded.Budget(), 4)
	assert.Equal(t, 40, reloaded.Dashboard().TaskProgress)
}
