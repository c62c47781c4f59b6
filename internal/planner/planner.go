// Package planner owns the application state: the three collections and the
// wedding data. Each change runs through an editor, is saved, and only then
// becomes the current snapshot.
package planner

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"wedding-planner/internal/metrics"
	"wedding-planner/internal/models"
	"wedding-planner/internal/storage"
)

// ErrNotFound is returned by lookups for unknown ids. Editing operations
// report a missing id through their found result instead.
var ErrNotFound = errors.New("not found")

// Config holds the planner's collaborators. Nil IDs and Now select a fresh
// id source and time.Now.
type Config struct {
	Wedding models.WeddingData
	IDs     *models.IDSource
	Now     func() time.Time
}

// Planner is the application-state container shared by every front end.
type Planner struct {
	mu      sync.RWMutex
	backend storage.Backend
	wedding models.WeddingData
	ids     *models.IDSource
	now     func() time.Time
	log     zerolog.Logger

	guests []models.Guest
	budget []models.BudgetItem
	tasks  []models.Task
}

// New loads the collections from backend, falling back to seed data.
func New(backend storage.Backend, cfg Config, log zerolog.Logger) (*Planner, error) {
	p := &Planner{
		backend: backend,
		wedding: cfg.Wedding,
		ids:     cfg.IDs,
		now:     cfg.Now,
		log:     log.With().Str("component", "Planner").Logger(),
	}
	if p.ids == nil {
		p.ids = models.NewIDSource()
	}
	if p.now == nil {
		p.now = time.Now
	}

	var err error
	if p.guests, err = storage.Load(backend, storage.Guests, p.log); err != nil {
		return nil, err
	}
	if p.budget, err = storage.Load(backend, storage.Budget, p.log); err != nil {
		return nil, err
	}
	if p.tasks, err = storage.Load(backend, storage.Tasks, p.log); err != nil {
		return nil, err
	}

	p.log.Debug().
		Int("guests", len(p.guests)).
		Int("budget_items", len(p.budget)).
		Int("tasks", len(p.tasks)).
		Msg("Loaded planner state")
	return p, nil
}

// Wedding returns the wedding data.
func (p *Planner) Wedding() models.WeddingData {
	return p.wedding
}

// Now returns the planner's current time.
func (p *Planner) Now() time.Time {
	return p.now()
}

// IDs returns the planner's id source, shared with the chat session.
func (p *Planner) IDs() *models.IDSource {
	return p.ids
}

// Guests returns a copy of the guest list.
func (p *Planner) Guests() []models.Guest {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.guests)
}

// Budget returns a copy of the budget.
func (p *Planner) Budget() []models.BudgetItem {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.budget)
}

// Tasks returns a copy of the task list.
func (p *Planner) Tasks() []models.Task {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.tasks)
}

// Dashboard computes the overview from the current snapshots.
func (p *Planner) Dashboard() metrics.Dashboard {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return metrics.Summarize(p.wedding, p.guests, p.budget, p.tasks, p.now())
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// commit saves next under key and, if that worked, installs it with set.
// Callers hold p.mu.
func commit[T any](p *Planner, key string, next []T, set func([]T)) error {
	if err := storage.Save(p.backend, key, next); err != nil {
		p.log.Error().Err(err).Str("key", key).Msg("Failed to persist change")
		return fmt.Errorf("failed to persist change: %w", err)
	}
	set(next)
	return nil
}
