package storage

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"wedding-planner/internal/models"
)

// Collection describes one stored list: its key, the seed used when
// nothing usable is stored, and the shape check applied on load.
type Collection[T any] struct {
	Key      string
	Seed     func() []T
	Validate func([]T) error
}

// Load reads the collection. A missing key yields the seed. Stored data that
// does not decode or fails validation is logged and replaced by the seed;
// only backend read failures are returned.
func Load[T any](b Backend, c Collection[T], log zerolog.Logger) ([]T, error) {
	data, ok, err := b.Get(c.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", c.Key, err)
	}
	if !ok || len(data) == 0 {
		return c.Seed(), nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn().Err(err).Str("key", c.Key).Msg("Stored data is malformed, using seed data")
		return c.Seed(), nil
	}
	if items == nil {
		items = []T{}
	}
	if c.Validate != nil {
		if err := c.Validate(items); err != nil {
			log.Warn().Err(err).Str("key", c.Key).Msg("Stored data is invalid, using seed data")
			return c.Seed(), nil
		}
	}
	return items, nil
}

// Save serializes the whole collection and overwrites the stored value.
func Save[T any](b Backend, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	if err := b.Set(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// The three planner collections.
var (
	Guests = Collection[models.Guest]{Key: KeyGuests, Seed: models.SeedGuests, Validate: models.ValidateGuests}
	Budget = Collection[models.BudgetItem]{Key: KeyBudget, Seed: models.SeedBudget, Validate: models.ValidateBudget}
	Tasks  = Collection[models.Task]{Key: KeyTasks, Seed: models.SeedTasks, Validate: models.ValidateTasks}
)
