package planner

import (
	"strings"

	"wedding-planner/internal/editor"
	"wedding-planner/internal/models"
	"wedding-planner/internal/storage"
)

func (p *Planner) setGuests(g []models.Guest) { p.guests = g }

// Guest looks up a guest by id.
func (p *Planner) Guest(id string) (models.Guest, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	g, ok := editor.Find(p.guests, id)
	if !ok {
		return models.Guest{}, ErrNotFound
	}
	return g, nil
}

// GuestByPhone finds the guest with the given normalized phone number.
func (p *Planner) GuestByPhone(phone string) (models.Guest, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, g := range p.guests {
		if g.Phone != "" && strings.EqualFold(g.Phone, phone) {
			return g, nil
		}
	}
	return models.Guest{}, ErrNotFound
}

// AddGuest appends a new pending guest.
func (p *Planner) AddGuest(n editor.NewGuest) (models.Guest, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, g, err := editor.AddGuest(p.guests, n, p.ids.New(p.now()))
	if err != nil {
		return models.Guest{}, err
	}
	if err := commit(p, storage.KeyGuests, next, p.setGuests); err != nil {
		return models.Guest{}, err
	}
	p.log.Info().Str("guest_id", g.ID).Str("name", g.Name).Msg("Guest added")
	return g, nil
}

// UpdateGuest merges patch into the guest. found is false for unknown ids,
// in which case nothing is written.
func (p *Planner) UpdateGuest(id string, patch editor.GuestPatch) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, found, err := editor.UpdateGuest(p.guests, id, patch)
	if err != nil || !found {
		return false, err
	}
	return true, commit(p, storage.KeyGuests, next, p.setGuests)
}

// RemoveGuest deletes the guest.
func (p *Planner) RemoveGuest(id string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, found := editor.RemoveGuest(p.guests, id)
	if !found {
		return false, nil
	}
	return true, commit(p, storage.KeyGuests, next, p.setGuests)
}

// CycleGuestStatus moves the guest to the next status and returns the
// updated record.
func (p *Planner) CycleGuestStatus(id string) (models.Guest, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, found := editor.CycleGuestStatus(p.guests, id)
	if !found {
		return models.Guest{}, false, nil
	}
	if err := commit(p, storage.KeyGuests, next, p.setGuests); err != nil {
		return models.Guest{}, true, err
	}
	g, _ := editor.Find(next, id)
	return g, true, nil
}
