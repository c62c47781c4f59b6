package planner

import (
	"wedding-planner/internal/editor"
	"wedding-planner/internal/models"
	"wedding-planner/internal/storage"
)

func (p *Planner) setBudget(b []models.BudgetItem) { p.budget = b }

// AddBudgetItem appends a budget line.
func (p *Planner) AddBudgetItem(category string, patch editor.BudgetPatch) (models.BudgetItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, item, err := editor.AddBudgetItem(p.budget, category, patch, p.ids.New(p.now()))
	if err != nil {
		return models.BudgetItem{}, err
	}
	if err := commit(p, storage.KeyBudget, next, p.setBudget); err != nil {
		return models.BudgetItem{}, err
	}
	return item, nil
}

// UpdateBudgetItem merges patch into the budget line.
func (p *Planner) UpdateBudgetItem(id string, patch editor.BudgetPatch) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, found, err := editor.UpdateBudgetItem(p.budget, id, patch)
	if err != nil || !found {
		return false, err
	}
	return true, commit(p, storage.KeyBudget, next, p.setBudget)
}

// RemoveBudgetItem deletes the budget line.
func (p *Planner) RemoveBudgetItem(id string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, found := editor.RemoveBudgetItem(p.budget, id)
	if !found {
		return false, nil
	}
	return true, commit(p, storage.KeyBudget, next, p.setBudget)
}
