package editor

import (
	"strings"

	"github.com/shopspring/decimal"

	"wedding-planner/internal/models"
)

// BudgetPatch lists the budget item fields that may be changed.
type BudgetPatch struct {
	Category      *string
	EstimatedCost *decimal.Decimal
	ActualCost    *decimal.Decimal
	Paid          *decimal.Decimal
}

// Validate checks the patch before it is merged.
func (p BudgetPatch) Validate() error {
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		return invalid("budget category must not be empty")
	}
	amounts := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"estimated cost", p.EstimatedCost},
		{"actual cost", p.ActualCost},
		{"paid", p.Paid},
	}
	for _, a := range amounts {
		if a.value != nil && a.value.IsNegative() {
			return invalid("%s must not be negative", a.name)
		}
	}
	return nil
}

// Apply merges the patch into b.
func (p BudgetPatch) Apply(b models.BudgetItem) models.BudgetItem {
	if p.Category != nil {
		b.Category = strings.TrimSpace(*p.Category)
	}
	if p.EstimatedCost != nil {
		b.EstimatedCost = *p.EstimatedCost
	}
	if p.ActualCost != nil {
		b.ActualCost = *p.ActualCost
	}
	if p.Paid != nil {
		b.Paid = *p.Paid
	}
	return b
}

// AddBudgetItem appends a line with zero amounts, then applies p to it.
func AddBudgetItem(items []models.BudgetItem, category string, p BudgetPatch, id string) ([]models.BudgetItem, models.BudgetItem, error) {
	p.Category = &category
	if err := p.Validate(); err != nil {
		return items, models.BudgetItem{}, err
	}
	item := p.Apply(models.BudgetItem{ID: id})
	return Append(items, item), item, nil
}

// UpdateBudgetItem merges p into the item with the given id.
func UpdateBudgetItem(items []models.BudgetItem, id string, p BudgetPatch) ([]models.BudgetItem, bool, error) {
	if err := p.Validate(); err != nil {
		return items, false, err
	}
	out, found := Replace(items, id, p.Apply)
	return out, found, nil
}

// RemoveBudgetItem drops the item with the given id.
func RemoveBudgetItem(items []models.BudgetItem, id string) ([]models.BudgetItem, bool) {
	return Remove(items, id)
}
