package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are stored as plain JSON numbers, matching what the web
	// dashboard wrote to local storage.
	decimal.MarshalJSONWithoutQuotes = true
}

// BudgetItem is one line of the wedding budget. Amounts share a single
// currency unit.
type BudgetItem struct {
	ID            string          `json:"id"`
	Category      string          `json:"category"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	ActualCost    decimal.Decimal `json:"actualCost"`
	Paid          decimal.Decimal `json:"paid"`
}

// Key returns the item id.
func (b BudgetItem) Key() string { return b.ID }

// Validate checks the shape of a stored budget item. Paid may exceed the
// actual cost.
func (b BudgetItem) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("budget item has empty id")
	}
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"estimatedCost", b.EstimatedCost},
		{"actualCost", b.ActualCost},
		{"paid", b.Paid},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("budget item %s: negative %s", b.ID, a.name)
		}
	}
	return nil
}

// ValidateBudget checks every item and id uniqueness.
func ValidateBudget(items []BudgetItem) error {
	return validateAll(items)
}
