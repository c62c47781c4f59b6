package metrics

import (
	"github.com/shopspring/decimal"

	"wedding-planner/internal/models"
)

// ItemStatus flags a budget line for display.
type ItemStatus string

const (
	ItemPaid       ItemStatus = "pago"
	ItemOverBudget ItemStatus = "alerta"
	ItemOK         ItemStatus = "ok"
)

// StatusOf classifies a line: fully paid lines with a cost are paid, lines
// costing more than estimated are over budget, everything else is ok.
func StatusOf(item models.BudgetItem) ItemStatus {
	switch {
	case item.ActualCost.IsPositive() && item.Paid.GreaterThanOrEqual(item.ActualCost):
		return ItemPaid
	case item.ActualCost.GreaterThan(item.EstimatedCost):
		return ItemOverBudget
	default:
		return ItemOK
	}
}

// BudgetTotals sums each amount column of the budget.
type BudgetTotals struct {
	Estimated decimal.Decimal `json:"estimated"`
	Actual    decimal.Decimal `json:"actual"`
	Paid      decimal.Decimal `json:"paid"`
}

// Totals sums the budget columns.
func Totals(items []models.BudgetItem) BudgetTotals {
	t := BudgetTotals{Estimated: decimal.Zero, Actual: decimal.Zero, Paid: decimal.Zero}
	for _, item := range items {
		t.Estimated = t.Estimated.Add(item.EstimatedCost)
		t.Actual = t.Actual.Add(item.ActualCost)
		t.Paid = t.Paid.Add(item.Paid)
	}
	return t
}
