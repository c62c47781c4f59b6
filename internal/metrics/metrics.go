// Package metrics computes the dashboard aggregates. Everything here is a
// pure function of the snapshots it is given; nothing is cached.
package metrics

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"wedding-planner/internal/models"
)

// ConfirmedGuests counts guests whose status is Confirmed.
func ConfirmedGuests(guests []models.Guest) int {
	n := 0
	for _, g := range guests {
		if g.Status == models.StatusConfirmed {
			n++
		}
	}
	return n
}

// TotalGuestEstimate is the number of invitations plus one seat for every
// plus-one. It ignores status.
func TotalGuestEstimate(guests []models.Guest) int {
	n := len(guests)
	for _, g := range guests {
		if g.PlusOne {
			n++
		}
	}
	return n
}

// CurrentSpend sums the actual cost of every budget item.
func CurrentSpend(items []models.BudgetItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.ActualCost)
	}
	return sum
}

// RemainingBudget is the ceiling minus current spend. It goes negative when
// the wedding is over budget.
func RemainingBudget(w models.WeddingData, items []models.BudgetItem) decimal.Decimal {
	return w.Budget.Sub(CurrentSpend(items))
}

// ChartSlice is one wedge of the spend chart.
type ChartSlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// SpendChart splits the ceiling into spent and remaining. The remaining
// wedge never drops below zero.
func SpendChart(w models.WeddingData, items []models.BudgetItem) []ChartSlice {
	remaining := RemainingBudget(w, items)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return []ChartSlice{
		{Name: "Gasto", Value: CurrentSpend(items)},
		{Name: "Restante", Value: remaining},
	}
}

// CompletedTasks counts completed tasks.
func CompletedTasks(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// TaskProgressPercent is the rounded share of completed tasks, halves
// rounding up. An empty list yields 0.
func TaskProgressPercent(tasks []models.Task) int {
	total := len(tasks)
	if total == 0 {
		return 0
	}
	done := CompletedTasks(tasks)
	return (200*done + total) / (2 * total)
}

// DaysUntil is the number of days from now to the event, rounded up. It is
// negative once the event has passed.
func DaysUntil(event, now time.Time) int {
	return int(math.Ceil(event.Sub(now).Hours() / 24))
}

// PendingTasks returns up to limit incomplete tasks in list order. A
// negative limit returns all of them.
func PendingTasks(tasks []models.Task, limit int) []models.Task {
	out := make([]models.Task, 0)
	for _, t := range tasks {
		if limit >= 0 && len(out) >= limit {
			break
		}
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// FilterGuests keeps guests whose status matches (any status when status is
// empty) and whose name contains term, ignoring case.
func FilterGuests(guests []models.Guest, status models.GuestStatus, term string) []models.Guest {
	term = strings.ToLower(term)
	out := make([]models.Guest, 0, len(guests))
	for _, g := range guests {
		if status != "" && g.Status != status {
			continue
		}
		if !strings.Contains(strings.ToLower(g.Name), term) {
			continue
		}
		out = append(out, g)
	}
	return out
}
