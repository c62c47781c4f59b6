package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"wedding-planner/internal/models"
)

// dashboardTaskLimit is how many open tasks the dashboard lists.
const dashboardTaskLimit = 4

// Dashboard bundles every aggregate shown on the overview screen.
type Dashboard struct {
	Wedding            models.WeddingData `json:"wedding"`
	GuestCount         int                `json:"guestCount"`
	ConfirmedGuests    int                `json:"confirmedGuests"`
	TotalGuestEstimate int                `json:"totalGuestEstimate"`
	CurrentSpend       decimal.Decimal    `json:"currentSpend"`
	RemainingBudget    decimal.Decimal    `json:"remainingBudget"`
	OverBudget         bool               `json:"overBudget"`
	SpendChart         []ChartSlice       `json:"spendChart"`
	TaskCount          int                `json:"taskCount"`
	CompletedTasks     int                `json:"completedTasks"`
	TaskProgress       int                `json:"taskProgress"`
	DaysUntil          int                `json:"daysUntil"`
	PendingTasks       []models.Task      `json:"pendingTasks"`
}

// Summarize computes the dashboard for the given snapshots at time now.
// An unparsable wedding date leaves DaysUntil at zero.
func Summarize(w models.WeddingData, guests []models.Guest, budget []models.BudgetItem, tasks []models.Task, now time.Time) Dashboard {
	remaining := RemainingBudget(w, budget)
	d := Dashboard{
		Wedding:            w,
		GuestCount:         len(guests),
		ConfirmedGuests:    ConfirmedGuests(guests),
		TotalGuestEstimate: TotalGuestEstimate(guests),
		CurrentSpend:       CurrentSpend(budget),
		RemainingBudget:    remaining,
		OverBudget:         remaining.IsNegative(),
		SpendChart:         SpendChart(w, budget),
		TaskCount:          len(tasks),
		CompletedTasks:     CompletedTasks(tasks),
		TaskProgress:       TaskProgressPercent(tasks),
		PendingTasks:       PendingTasks(tasks, dashboardTaskLimit),
	}
	if event, err := w.EventDate(); err == nil {
		d.DaysUntil = DaysUntil(event, now)
	}
	return d
}
