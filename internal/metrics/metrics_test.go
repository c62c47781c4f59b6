package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"wedding-planner/internal/models"
)

func TestSeedAggregates(t *testing.T) {
	w := models.DefaultWedding()

	assert.Equal(t, 1, ConfirmedGuests(models.SeedGuests()))
	assert.Equal(t, 6, TotalGuestEstimate(models.SeedGuests()))
	assert.Equal(t, "22800", CurrentSpend(models.SeedBudget()).String())
	assert.Equal(t, "27200", RemainingBudget(w, models.SeedBudget()).String())
	assert.Equal(t, 25, TaskProgressPercent(models.SeedTasks()))
}

func TestTaskProgressPercent(t *testing.T) {
	tasks := func(done, total int) []models.Task {
		out := make([]models.Task, total)
		for i := 0; i < done; i++ {
			out[i].Completed = true
		}
		return out
	}
	tests := []struct {
		name        string
		done, total int
		want        int
	}{
		{"empty", 0, 0, 0},
		{"none done", 0, 3, 0},
		{"all done", 3, 3, 100},
		{"one third", 1, 3, 33},
		{"two thirds", 2, 3, 67},
		{"half rounds up", 1, 8, 13},
		{"one of two hundred", 1, 200, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TaskProgressPercent(tasks(tt.done, tt.total)))
		})
	}
}

func TestOverBudget(t *testing.T) {
	w := models.WeddingData{Budget: decimal.NewFromInt(1000)}
	items := []models.BudgetItem{{ID: "1", ActualCost: decimal.NewFromInt(1500)}}

	assert.Equal(t, "-500", RemainingBudget(w, items).String())

	chart := SpendChart(w, items)
	assert.Equal(t, "1500", chart[0].Value.String())
	assert.True(t, chart[1].Value.IsZero())
	assert.False(t, chart[1].Value.IsNegative())
}

func TestDaysUntil(t *testing.T) {
	event := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same instant", event, 0},
		{"one hour before", event.Add(-time.Hour), 1},
		{"exactly ten days", event.Add(-240 * time.Hour), 10},
		{"ten days and a bit", event.Add(-241 * time.Hour), 11},
		{"one hour after", event.Add(time.Hour), 0},
		{"two days after", event.Add(48 * time.Hour), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(event, tt.now))
		})
	}
}

func TestStatusOf(t *testing.T) {
	items := models.SeedBudget()
	assert.Equal(t, ItemOK, StatusOf(items[0]))
	assert.Equal(t, ItemOK, StatusOf(items[1]))
	assert.Equal(t, ItemPaid, StatusOf(items[2]))
	assert.Equal(t, ItemOverBudget, StatusOf(items[4]))
}

func TestTotals(t *testing.T) {
	totals := Totals(models.SeedBudget())
	assert.Equal(t, "51000", totals.Estimated.String())
	assert.Equal(t, "22800", totals.Actual.String())
	assert.Equal(t, "10800", totals.Paid.String())
}

func TestPendingTasks(t *testing.T) {
	got := PendingTasks(models.SeedTasks(), 2)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	}
	assert.Len(t, PendingTasks(models.SeedTasks(), -1), 3)
	assert.Empty(t, PendingTasks(nil, 4))
}

func TestFilterGuests(t *testing.T) {
	guests := models.SeedGuests()
	assert.Len(t, FilterGuests(guests, "", ""), 4)
	assert.Len(t, FilterGuests(guests, models.StatusPending, ""), 2)

	got := FilterGuests(guests, "", "LIMA")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Fernanda Lima", got[0].Name)
	}
	assert.Empty(t, FilterGuests(guests, models.StatusConfirmed, "costa"))
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	d := Summarize(models.DefaultWedding(), models.SeedGuests(), models.SeedBudget(), models.SeedTasks(), now)

	assert.Equal(t, 4, d.GuestCount)
	assert.Equal(t, 1, d.ConfirmedGuests)
	assert.Equal(t, "27200", d.RemainingBudget.String())
	assert.False(t, d.OverBudget)
	assert.Equal(t, 25, d.TaskProgress)
	assert.Equal(t, 1, d.CompletedTasks)
	assert.Equal(t, 10, d.DaysUntil)
	assert.Len(t, d.PendingTasks, 3)
}
