package models

import "github.com/shopspring/decimal"

// DefaultWedding is used when no wedding data is configured.
func DefaultWedding() WeddingData {
	return WeddingData{
		Names:    "Ana caroline ferreira lima pimenta & Rafael dalazen araujo ",
		Date:     "2025-01-16",
		Budget:   decimal.NewFromInt(50000),
		Location: "vitoria, ES",
	}
}

// SeedGuests is the guest list used when nothing is stored yet.
func SeedGuests() []Guest {
	return []Guest{
		{ID: "1", Name: "Roberto Silva", Category: CategoryBride, Status: StatusConfirmed, PlusOne: true},
		{ID: "2", Name: "Mariana Costa", Category: CategoryGroom, Status: StatusPending},
		{ID: "3", Name: "Carlos Oliveira", Category: CategoryFriends, Status: StatusDeclined, PlusOne: true},
		{ID: "4", Name: "Fernanda Lima", Category: CategoryWork, Status: StatusPending},
	}
}

// SeedBudget is the budget used when nothing is stored yet.
func SeedBudget() []BudgetItem {
	item := func(id, category string, estimated, actual, paid int64) BudgetItem {
		return BudgetItem{
			ID:            id,
			Category:      category,
			EstimatedCost: decimal.NewFromInt(estimated),
			ActualCost:    decimal.NewFromInt(actual),
			Paid:          decimal.NewFromInt(paid),
		}
	}
	return []BudgetItem{
		item("1", "Local", 15000, 14500, 5000),
		item("2", "Buffet", 20000, 0, 0),
		item("3", "Fotografia", 5000, 4800, 4800),
		item("4", "Decoração", 8000, 0, 0),
		item("5", "Música", 3000, 3500, 1000),
	}
}

// SeedTasks is the task list used when nothing is stored yet.
func SeedTasks() []Task {
	return []Task{
		{ID: "1", Title: "Contratar Buffet", Priority: PriorityHigh, DueDate: "2024-06-01"},
		{ID: "2", Title: "Enviar Save the Date", Completed: true, Priority: PriorityMedium, DueDate: "2024-05-15"},
		{ID: "3", Title: "Escolher vestido", Priority: PriorityHigh, DueDate: "2024-07-01"},
		{ID: "4", Title: "Degustação de doces", Priority: PriorityLow, DueDate: "2024-08-20"},
	}
}
