package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// WeddingData describes the event itself. It is fixed for the lifetime of
// the process.
type WeddingData struct {
	Names    string          `json:"names"`
	Date     string          `json:"date"`
	Budget   decimal.Decimal `json:"budget"`
	Location string          `json:"location"`
}

// EventDate parses Date as a UTC calendar day.
func (w WeddingData) EventDate() (time.Time, error) {
	d, err := time.Parse(DateLayout, w.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad wedding date %q: %w", w.Date, err)
	}
	return d, nil
}

// ContextString is the short description handed to the assistant with
// every question.
func (w WeddingData) ContextString() string {
	return fmt.Sprintf("Casamento de %s, Orçamento: %s, Local: %s", w.Names, w.Budget.String(), w.Location)
}
