package models

import (
	"fmt"
	"strings"
)

// Guest represents a wedding guest
type Guest struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email,omitempty"`
	Phone    string        `json:"phone,omitempty"`
	Category GuestCategory `json:"category"`
	Status   GuestStatus   `json:"status"`
	PlusOne  bool          `json:"plusOne"`
}

// GuestStatus represents the attendance confirmation status
type GuestStatus string

const (
	StatusPending   GuestStatus = "Pendente"
	StatusConfirmed GuestStatus = "Confirmado"
	StatusDeclined  GuestStatus = "Recusado"
)

// GuestStatuses lists the statuses in cycle order.
var GuestStatuses = []GuestStatus{StatusPending, StatusConfirmed, StatusDeclined}

// Valid reports whether s is one of the known statuses.
func (s GuestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined:
		return true
	}
	return false
}

// Next returns the status that follows s in the
// Pending -> Confirmed -> Declined -> Pending ring. Unknown values restart
// the ring at Pending.
func (s GuestStatus) Next() GuestStatus {
	switch s {
	case StatusPending:
		return StatusConfirmed
	case StatusConfirmed:
		return StatusDeclined
	default:
		return StatusPending
	}
}

// ParseGuestStatus accepts the stored value or an English alias.
func ParseGuestStatus(v string) (GuestStatus, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "pendente", "pending":
		return StatusPending, nil
	case "confirmado", "confirmed":
		return StatusConfirmed, nil
	case "recusado", "declined":
		return StatusDeclined, nil
	}
	return "", fmt.Errorf("unknown guest status %q", v)
}

// GuestCategory says which side of the couple a guest belongs to
type GuestCategory string

const (
	CategoryBride   GuestCategory = "Noiva"
	CategoryGroom   GuestCategory = "Noivo"
	CategoryFriends GuestCategory = "Amigos"
	CategoryWork    GuestCategory = "Trabalho"
	CategoryOther   GuestCategory = "Outros"
)

// Valid reports whether c is one of the known categories.
func (c GuestCategory) Valid() bool {
	switch c {
	case CategoryBride, CategoryGroom, CategoryFriends, CategoryWork, CategoryOther:
		return true
	}
	return false
}

// ParseGuestCategory accepts the stored value or an English alias.
func ParseGuestCategory(v string) (GuestCategory, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "noiva", "bride":
		return CategoryBride, nil
	case "noivo", "groom":
		return CategoryGroom, nil
	case "amigos", "friends":
		return CategoryFriends, nil
	case "trabalho", "work":
		return CategoryWork, nil
	case "outros", "other":
		return CategoryOther, nil
	}
	return "", fmt.Errorf("unknown guest category %q", v)
}

// Key returns the guest id.
func (g Guest) Key() string { return g.ID }

// Validate checks the shape of a stored guest.
func (g Guest) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("guest has empty id")
	}
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("guest %s: empty name", g.ID)
	}
	if !g.Category.Valid() {
		return fmt.Errorf("guest %s: invalid category %q", g.ID, g.Category)
	}
	if !g.Status.Valid() {
		return fmt.Errorf("guest %s: invalid status %q", g.ID, g.Status)
	}
	return nil
}

// ValidateGuests checks every guest and id uniqueness.
func ValidateGuests(guests []Guest) error {
	return validateAll(guests)
}
