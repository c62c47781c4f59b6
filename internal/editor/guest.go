package editor

import (
	"net/mail"
	"strings"

	"wedding-planner/internal/models"
)

// NewGuest holds what the user supplies when adding a guest. Zero
// values select the defaults: category Other, no plus-one.
type NewGuest struct {
	Name     string
	Email    string
	Phone    string
	Category models.GuestCategory
	PlusOne  bool
}

// GuestPatch lists the guest fields that may be changed. Nil fields are
// left alone.
type GuestPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Category *models.GuestCategory
	Status   *models.GuestStatus
	PlusOne  *bool
}

func validEmail(v string) bool {
	if v == "" {
		return true
	}
	_, err := mail.ParseAddress(v)
	return err == nil
}

// Validate checks the patch before it is merged.
func (p GuestPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return invalid("guest name must not be empty")
	}
	if p.Email != nil && !validEmail(*p.Email) {
		return invalid("bad email %q", *p.Email)
	}
	if p.Category != nil && !p.Category.Valid() {
		return invalid("unknown guest category %q", *p.Category)
	}
	if p.Status != nil && !p.Status.Valid() {
		return invalid("unknown guest status %q", *p.Status)
	}
	return nil
}

// Apply merges the patch into g.
func (p GuestPatch) Apply(g models.Guest) models.Guest {
	if p.Name != nil {
		g.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		g.Email = *p.Email
	}
	if p.Phone != nil {
		g.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	if p.PlusOne != nil {
		g.PlusOne = *p.PlusOne
	}
	return g
}

// AddGuest appends a pending guest with the given id.
func AddGuest(guests []models.Guest, n NewGuest, id string) ([]models.Guest, models.Guest, error) {
	name := strings.TrimSpace(n.Name)
	if name == "" {
		return guests, models.Guest{}, invalid("guest name must not be empty")
	}
	if !validEmail(n.Email) {
		return guests, models.Guest{}, invalid("bad email %q", n.Email)
	}
	category := n.Category
	if category == "" {
		category = models.CategoryOther
	}
	if !category.Valid() {
		return guests, models.Guest{}, invalid("unknown guest category %q", category)
	}
	phone := strings.TrimSpace(n.Phone)
	if other, taken := phoneOwner(guests, phone, ""); taken {
		return guests, models.Guest{}, invalid("phone %s already belongs to %s", phone, other.Name)
	}

	g := models.Guest{
		ID:       id,
		Name:     name,
		Email:    n.Email,
		Phone:    phone,
		Category: category,
		Status:   models.StatusPending,
		PlusOne:  n.PlusOne,
	}
	return Append(guests, g), g, nil
}

// phoneOwner finds a guest other than exceptID whose phone is phone. Empty
// phones are never taken.
func phoneOwner(guests []models.Guest, phone, exceptID string) (models.Guest, bool) {
	if phone == "" {
		return models.Guest{}, false
	}
	for _, g := range guests {
		if g.ID != exceptID && g.Phone == phone {
			return g, true
		}
	}
	return models.Guest{}, false
}

// UpdateGuest merges p into the guest with the given id.
func UpdateGuest(guests []models.Guest, id string, p GuestPatch) ([]models.Guest, bool, error) {
	if err := p.Validate(); err != nil {
		return guests, false, err
	}
	if p.Phone != nil {
		if other, taken := phoneOwner(guests, strings.TrimSpace(*p.Phone), id); taken {
			return guests, false, invalid("phone %s already belongs to %s", *p.Phone, other.Name)
		}
	}
	out, found := Replace(guests, id, p.Apply)
	return out, found, nil
}

// RemoveGuest drops the guest with the given id.
func RemoveGuest(guests []models.Guest, id string) ([]models.Guest, bool) {
	return Remove(guests, id)
}

// CycleGuestStatus advances the guest's status one step around the
// Pending -> Confirmed -> Declined ring.
func CycleGuestStatus(guests []models.Guest, id string) ([]models.Guest, bool) {
	return Replace(guests, id, func(g models.Guest) models.Guest {
		g.Status = g.Status.Next()
		return g
	})
}
