package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"wedding-planner/internal/assistant"
	"wedding-planner/internal/editor"
	"wedding-planner/internal/models"
	"wedding-planner/internal/planner"
	"wedding-planner/internal/whatsapp"
)

// Messenger sends text to a phone number.
type Messenger interface {
	SendMessage(ctx context.Context, phone, text string) error
}

type Config struct {
	// CouplePhone is the normalized number whose messages are questions for
	// the assistant. Empty disables the assistant over WhatsApp.
	CouplePhone string
}

// Handler routes incoming WhatsApp messages: the couple talks to the
// assistant, invited guests answer their invitation.
type Handler struct {
	messenger Messenger
	planner   *planner.Planner
	session   *assistant.Session
	config    *Config
	log       zerolog.Logger
}

// NewHandler creates a new message handler
func NewHandler(messenger Messenger, p *planner.Planner, session *assistant.Session, cfg *Config, log zerolog.Logger) *Handler {
	return &Handler{
		messenger: messenger,
		planner:   p,
		session:   session,
		config:    cfg,
		log:       log.With().Str("component", "Handler").Logger(),
	}
}

// HandleMessage processes one incoming message from phone.
func (h *Handler) HandleMessage(ctx context.Context, phone, text string) error {
	if h.config.CouplePhone != "" && phone == h.config.CouplePhone {
		return h.ask(ctx, phone, text)
	}

	guest, err := h.planner.GuestByPhone(phone)
	if err != nil {
		// Not an invited guest
		return nil
	}
	return h.rsvp(ctx, guest, text)
}

func (h *Handler) ask(ctx context.Context, phone, text string) error {
	if h.session == nil {
		return nil
	}
	reply, err := h.session.Submit(ctx, text)
	if errors.Is(err, assistant.ErrBusy) || errors.Is(err, assistant.ErrEmptyInput) {
		h.log.Debug().Err(err).Msg("Question ignored")
		return nil
	}
	if err != nil {
		return err
	}

	go func() {
		msg, ok := <-reply
		if !ok {
			return
		}
		if err := h.messenger.SendMessage(ctx, phone, msg.Text); err != nil {
			h.log.Error().Err(err).Msg("Failed to deliver assistant reply")
		}
	}()
	return nil
}

func (h *Handler) rsvp(ctx context.Context, guest models.Guest, text string) error {
	status, ok := ParseRSVP(text)
	if !ok {
		// Not a clear RSVP response, ignore
		return nil
	}

	found, err := h.planner.UpdateGuest(guest.ID, editor.GuestPatch{Status: &status})
	if err != nil {
		return fmt.Errorf("failed to update RSVP: %w", err)
	}
	if !found {
		return nil
	}
	h.log.Info().Str("guest_id", guest.ID).Str("status", string(status)).Msg("RSVP recorded")

	if err := h.messenger.SendMessage(ctx, guest.Phone, h.confirmation(guest, status)); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}
	return nil
}

func (h *Handler) confirmation(guest models.Guest, status models.GuestStatus) string {
	w := h.planner.Wedding()
	couple := strings.TrimSpace(w.Names)
	if status == models.StatusConfirmed {
		return fmt.Sprintf(
			"🎉 Que maravilha, %s! Sua presença no casamento de %s em %s está confirmada.\n\nAté lá! 💕",
			guest.Name, couple, w.Date,
		)
	}
	return fmt.Sprintf(
		"Obrigado por avisar, %s. Sentiremos sua falta no casamento de %s. 💕",
		guest.Name, couple,
	)
}

// Invite sends the invitation to a guest with a phone number.
func (h *Handler) Invite(ctx context.Context, guestID string) error {
	guest, err := h.planner.Guest(guestID)
	if err != nil {
		return fmt.Errorf("guest %s: %w", guestID, err)
	}
	if guest.Phone == "" {
		return fmt.Errorf("guest %s has no phone number", guest.Name)
	}

	w := h.planner.Wedding()
	text := whatsapp.InvitationText(guest.Name, w.Names, w.Date, w.Location)
	if err := h.messenger.SendMessage(ctx, guest.Phone, text); err != nil {
		return fmt.Errorf("failed to send invitation: %w", err)
	}
	return nil
}

var (
	declineWords = []string{"não", "nao", "no", "recuso", "infelizmente", "decline", "❌"}
	confirmWords = []string{"sim", "confirmo", "confirmado", "confirmada", "vou", "irei", "yes", "claro", "✅"}
	emojiSpacer  = strings.NewReplacer("✅", " ✅ ", "❌", " ❌ ")
)

// ParseRSVP reads a guest's reply. Declines win over confirmations so
// that "não vou" is a decline.
func ParseRSVP(text string) (models.GuestStatus, bool) {
	lower := emojiSpacer.Replace(strings.ToLower(text))
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '✅' && r != '❌'
	})
	has := func(keywords []string) bool {
		for _, w := range words {
			for _, k := range keywords {
				if w == k {
					return true
				}
			}
		}
		return false
	}

	switch {
	case has(declineWords):
		return models.StatusDeclined, true
	case has(confirmWords):
		return models.StatusConfirmed, true
	}
	return "", false
}
