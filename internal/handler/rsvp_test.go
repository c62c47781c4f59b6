package handler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-planner/internal/assistant"
	"wedding-planner/internal/editor"
	"wedding-planner/internal/models"
	"wedding-planner/internal/planner"
	"wedding-planner/internal/storage"
)

const (
	couplePhone = "5527988887777"
	guestPhone  = "5527999990000"
)

type sent struct {
	phone, text string
}

type fakeMessenger struct {
	mu   sync.Mutex
	sent []sent
	ch   chan sent
	err  error
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{ch: make(chan sent, 10)}
}

func (m *fakeMessenger) SendMessage(_ context.Context, phone, text string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	m.sent = append(m.sent, sent{phone, text})
	m.mu.Unlock()
	m.ch <- sent{phone, text}
	return nil
}

func (m *fakeMessenger) all() []sent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sent(nil), m.sent...)
}

type fixedGenerator struct{ text string }

func (g fixedGenerator) Generate(context.Context, string) (string, error) { return g.text, nil }

func setup(t *testing.T) (*Handler, *planner.Planner, *fakeMessenger, *assistant.Session, models.Guest) {
	t.Helper()
	p, err := planner.New(storage.NewMemoryBackend(), planner.Config{Wedding: models.DefaultWedding()}, zerolog.Nop())
	require.NoError(t, err)
	g, err := p.AddGuest(editor.NewGuest{Name: "Paula", Phone: guestPhone})
	require.NoError(t, err)

	session := assistant.NewSession(
		assistant.NewAdvisor(fixedGenerator{"Flores brancas."}, zerolog.Nop()),
		assistant.SessionConfig{Wedding: p.Wedding()},
		zerolog.Nop(),
	)
	m := newFakeMessenger()
	h := NewHandler(m, p, session, &Config{CouplePhone: couplePhone}, zerolog.Nop())
	return h, p, m, session, g
}

func TestParseRSVP(t *testing.T) {
	tests := []struct {
		text string
		want models.GuestStatus
		ok   bool
	}{
		{"Sim!", models.StatusConfirmed, true},
		{"Claro, vou sim", models.StatusConfirmed, true},
		{"✅", models.StatusConfirmed, true},
		{"yes", models.StatusConfirmed, true},
		{"Não vou poder ir", models.StatusDeclined, true},
		{"nao", models.StatusDeclined, true},
		{"Infelizmente estarei viajando", models.StatusDeclined, true},
		{"❌", models.StatusDeclined, true},
		{"Qual o endereço?", "", false},
		{"assim que puder respondo", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseRSVP(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuestConfirms(t *testing.T) {
	h, p, m, _, g := setup(t)

	require.NoError(t, h.HandleMessage(context.Background(), guestPhone, "Sim, estarei lá!"))

	got, err := p.Guest(g.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, got.Status)

	msgs := m.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, guestPhone, msgs[0].phone)
	assert.Contains(t, msgs[0].text, "confirmada")
}

func TestGuestDeclines(t *testing.T) {
	h, p, m, _, g := setup(t)

	require.NoError(t, h.HandleMessage(context.Background(), guestPhone, "não poderei ir"))
	got, _ := p.Guest(g.ID)
	assert.Equal(t, models.StatusDeclined, got.Status)
	require.Len(t, m.all(), 1)
	assert.Contains(t, m.all()[0].text, "Sentiremos sua falta")
}

func TestUnclearReplyAndStrangersAreIgnored(t *testing.T) {
	h, p, m, _, g := setup(t)

	require.NoError(t, h.HandleMessage(context.Background(), guestPhone, "Qual o traje?"))
	require.NoError(t, h.HandleMessage(context.Background(), "5511900000000", "sim"))

	got, _ := p.Guest(g.ID)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Empty(t, m.all())
}

func TestSendFailureIsReported(t *testing.T) {
	h, p, m, _, g := setup(t)
	m.err = errors.New("offline")

	err := h.HandleMessage(context.Background(), guestPhone, "sim")
	assert.ErrorContains(t, err, "failed to send confirmation")

	got, _ := p.Guest(g.ID)
	assert.Equal(t, models.StatusConfirmed, got.Status, "status is saved before the reply")
}

func TestCoupleTalksToAssistant(t *testing.T) {
	h, _, m, session, _ := setup(t)

	require.NoError(t, h.HandleMessage(context.Background(), couplePhone, "Ideias de flores?"))

	select {
	case s := <-m.ch:
		assert.Equal(t, couplePhone, s.phone)
		assert.Equal(t, "Flores brancas.", s.text)
	case <-time.After(5 * time.Second):
		t.Fatal("no assistant reply delivered")
	}
	session.Wait()
	assert.Len(t, session.Messages(), 3)
}

func TestInvite(t *testing.T) {
	h, p, m, _, g := setup(t)

	require.NoError(t, h.Invite(context.Background(), g.ID))
	msgs := m.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, guestPhone, msgs[0].phone)
	assert.Contains(t, msgs[0].text, "Querido(a) Paula")

	noPhone, err := p.AddGuest(editor.NewGuest{Name: "Sem Telefone"})
	require.NoError(t, err)
	assert.ErrorContains(t, h.Invite(context.Background(), noPhone.ID), "no phone number")
	assert.ErrorIs(t, h.Invite(context.Background(), "missing"), planner.ErrNotFound)
}
