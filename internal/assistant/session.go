package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"wedding-planner/internal/models"
)

var (
	// ErrBusy is returned when a question is submitted while the previous
	// one is still being answered.
	ErrBusy = errors.New("assistant is still answering")
	// ErrEmptyInput is returned for blank questions.
	ErrEmptyInput = errors.New("empty question")
)

// State of a Session.
type State int

const (
	Idle State = iota
	AwaitingResponse
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingResponse:
		return "awaiting_response"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// WelcomeID is the id of the greeting that opens every session.
const WelcomeID = "welcome"

// suggestionLimit is the log length below which prompt suggestions are shown.
const suggestionLimit = 3

var suggestions = []string{
	"Escreva votos românticos e curtos",
	"Sugira um menu para jantar no verão",
	"Checklist para 1 mês antes",
	"Músicas para entrada da noiva",
}

// SessionConfig holds the collaborators of a Session. Nil IDs and Now
// select a fresh id source and time.Now.
type SessionConfig struct {
	Wedding models.WeddingData
	IDs     *models.IDSource
	Now     func() time.Time
}

// Session is one conversation with the assistant. At most one question is
// in flight at a time; further submissions are rejected until it is
// answered. The message log only grows.
type Session struct {
	advisor *Advisor
	wedding models.WeddingData
	ids     *models.IDSource
	now     func() time.Time
	log     zerolog.Logger

	mu       sync.Mutex
	state    State
	input    string
	messages []models.ChatMessage
	inflight sync.WaitGroup
}

// NewSession starts a conversation seeded with the welcome message.
func NewSession(advisor *Advisor, cfg SessionConfig, log zerolog.Logger) *Session {
	s := &Session{
		advisor: advisor,
		wedding: cfg.Wedding,
		ids:     cfg.IDs,
		now:     cfg.Now,
		log:     log.With().Str("component", "Session").Logger(),
	}
	if s.ids == nil {
		s.ids = models.NewIDSource()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.messages = []models.ChatMessage{{
		ID:   WelcomeID,
		Role: models.RoleAssistant,
		Text: fmt.Sprintf(
			"Olá! Sou seu assistente de casamento virtual. Posso ajudar com sugestões de votos, ideias para o menu, "+
				"cronograma do dia, ou dicas de etiqueta. Como posso ajudar os noivos %s hoje?",
			cfg.Wedding.Names,
		),
		Timestamp: s.now(),
	}}
	return s
}

// SetInput replaces the input buffer.
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = text
}

// Input returns the input buffer.
func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Messages returns a copy of the log.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Suggestions returns canned questions while the conversation is young.
func (s *Session) Suggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) >= suggestionLimit {
		return nil
	}
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}

// Submit places text in the input buffer and sends it. A busy session
// rejects the text and keeps the buffer as it was.
func (s *Session) Submit(ctx context.Context, text string) (<-chan models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Idle {
		s.log.Debug().Msg("Rejected question while awaiting response")
		return nil, ErrBusy
	}
	s.input = text
	return s.sendLocked(ctx)
}

// Send submits the input buffer. On success the user message is already in
// the log and the buffer is cleared; the returned channel delivers the
// assistant's reply once it has been appended, then closes.
func (s *Session) Send(ctx context.Context) (<-chan models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sendLocked(ctx)
}

func (s *Session) sendLocked(ctx context.Context) (<-chan models.ChatMessage, error) {
	if s.state != Idle {
		s.log.Debug().Msg("Rejected question while awaiting response")
		return nil, ErrBusy
	}
	question := s.input
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyInput
	}

	s.messages = append(s.messages, models.ChatMessage{
		ID:        s.ids.New(s.now()),
		Role:      models.RoleUser,
		Text:      question,
		Timestamp: s.now(),
	})
	s.input = ""
	s.state = AwaitingResponse

	reply := make(chan models.ChatMessage, 1)
	weddingContext := s.wedding.ContextString()
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		text := s.advisor.Advise(ctx, question, weddingContext)
		reply <- s.resolve(text)
		close(reply)
	}()
	return reply, nil
}

func (s *Session) resolve(text string) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := models.ChatMessage{
		ID:        s.ids.New(s.now()),
		Role:      models.RoleAssistant,
		Text:      text,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, msg)
	s.state = Idle
	return msg
}

// Wait blocks until the in-flight question, if any, has been answered.
func (s *Session) Wait() {
	s.inflight.Wait()
}
