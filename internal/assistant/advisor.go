// Package assistant implements the wedding-planner chat: the call to the
// language model and the single-flight conversation built on it.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Fixed replies used in place of a model answer.
const (
	NoAnswerText = "Desculpe, não consegui gerar uma resposta no momento."
	FailureText  = "Ocorreu um erro ao conectar com seu assistente de casamento. Verifique sua chave de API."
	noContext    = "Nenhum contexto específico fornecido."
)

// Advisor asks a Generator for wedding advice. It never fails: errors and
// empty answers are turned into fixed replies.
type Advisor struct {
	gen Generator
	log zerolog.Logger
}

// NewAdvisor wraps gen.
func NewAdvisor(gen Generator, log zerolog.Logger) *Advisor {
	return &Advisor{
		gen: gen,
		log: log.With().Str("component", "Assistant").Logger(),
	}
}

// BuildPrompt wraps the user's question and the wedding context in the
// planner instructions.
func BuildPrompt(question, weddingContext string) string {
	if strings.TrimSpace(weddingContext) == "" {
		weddingContext = noContext
	}
	return fmt.Sprintf(
		"Você é um especialista em planejamento de casamentos (Wedding Planner) experiente, elegante e prático.\n"+
			"Responda em Português do Brasil.\n\n"+
			"Contexto do Casamento: %s\n\n"+
			"Pergunta do usuário: %s\n\n"+
			"Forneça uma resposta útil, criativa e empática. Se for uma lista, use marcadores.",
		weddingContext, question,
	)
}

// Advise returns the model's answer to question.
func (a *Advisor) Advise(ctx context.Context, question, weddingContext string) string {
	if a.gen == nil {
		a.log.Error().Msg("No language model configured")
		return FailureText
	}
	text, err := a.gen.Generate(ctx, BuildPrompt(question, weddingContext))
	if err != nil {
		a.log.Error().Err(err).Msg("Error calling language model")
		return FailureText
	}
	if strings.TrimSpace(text) == "" {
		a.log.Warn().Msg("Language model returned an empty answer")
		return NoAnswerText
	}
	return text
}
