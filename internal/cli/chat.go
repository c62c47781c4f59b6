package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wedding-planner/internal/assistant"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:     "chat",
		Aliases: []string{"assistente"},
		Short:   "Talk to the wedding planner assistant",
		Long: "Opens an interactive conversation with the AI wedding planner. " +
			"Type a question, pick a suggestion by number, or type 'sair' to leave.",
		Run: runChat,
	})
}

// newSession wires a Gemini-backed assistant session for the planner's wedding.
func (a *app) newSession() *assistant.Session {
	gen := assistant.NewGeminiClient(a.cfg.GeminiBaseURL, a.cfg.GeminiAPIKey, a.cfg.GeminiModel)
	advisor := assistant.NewAdvisor(gen, a.log)
	return assistant.NewSession(advisor, assistant.SessionConfig{
		Wedding: a.planner.Wedding(),
		IDs:     a.planner.IDs(),
		Now:     a.planner.Now,
	}, a.log)
}

func runChat(cmd *cobra.Command, args []string) {
	a := mustOpenApp()
	defer a.Close()

	if a.cfg.GeminiAPIKey == "" {
		a.log.Warn().Msg("GEMINI_API_KEY is not set, the assistant will only answer with an error message")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := a.newSession()
	for _, m := range session.Messages() {
		fmt.Printf("\n🤖 %s\n", m.Text)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		suggestions := session.Suggestions()
		if len(suggestions) > 0 {
			fmt.Println("\nSugestões:")
			for i, s := range suggestions {
				fmt.Printf("  %d. %s\n", i+1, s)
			}
		}
		fmt.Print("\nVocê: ")
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(text, "sair") {
			break
		}
		if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(suggestions) {
			text = suggestions[n-1]
			fmt.Printf("Você: %s\n", text)
		}

		reply, err := session.Submit(ctx, text)
		if errors.Is(err, assistant.ErrEmptyInput) {
			continue
		}
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			continue
		}

		fmt.Print("🤖 Pensando...")
		select {
		case msg := <-reply:
			fmt.Printf("\r🤖 %s\n", msg.Text)
		case <-ctx.Done():
			fmt.Println()
			return
		}
	}
	fmt.Println("Até logo! 👋")
}
