package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"
)

// Generator turns a prompt into free-form text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	DefaultGeminiURL   = "https://generativelanguage.googleapis.com/"
	DefaultGeminiModel = "gemini-2.5-flash"
)

var errMissingKey = errors.New("gemini: missing API key")

// GeminiClient calls the Gemini generateContent endpoint through the genai SDK.
// The SDK client is created on first use.
type GeminiClient struct {
	baseURL string
	apiKey  string
	model   string

	once   sync.Once
	client *genai.Client
	err    error
}

// NewGeminiClient creates a client. Empty baseURL and model select the
// public endpoint and gemini-2.5-flash.
func NewGeminiClient(baseURL, apiKey, model string) *GeminiClient {
	if baseURL == "" {
		baseURL = DefaultGeminiURL
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiClient{
		baseURL: strings.TrimRight(baseURL, "/") + "/",
		apiKey:  apiKey,
		model:   model,
	}
}

func (c *GeminiClient) connect(ctx context.Context) (*genai.Client, error) {
	c.once.Do(func() {
		if c.apiKey == "" {
			c.err = errMissingKey
			return
		}
		c.client, c.err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     c.apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: &http.Client{Timeout: 60 * time.Second},
			HTTPOptions: genai.HTTPOptions{
				BaseURL: c.baseURL,
			},
		})
	})
	return c.client, c.err
}

// Generate sends prompt as a single user turn and returns the text of the
// first candidate. An empty string with a nil error means the model
// answered with nothing.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return "", err
	}
	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	return resp.Text(), nil
}
