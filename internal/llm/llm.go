// ABOUTME: Text generation backends used by the coaching agents.
// ABOUTME: Defines the Generator interface and picks a provider from Options.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Provider names.
const (
	ProviderOpenAI  = "openai"
	ProviderGemini  = "gemini"
	ProviderOffline = "offline"
)

// Default models per provider.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-1.5-flash"
)

// ErrMissingAPIKey is returned when a networked provider has no key configured.
var ErrMissingAPIKey = errors.New("missing API key")

// Prompt is one request to a generator.
type Prompt struct {
	System string
	User   string
}

// Generator turns a prompt into free text.
type Generator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
	Name() string
}

// Options selects and configures a generator.
type Options struct {
	Provider   string
	Model      string
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Providers lists the accepted provider names.
func Providers() []string {
	return []string{ProviderOpenAI, ProviderGemini, ProviderOffline}
}

// New builds the generator named by opts.Provider. An empty provider means openai.
func New(ctx context.Context, opts Options) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", ProviderOpenAI:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("openai: %w (set OPENAI_API_KEY)", ErrMissingAPIKey)
		}
		return NewOpenAI(opts), nil
	case ProviderGemini:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("gemini: %w (set GEMINI_API_KEY)", ErrMissingAPIKey)
		}
		return NewGemini(ctx, opts)
	case ProviderOffline:
		return NewOffline(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s (valid: %s)", opts.Provider, strings.Join(Providers(), ", "))
	}
}

// Close releases generator resources when the backend holds any.
func Close(g Generator) error {
	if c, ok := g.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
