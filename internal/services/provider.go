package services

import (
	"context"
	"fmt"

	"atscribe/resume-analyzer/internal/config"
	"atscribe/resume-analyzer/internal/models"
)

// TextGenerator is the capability the reasoning gateway needs from a provider:
// hand it a prompt (or a chat transcript), get text back. Everything
// provider-specific lives behind this interface.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	GenerateChat(ctx context.Context, systemPrompt string, history []models.ChatMessage, temperature float32) (string, error)
}

// NewTextGenerator builds the adapter selected by cfg.Name. The provider is
// constructed from the explicit config struct only, which keeps tests free of
// environment mutation.
func NewTextGenerator(cfg config.ProviderConfig) (TextGenerator, error) {
	switch cfg.Name {
	case "gemini", "":
		return newGeminiGenerator(cfg)
	case "openai":
		return newOpenAIGenerator(cfg)
	default:
		return nil, fmt.Errorf("unknown provider %q (expected \"gemini\" or \"openai\")", cfg.Name)
	}
}
