package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"atscribe/resume-analyzer/internal/config"
	"atscribe/resume-analyzer/internal/models"
)

const (
	defaultOpenAIBaseURL = "https://api.groq.com/openai/v1"
	defaultOpenAIModel   = "llama-3.3-70b-versatile"
)

// openAIGenerator talks to any OpenAI-compatible chat-completions endpoint
// (Groq, OpenAI itself, compatible-mode gateways).
type openAIGenerator struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func newOpenAIGenerator(cfg config.ProviderConfig) (TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &openAIGenerator{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float32                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// GenerateText implements TextGenerator.
func (o *openAIGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	messages := []chatCompletionMessage{
		{Role: "user", Content: prompt},
	}
	return o.complete(ctx, messages, temperature)
}

// GenerateChat implements TextGenerator.
func (o *openAIGenerator) GenerateChat(ctx context.Context, systemPrompt string, history []models.ChatMessage, temperature float32) (string, error) {
	messages := make([]chatCompletionMessage, 0, len(history)+1)
	messages = append(messages, chatCompletionMessage{Role: "system", Content: systemPrompt})
	for _, msg := range history {
		messages = append(messages, chatCompletionMessage{Role: msg.Role, Content: msg.Content})
	}
	return o.complete(ctx, messages, temperature)
}

func (o *openAIGenerator) complete(ctx context.Context, messages []chatCompletionMessage, temperature float32) (string, error) {
	reqBody := chatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   4096,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read provider response: %w", err)
	}

	// Keep the status code in the message so the retry layer can sniff 429s.
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to decode provider response: %w", err)
	}
	if completion.Error != nil {
		return "", fmt.Errorf("provider error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in provider response")
	}

	return completion.Choices[0].Message.Content, nil
}
