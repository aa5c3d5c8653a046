// Package groq implements the text-generation contract on top of the Groq
// OpenAI-compatible chat completions endpoint.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/logger"

	"go.uber.org/zap"
)

const (
	defaultModel = "llama-3.1-8b-instant"
	endpoint     = "https://api.groq.com/openai/v1/chat/completions"

	requestTimeout = 30 * time.Second
	temperature    = 0.7
	maxTokens      = 500

	roleSystem = "system"
	roleUser   = "user"
)

// Client calls the Groq chat completions API over plain HTTP.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// New creates a Groq client for the given API key. An empty model selects
// the default one.
func New(apiKey, model string, log *zap.Logger) *Client {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		model:   model,
		baseURL: endpoint,
		http:    &http.Client{Timeout: requestTimeout},
		logger:  logger.WithProvider(log, "groq", model),
	}
}

// Generate sends the system and user prompts as a single chat completion
// request and returns the first choice's content.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c == nil || c.http == nil {
		return "", errors.New("groq client is not initialized")
	}

	if strings.TrimSpace(userPrompt) == "" {
		return "", errors.New("prompt must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: roleSystem, Content: systemPrompt},
			{Role: roleUser, Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("groq chat completion request",
		zap.Int("prompt_length", utf8.RuneCountInString(userPrompt)),
		zap.String("prompt_preview", logger.TruncateForLog(userPrompt, 200)),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling groq api: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading groq response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq api returned status %d: %s",
			resp.StatusCode, logger.TruncateForLog(string(payload), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("parsing groq response: %w", err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("groq api error: %s", parsed.Error.Message)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("groq api returned no choices")
	}

	output := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if output == "" {
		return "", errors.New("groq api returned empty content")
	}

	c.logger.Debug("groq chat completion response",
		zap.Int("response_length", utf8.RuneCountInString(output)),
		zap.String("response_preview", logger.TruncateForLog(output, 200)),
	)

	return output, nil
}
