// Package gemini implements the text-generation contract on top of the
// Google GenAI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.5-flash"

	requestTimeout  = 30 * time.Second
	temperature     = 0.7
	maxOutputTokens = 500
)

// models is the subset of the GenAI SDK used by the client. It allows the
// SDK to be replaced with a fake in tests.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client wraps the Google GenAI client to provide simple prompt-based interactions.
type Client struct {
	models models
	model  string
	logger *zap.Logger
}

// New creates a Client configured for the Gemini API backend.
func New(ctx context.Context, apiKey, model string, log *zap.Logger) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Client{
		models: client.Models,
		model:  model,
		logger: logger.WithProvider(log, "gemini", model),
	}, nil
}

// Generate sends the user prompt to Gemini with the system prompt attached
// as a system instruction and returns the first textual response.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c == nil || c.models == nil {
		return "", errors.New("gemini client is not initialized")
	}

	if strings.TrimSpace(userPrompt) == "" {
		return "", errors.New("prompt must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	temp := float32(temperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: maxOutputTokens,
	}

	if systemPrompt = strings.TrimSpace(systemPrompt); systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	c.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(userPrompt)),
		zap.String("prompt_preview", logger.TruncateForLog(userPrompt, 200)),
	)

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(userPrompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	c.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(output)),
		zap.String("response_preview", logger.TruncateForLog(output, 200)),
	)

	return output, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}
