// Package advisor answers free-text cooking questions in a fixed chef
// persona via the Anthropic API. The boundary is deliberately forgiving:
// any provider failure yields the static fallback string, never an error,
// and no retry is attempted.
package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Generator produces advice text for a user question. Implemented by the
// Anthropic client; faked in tests.
type Generator interface {
	Generate(ctx context.Context, system, question string) (string, error)
}

// Service wraps a Generator with the persona and the fallback policy.
type Service struct {
	generator Generator
	persona   *Persona
	logger    *slog.Logger
}

// NewService creates an advisor service.
func NewService(generator Generator, persona *Persona, logger *slog.Logger) *Service {
	return &Service{
		generator: generator,
		persona:   persona,
		logger:    logger,
	}
}

// Advise returns persona-styled advice for the question. Empty questions
// and provider failures both resolve to the fallback string.
func (s *Service) Advise(ctx context.Context, question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return s.persona.Fallback
	}

	answer, err := s.generator.Generate(ctx, s.persona.SystemPrompt, question)
	if err != nil {
		s.logger.Error("advice generation failed, serving fallback", "error", err)
		return s.persona.Fallback
	}
	if strings.TrimSpace(answer) == "" {
		return s.persona.Fallback
	}
	return answer
}

// UnavailableGenerator always fails, which makes the service serve its
// fallback copy. Used when no API key is configured.
type UnavailableGenerator struct{}

func (UnavailableGenerator) Generate(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("no generation provider configured")
}

// AnthropicGenerator implements Generator against the Anthropic Messages
// API.
type AnthropicGenerator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicGenerator creates a generator with the given API key and
// persona model settings.
func NewAnthropicGenerator(apiKey string, persona *Persona) (*AnthropicGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	return &AnthropicGenerator{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     persona.Model,
		maxTokens: persona.MaxTokens,
	}, nil
}

// Generate sends one user question with the persona system prompt and
// returns the concatenated text blocks of the reply.
func (g *AnthropicGenerator) Generate(ctx context.Context, system, question string) (string, error) {
	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(question)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic message: %w", err)
	}

	var b strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}
