package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ZaguanLabs/puente"
)

// OpenAIProvider implements Upstream using OpenAI's chat completion API.
//
// The reply is deliberately free text, not structured output: the model is
// asked to echo the "# title" / "### subtitle" header lines of the input
// block, and the pipeline parses them back out.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key (uses OPENAI_API_KEY env var if empty)
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate sends the block to OpenAI and returns the raw reply text.
func (p *OpenAIProvider) Translate(ctx context.Context, req Request) (string, error) {
	systemPrompt := p.buildSystemPrompt(req.Directives)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.Block},
		},
		Temperature: p.temperature,
	})
	if err != nil {
		return "", &puente.UpstreamError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &puente.UpstreamError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) buildSystemPrompt(d puente.Directives) string {
	targetName := puente.GetLanguageName(d.TargetLocale)

	prompt := fmt.Sprintf(`# Role
You are an expert native translator. You translate articles to %s with the fluency and nuance of a highly educated native speaker.

# Task
Translate the provided article into idiomatic %s.

# Voice
%s

# Format
The article may begin with a "# Title" line and a "### Subtitle" line. Keep those markers on their own lines, translating only the text after them.
Preserve paragraph breaks, the **bold**, *italic* and [text](url) markers, and line breaks exactly as they appear in the input.
Reply with the translated article only. Do not wrap it in Markdown code blocks and do not add commentary.

# Style Guide
- **Natural Flow**: Avoid literal translations. Rephrase sentences to sound completely natural to a native speaker.
- **Idioms**: Never translate idioms literally. Replace them with natural %s equivalents.
- **Names and URLs**: Do NOT translate proper names, URLs, or email addresses.`,
		targetName, targetName, d.Voice, targetName)

	return prompt
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := err.Error()
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(strings.ToLower(errStr), pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements Upstream
var _ Upstream = (*OpenAIProvider)(nil)
