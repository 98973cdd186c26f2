package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIClient implements Completer using OpenAI's chat completions API.
type OpenAIClient struct {
	client openai.Client
	config Config
}

// NewOpenAIClient builds an OpenAI-backed completer.
func NewOpenAIClient(config Config) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrInvalidConfig)
	}
	if config.Model == "" {
		return nil, fmt.Errorf("%w: missing model name", ErrInvalidConfig)
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.Timeout > 0 {
		clientOpts = append(clientOpts, option.WithRequestTimeout(config.Timeout))
	}
	client := openai.NewClient(clientOpts...)

	return &OpenAIClient{
		client: client,
		config: config,
	}, nil
}

// Complete sends the messages to OpenAI and returns the completion text.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("%w: no messages", ErrCompletionFailed)
	}

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.config.Model),
		Messages: toOpenAIMessages(messages),
	}
	if c.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.config.MaxTokens))
	}
	if c.config.Temperature > 0 {
		params.Temperature = openai.Float(c.config.Temperature)
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrCompletionFailed)
	}

	return completion.Choices[0].Message.Content, nil
}

// Model reports the configured model name.
func (c *OpenAIClient) Model() string {
	return c.config.Model
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
