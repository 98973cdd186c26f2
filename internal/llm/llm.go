// Package llm abstracts the external chat-completion API behind a
// one-method interface with an OpenAI-backed implementation and a
// deterministic mock for tests.
package llm

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrCompletionFailed wraps transport and API failures from the
	// completion provider.
	ErrCompletionFailed = errors.New("chat completion failed")
	// ErrInvalidConfig indicates a missing API key or model name.
	ErrInvalidConfig = errors.New("invalid llm configuration")
)

// Message is one role/content turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Well-known chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Completer sends an ordered message list to a chat-completion API and
// returns the single text completion. Implementations must be stateless
// and safe for concurrent use.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Config holds common completion parameters.
type Config struct {
	Model       string
	APIKey      string
	MaxTokens   int
	Temperature float64
	// Timeout bounds a single API request. Zero uses the client default.
	Timeout time.Duration
}
