package llm

import "context"

// MockCompleter is a deterministic Completer for tests. It records the
// last message list it was given and replies with a fixed response.
type MockCompleter struct {
	// Response is returned by Complete. If empty, a canned reply is used.
	Response string

	// Error, if set, is returned instead of a response.
	Error error

	// LastMessages stores the most recent messages passed to Complete.
	LastMessages []Message
}

// NewMockCompleter creates a mock with the given fixed response.
func NewMockCompleter(response string) *MockCompleter {
	return &MockCompleter{Response: response}
}

// NewMockCompleterWithError creates a mock that always fails.
func NewMockCompleterWithError(err error) *MockCompleter {
	return &MockCompleter{Error: err}
}

// Complete returns the configured response or error.
func (m *MockCompleter) Complete(ctx context.Context, messages []Message) (string, error) {
	m.LastMessages = messages
	if m.Error != nil {
		return "", m.Error
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return "I don't have enough context to answer that.", nil
}
