// Package prompt assembles the chat message list sent to the completion
// API: a system prompt carrying the retrieved tutorial context, the prior
// conversation turns, and the new question.
package prompt

import (
	"fmt"
	"strings"

	"github.com/kenwpond/chatbot-backend/internal/llm"
	"github.com/kenwpond/chatbot-backend/internal/tutorial"
)

const systemPreamble = `You are a helpful tutorial assistant. Answer the user's question using ONLY the tutorial steps and transcript excerpt provided below. When your answer draws on a step, refer to it as "Step N" so it can be linked. If the provided material does not cover the question, say so instead of guessing.`

// BuildMessages assembles the full message list for one question. History
// turns are passed through in order, except that turns duplicating the new
// question are dropped so the model does not see it twice.
func BuildMessages(question string, history []llm.Message, steps []tutorial.StepRecord, excerpt string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    llm.RoleSystem,
		Content: buildSystemPrompt(steps, excerpt),
	})

	trimmedQ := strings.TrimSpace(question)
	for _, turn := range history {
		if turn.Role == llm.RoleUser && strings.TrimSpace(turn.Content) == trimmedQ {
			continue
		}
		messages = append(messages, turn)
	}

	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: question})
	return messages
}

func buildSystemPrompt(steps []tutorial.StepRecord, excerpt string) string {
	var b strings.Builder
	b.WriteString(systemPreamble)

	if len(steps) > 0 {
		b.WriteString("\n\n# Tutorial Steps\n")
		for _, s := range steps {
			b.WriteString(fmt.Sprintf("\nStep %d: %s\n", s.Step, s.Guidance))
		}
	}

	if excerpt != "" {
		b.WriteString("\n\n# Transcript Excerpt\n\n")
		b.WriteString(excerpt)
		b.WriteString("\n")
	}

	return b.String()
}
