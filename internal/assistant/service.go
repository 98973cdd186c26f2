// Package assistant runs the answer pipeline: retrieve tutorial context,
// assemble the prompt, call the completion API once, and linkify step
// references in the reply.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kenwpond/chatbot-backend/internal/answer"
	"github.com/kenwpond/chatbot-backend/internal/llm"
	"github.com/kenwpond/chatbot-backend/internal/prompt"
	"github.com/kenwpond/chatbot-backend/internal/retrieval"
	"github.com/kenwpond/chatbot-backend/internal/tutorial"
)

// ErrEmptyQuestion is returned when the question is blank.
var ErrEmptyQuestion = errors.New("question is empty")

// Service answers questions about one tutorial. It holds only immutable
// data and stateless collaborators, so one instance serves all requests.
type Service struct {
	library       *tutorial.Library
	completer     llm.Completer
	opts          retrieval.Options
	snippetLength int
	stats         *llm.Stats
	log           *slog.Logger
}

// Reply is one answered question.
type Reply struct {
	// Answer is the formatted reply, safe to embed as HTML.
	Answer string
	// Steps are the records that grounded the answer, in relevance order.
	Steps []tutorial.StepRecord
}

// New wires an answering service. stats may be nil to skip latency tracking.
func New(library *tutorial.Library, completer llm.Completer, opts retrieval.Options, snippetLength int, stats *llm.Stats, log *slog.Logger) *Service {
	if snippetLength <= 0 {
		snippetLength = retrieval.DefaultSnippetLength
	}
	return &Service{
		library:       library,
		completer:     completer,
		opts:          opts,
		snippetLength: snippetLength,
		stats:         stats,
		log:           log,
	}
}

// Answer runs the full pipeline for one question. The completion API is
// called exactly once; its errors propagate to the caller untranslated
// beyond wrapping.
func (s *Service) Answer(ctx context.Context, question string, history []llm.Message) (*Reply, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	steps := retrieval.SelectSteps(question, s.library.Steps(), s.opts)
	excerpt := retrieval.SelectTranscriptExcerpt(question, s.library.Transcript(), s.snippetLength)

	messages := prompt.BuildMessages(question, history, steps, excerpt)

	start := time.Now()
	raw, err := s.completer.Complete(ctx, messages)
	elapsed := time.Since(start)
	if s.stats != nil {
		s.stats.Record(elapsed)
	}
	if err != nil {
		return nil, fmt.Errorf("complete answer: %w", err)
	}

	s.log.Debug("answered question",
		"steps", len(steps),
		"excerpt_len", len(excerpt),
		"duration_ms", elapsed.Milliseconds(),
	)

	// Single formatting pass; the formatter's output must never be fed
	// back through it.
	return &Reply{
		Answer: answer.FormatStepsInAnswer(raw),
		Steps:  steps,
	}, nil
}
