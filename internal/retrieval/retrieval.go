// Package retrieval matches free-text questions against tutorial step
// guidance and transcript text using a keyword/substring heuristic. All
// functions are pure: they read the inputs, allocate the result, and touch
// no shared state, so they are safe for concurrent use.
package retrieval

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kenwpond/chatbot-backend/internal/tutorial"
)

// Strategy selects how steps are chosen when the question names no
// specific step.
type Strategy string

const (
	// StrategyKeyword scores steps against question tokens.
	StrategyKeyword Strategy = "keyword"
	// StrategyFirstN ignores the question and returns the leading steps.
	StrategyFirstN Strategy = "first-n"
)

const (
	// DefaultMaxSteps bounds how many step records a selection returns.
	DefaultMaxSteps = 4
	// DefaultSnippetLength bounds the transcript excerpt size in bytes.
	DefaultSnippetLength = 1200

	// excerptLeadIn is how far before the first keyword hit the
	// transcript excerpt starts, to keep surrounding context.
	excerptLeadIn = 100
)

// PhraseBoost adds extra score when both the question and a step's
// guidance contain the phrase.
type PhraseBoost struct {
	Phrase string
	Weight int
}

// DefaultBoosts are the phrases the tutorial's authors found users ask
// about most; they are tuning data, not general-purpose logic.
func DefaultBoosts() []PhraseBoost {
	return []PhraseBoost{
		{Phrase: "mail merge", Weight: 2},
		{Phrase: "filter", Weight: 2},
	}
}

// Options tunes step selection.
type Options struct {
	MaxSteps int
	Strategy Strategy
	Boosts   []PhraseBoost
}

// DefaultOptions returns the tuning the production service runs with.
func DefaultOptions() Options {
	return Options{
		MaxSteps: DefaultMaxSteps,
		Strategy: StrategyKeyword,
		Boosts:   DefaultBoosts(),
	}
}

func (o Options) withDefaults() Options {
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.Strategy == "" {
		o.Strategy = StrategyKeyword
	}
	if o.Boosts == nil {
		o.Boosts = DefaultBoosts()
	}
	return o
}

var (
	stepMentionRe = regexp.MustCompile(`step\s+(\d+)`)
	nonWordRe     = regexp.MustCompile(`\W+`)
)

type scoredStep struct {
	record tutorial.StepRecord
	score  int
}

// SelectSteps returns the steps most relevant to the question, at most
// opts.MaxSteps of them. A question that names a step directly ("step 12")
// returns exactly that step, or nothing if no such step exists. Otherwise
// steps are keyword-scored and the highest scorers returned; when nothing
// scores above zero the leading steps are returned as a deterministic
// default. The result is empty only when the input collection is empty.
func SelectSteps(question string, steps []tutorial.StepRecord, opts Options) []tutorial.StepRecord {
	opts = opts.withDefaults()
	lowerQ := strings.ToLower(question)

	if opts.Strategy == StrategyFirstN {
		return firstN(steps, opts.MaxSteps)
	}

	// Direct mention short-circuits scoring.
	if m := stepMentionRe.FindStringSubmatch(lowerQ); m != nil {
		wanted := m[1]
		for _, s := range steps {
			if strconv.Itoa(s.Step) == wanted {
				return []tutorial.StepRecord{s}
			}
		}
		return nil
	}

	tokens := questionTokens(lowerQ, 3)

	scored := make([]scoredStep, 0, len(steps))
	for _, s := range steps {
		lowerG := strings.ToLower(s.Guidance)
		score := 0
		for _, tok := range tokens {
			if strings.Contains(lowerG, tok) {
				score++
			}
		}
		for _, b := range opts.Boosts {
			if strings.Contains(lowerQ, b.Phrase) && strings.Contains(lowerG, b.Phrase) {
				score += b.Weight
			}
		}
		scored = append(scored, scoredStep{record: s, score: score})
	}

	// Stable so equal scores keep collection order.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	var result []tutorial.StepRecord
	for _, ss := range scored {
		if ss.score <= 0 || len(result) >= opts.MaxSteps {
			break
		}
		result = append(result, ss.record)
	}
	if len(result) == 0 {
		return firstN(steps, opts.MaxSteps)
	}
	return result
}

// SelectTranscriptExcerpt returns a window of the transcript around the
// first question keyword found in it. Keywords are tried in question
// order; the first keyword that occurs anywhere in the transcript decides
// the window, anchored at that keyword's first occurrence. With no
// keyword hit the window starts at the beginning. An empty transcript
// yields "".
func SelectTranscriptExcerpt(question, transcript string, snippetLength int) string {
	if transcript == "" {
		return ""
	}
	if snippetLength <= 0 {
		snippetLength = DefaultSnippetLength
	}

	lowerT := strings.ToLower(transcript)
	offset := 0
	for _, tok := range questionTokens(strings.ToLower(question), 4) {
		if idx := strings.Index(lowerT, tok); idx >= 0 {
			offset = idx
			break
		}
	}

	start := offset - excerptLeadIn
	if start < 0 {
		start = 0
	}
	end := offset + snippetLength
	if end > len(transcript) {
		end = len(transcript)
	}

	excerpt := transcript[start:end]
	if end < len(transcript) {
		excerpt += "..."
	}
	return excerpt
}

// questionTokens splits an already lower-cased question on non-word runs
// and keeps tokens of at least minLen bytes, preserving question order.
func questionTokens(lowerQuestion string, minLen int) []string {
	var tokens []string
	for _, tok := range nonWordRe.Split(lowerQuestion, -1) {
		if len(tok) >= minLen {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func firstN(steps []tutorial.StepRecord, n int) []tutorial.StepRecord {
	if len(steps) == 0 {
		return nil
	}
	if n > len(steps) {
		n = len(steps)
	}
	out := make([]tutorial.StepRecord, n)
	copy(out, steps[:n])
	return out
}
