// Package answer post-processes LLM replies, rewriting step-number
// mentions into grouped anchor links the front-end can scroll to.
package answer

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	stepMentionRe = regexp.MustCompile(`(?i)step\s+(\d+)`)
	dealPatternRe = regexp.MustCompile(`(?i)steps? that deal`)
)

// stepRange is a closed interval of consecutive step numbers.
type stepRange struct {
	start, end int
}

// FormatStepsInAnswer rewrites every "Step N" mention in the answer into
// grouped anchor links. Consecutive step numbers collapse into one range.
// An answer with no step mentions is returned unchanged.
//
// Single-pass only: the output embeds the word "Step" inside anchor text,
// so callers must not feed formatted output back in. A second pass will
// not corrupt existing anchors, but it will append a redundant step list.
func FormatStepsInAnswer(text string) string {
	numbers := extractStepNumbers(text)
	if len(numbers) == 0 {
		return text
	}

	joined := joinRanges(renderRanges(collapseRanges(numbers)))

	// Historical special case for the mail-merge tutorial: questions
	// phrased "steps that deal with ..." get a bare step list instead of
	// the model's prose. Known to be load-bearing for the front-end.
	if dealPatternRe.MatchString(text) {
		return "Mail merge is covered in: " + joined
	}
	return text + "<br><br>Relevant steps: " + joined
}

// extractStepNumbers pulls every mentioned step number, deduplicated and
// sorted ascending.
func extractStepNumbers(text string) []int {
	matches := stepMentionRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		seen[n] = struct{}{}
	}

	numbers := make([]int, 0, len(seen))
	for n := range seen {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// collapseRanges partitions ascending numbers into maximal runs of
// consecutive integers.
func collapseRanges(numbers []int) []stepRange {
	var ranges []stepRange
	for _, n := range numbers {
		if len(ranges) > 0 && n == ranges[len(ranges)-1].end+1 {
			ranges[len(ranges)-1].end = n
			continue
		}
		ranges = append(ranges, stepRange{start: n, end: n})
	}
	return ranges
}

// renderRanges turns each range into an anchor targeting the front-end's
// #step-N fragments. Multi-step ranges use an en dash.
func renderRanges(ranges []stepRange) []string {
	rendered := make([]string, 0, len(ranges))
	for _, r := range ranges {
		if r.start == r.end {
			rendered = append(rendered, fmt.Sprintf(`<a href="#step-%d">Step %d</a>`, r.start, r.start))
		} else {
			rendered = append(rendered, fmt.Sprintf(`<a href="#step-%d">Steps %d–%d</a>`, r.start, r.start, r.end))
		}
	}
	return rendered
}

// joinRanges lists rendered ranges in prose: one stands alone, two join
// with "and", three or more take an Oxford comma.
func joinRanges(rendered []string) string {
	switch len(rendered) {
	case 0:
		return ""
	case 1:
		return rendered[0]
	case 2:
		return rendered[0] + " and " + rendered[1]
	default:
		return strings.Join(rendered[:len(rendered)-1], ", ") + ", and " + rendered[len(rendered)-1]
	}
}
