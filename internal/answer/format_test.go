package answer

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestFormatStepsInAnswer_NoMentionsUnchanged(t *testing.T) {
	in := "No steps mentioned."
	if got := FormatStepsInAnswer(in); got != in {
		t.Fatalf("expected input unchanged, got %q", got)
	}
}

func TestFormatStepsInAnswer_SingleStep(t *testing.T) {
	got := FormatStepsInAnswer("You need Step 7 for that.")
	want := `You need Step 7 for that.<br><br>Relevant steps: <a href="#step-7">Step 7</a>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatStepsInAnswer_GroupsConsecutiveSteps(t *testing.T) {
	got := FormatStepsInAnswer("See Step 52 and Step 53 and Step 55.")

	if !strings.Contains(got, `<a href="#step-52">Steps 52–53</a>`) {
		t.Errorf("missing grouped range 52–53 in %q", got)
	}
	if !strings.Contains(got, `<a href="#step-55">Step 55</a>`) {
		t.Errorf("missing single step 55 in %q", got)
	}
	if !strings.Contains(got, "<br><br>Relevant steps: ") {
		t.Errorf("missing relevant-steps separator in %q", got)
	}
	if !strings.Contains(got, `</a> and <a`) {
		t.Errorf("two ranges must join with \" and \", got %q", got)
	}
}

func TestFormatStepsInAnswer_OxfordJoinForThreeRanges(t *testing.T) {
	got := FormatStepsInAnswer("Check Step 1, Step 5, and Step 9.")
	want := `Check Step 1, Step 5, and Step 9.<br><br>Relevant steps: <a href="#step-1">Step 1</a>, <a href="#step-5">Step 5</a>, and <a href="#step-9">Step 9</a>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatStepsInAnswer_DedupesAndSortsMentions(t *testing.T) {
	got := FormatStepsInAnswer("step 3 then Step 2 then STEP 3 again")
	want := `step 3 then Step 2 then STEP 3 again<br><br>Relevant steps: <a href="#step-2">Steps 2–3</a>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatStepsInAnswer_DealOverrideReplacesAnswer(t *testing.T) {
	got := FormatStepsInAnswer("Steps that deal with mail merge: Step 10, Step 11, Step 12.")
	want := `Mail merge is covered in: <a href="#step-10">Steps 10–12</a>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatStepsInAnswer_DealOverrideSingular(t *testing.T) {
	got := FormatStepsInAnswer("The step that deals with this is Step 4.")
	want := `Mail merge is covered in: <a href="#step-4">Step 4</a>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatStepsInAnswer_AnchorsAreWellFormedHTML(t *testing.T) {
	got := FormatStepsInAnswer("Review Step 2, Step 3 and Step 8 carefully.")

	doc, err := html.Parse(strings.NewReader(got))
	if err != nil {
		t.Fatalf("output did not parse as HTML: %v", err)
	}

	var anchors []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					anchors = append(anchors, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	want := []string{"#step-2", "#step-8"}
	if len(anchors) != len(want) {
		t.Fatalf("expected %d anchors %v, got %v", len(want), want, anchors)
	}
	for i := range want {
		if anchors[i] != want[i] {
			t.Errorf("anchor[%d]: expected %q, got %q", i, want[i], anchors[i])
		}
	}
}

// The formatter is single-pass by contract, but its own output contains
// "Step N" inside anchor text. A second pass must leave the first pass's
// anchors intact rather than corrupting them.
func TestFormatStepsInAnswer_SecondPassKeepsAnchorsIntact(t *testing.T) {
	first := FormatStepsInAnswer("See Step 52 and Step 53 and Step 55.")
	second := FormatStepsInAnswer(first)

	for _, anchor := range []string{
		`<a href="#step-52">Steps 52–53</a>`,
		`<a href="#step-55">Step 55</a>`,
	} {
		if !strings.Contains(second, anchor) {
			t.Errorf("second pass corrupted anchor %q: %q", anchor, second)
		}
	}
	if !strings.HasPrefix(second, first) {
		t.Errorf("second pass must only append, got %q", second)
	}
}

func TestFormatStepsInAnswer_NeverInventsNumbers(t *testing.T) {
	got := FormatStepsInAnswer("Only Step 41 matters.")
	if strings.Contains(got, "step-42") || strings.Contains(got, "Step 42") {
		t.Fatalf("formatter invented a step number: %q", got)
	}
}
