package tutorial

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadSteps(t *testing.T) {
	path := writeFile(t, "steps.json", `[
		{"step": 1, "guidance": "Open the workbook."},
		{"step": 2, "guidance": "Select the Mailings tab."}
	]`)

	steps, err := LoadSteps(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Step != 1 || steps[0].Guidance != "Open the workbook." {
		t.Errorf("unexpected first step: %+v", steps[0])
	}
}

func TestLoadSteps_InvalidJSON(t *testing.T) {
	path := writeFile(t, "steps.json", `{"not": "an array"}`)
	if _, err := LoadSteps(path); err == nil {
		t.Fatal("expected error for non-array steps file")
	}
}

func TestLoadSteps_MissingFile(t *testing.T) {
	if _, err := LoadSteps(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadTranscript_EmptyPath(t *testing.T) {
	got, err := LoadTranscript("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty transcript, got %q", got)
	}
}

func TestLoadTranscript_PlainText(t *testing.T) {
	path := writeFile(t, "transcript.txt", "Welcome to the mail merge tutorial.\n")
	got, err := LoadTranscript(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Welcome to the mail merge tutorial.\n" {
		t.Fatalf("plain text must pass through unchanged, got %q", got)
	}
}

func TestLoadTranscript_MarkdownFlattened(t *testing.T) {
	path := writeFile(t, "transcript.md", "# Mail Merge\n\nFirst, open the *wizard*.\n\n## Filtering\n\nThen apply a filter.\n")
	got, err := LoadTranscript(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "#") {
		t.Errorf("markdown heading markers must be stripped, got %q", got)
	}
	if !strings.Contains(got, "open the") || !strings.Contains(got, "apply a filter") {
		t.Errorf("flattened transcript lost body text: %q", got)
	}
}

func TestNewLibrary_CopiesSteps(t *testing.T) {
	steps := []StepRecord{{Step: 1, Guidance: "original"}}
	lib := NewLibrary(steps, "")

	steps[0].Guidance = "mutated"
	if lib.Steps()[0].Guidance != "original" {
		t.Fatal("library must not observe caller-side mutation")
	}
}
