package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func withIO(t *testing.T, input string) *bytes.Buffer {
	t.Helper()

	out := &bytes.Buffer{}
	oldIn, oldOut := Input, Output
	Input = strings.NewReader(input)
	Output = out
	t.Cleanup(func() {
		Input = oldIn
		Output = oldOut
	})
	return out
}

func TestAsk(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"yes word", "yes\n", false, true},
		{"uppercase", "Y\n", false, true},
		{"no", "n\n", true, false},
		{"empty takes default yes", "\n", true, true},
		{"empty takes default no", "\n", false, false},
		{"garbage is no", "maybe\n", true, false},
		{"eof is no", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withIO(t, tt.input)
			if got := Ask("Continue?", tt.defaultYes); got != tt.want {
				t.Errorf("Ask(%q, %v) = %v, want %v", tt.input, tt.defaultYes, got, tt.want)
			}
		})
	}
}

func TestAskShowsDefaultHint(t *testing.T) {
	out := withIO(t, "\n")
	Ask("Continue?", true)
	if !strings.Contains(out.String(), "Y/n") {
		t.Errorf("expected default-yes hint in %q", out.String())
	}
}

func TestAskString(t *testing.T) {
	withIO(t, "  answer  \n")
	if got := AskString("Name?", false); got != "answer" {
		t.Errorf("AskString = %q, want answer", got)
	}
}

func TestAskStringRequiredRepeats(t *testing.T) {
	withIO(t, "\n\nfinally\n")
	if got := AskString("Name?", true); got != "finally" {
		t.Errorf("AskString = %q, want finally", got)
	}
}

func TestAskStringRequiredEOF(t *testing.T) {
	withIO(t, "")
	if got := AskString("Name?", true); got != "" {
		t.Errorf("AskString on EOF = %q, want empty", got)
	}
}

func TestProgress(t *testing.T) {
	out := withIO(t, "")
	Progress("cargo init", 2, 5)
	got := out.String()
	if !strings.Contains(got, "[2/5]") || !strings.Contains(got, "cargo init") {
		t.Errorf("unexpected progress line %q", got)
	}
}

func TestPrintHelpers(t *testing.T) {
	out := withIO(t, "")
	PrintTitle("Your projects")
	PrintDone("Created.")
	got := out.String()
	if !strings.Contains(got, "Your projects") {
		t.Errorf("title missing from %q", got)
	}
	if !strings.Contains(got, "Created.") {
		t.Errorf("done message missing from %q", got)
	}
}
