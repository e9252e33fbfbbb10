package components

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMatchHints(t *testing.T) {
	t.Parallel()
	if got := MatchHints(""); len(got) != len(paletteHints) {
		t.Fatalf("empty prefix must list every command, got %v", got)
	}
	if got := MatchHints(" SCHED"); !reflect.DeepEqual(got, []string{"schedule:generate"}) {
		t.Fatalf("unexpected matches %v", got)
	}
	if got := MatchHints("nothing"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestPaletteSubmitAndComplete(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("sess")})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() {
		t.Fatalf("palette must close on enter")
	}
	msg, ok := cmd().(PaletteSubmitMsg)
	if !ok || msg.Input != "session:logout" {
		t.Fatalf("unexpected submit %#v", cmd())
	}
}

func TestAlertBlocksUntilDismissed(t *testing.T) {
	t.Parallel()
	var a Alert
	a.Show("Access denied", "nope@example.com is not authorized.")
	if !a.Visible() {
		t.Fatalf("alert must be visible")
	}
	a, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if !a.Visible() || cmd != nil {
		t.Fatalf("ordinary keys must not dismiss the alert")
	}
	a, cmd = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if a.Visible() {
		t.Fatalf("enter must dismiss the alert")
	}
	if _, ok := cmd().(AlertDismissedMsg); !ok {
		t.Fatalf("expected dismissal message")
	}
	if a.View() != "" {
		t.Fatalf("hidden alert must render nothing")
	}
}

func TestRenderMarkdownHidesMarkup(t *testing.T) {
	t.Parallel()
	r, err := NewMarkdownRenderer("notty", 80)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	out := RenderMarkdown(r, "# Fire rating\n\nThe door needs **2 hours** of `FD120` protection.")
	for _, raw := range []string{"#", "**", "`"} {
		if strings.Contains(out, raw) {
			t.Fatalf("rendered output leaks %q:\n%s", raw, out)
		}
	}
	for _, want := range []string{"Fire rating", "2 hours", "FD120"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered output lost %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdownWithoutRenderer(t *testing.T) {
	t.Parallel()
	if got := RenderMarkdown(nil, "**raw**"); got != "**raw**" {
		t.Fatalf("nil renderer must pass text through, got %q", got)
	}
}

func TestMarkdownStyleFallsBackToDark(t *testing.T) {
	t.Parallel()
	cfg := MarkdownStyle("no-such-style")
	if cfg.H2.Prefix != "" {
		t.Fatalf("heading prefix must be stripped, got %q", cfg.H2.Prefix)
	}
}
