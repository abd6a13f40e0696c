package retouch

import (
	"strings"
	"testing"
)

func TestResolvePromptOverrideWins(t *testing.T) {
	got := ResolvePrompt("put the subject on the moon", "taekwondo")
	if got != "put the subject on the moon" {
		t.Fatalf("override should win, got %q", got)
	}
}

func TestResolvePromptOverrideTrimmed(t *testing.T) {
	got := ResolvePrompt("  custom scene  ", "")
	if got != "custom scene" {
		t.Fatalf("override should be trimmed, got %q", got)
	}
}

func TestResolvePromptStyleLookup(t *testing.T) {
	got := ResolvePrompt("", "taekwondo")
	if !strings.Contains(got, "dojang") {
		t.Fatalf("expected taekwondo prompt, got %q", got)
	}
}

func TestResolvePromptBlankOverrideIgnored(t *testing.T) {
	if got := ResolvePrompt("   ", "holiday"); got != PromptForStyle("holiday") {
		t.Fatalf("blank override should be ignored, got %q", got)
	}
}

func TestResolvePromptUnknownStyleFallsBack(t *testing.T) {
	got := ResolvePrompt("", "doesNotExist")
	if got != PromptForStyle(DefaultStyleID) {
		t.Fatalf("unknown style should fall back to default, got %q", got)
	}
}

func TestResolvePromptNeverEmpty(t *testing.T) {
	for _, style := range append(Styles(), "", "nope") {
		if ResolvePrompt("", style) == "" {
			t.Fatalf("empty prompt for style %q", style)
		}
	}
}
