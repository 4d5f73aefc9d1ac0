package textutil

import "testing"

func TestDisplayWidthWideRunes(t *testing.T) {
	if got := DisplayWidth("abc"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := DisplayWidth("日本"); got != 4 {
		t.Fatalf("expected wide runes to count double, got %d", got)
	}
	if got := DisplayWidth(""); got != 0 {
		t.Fatalf("expected 0 for empty string, got %d", got)
	}
}

func TestExpandTabsAlignsToStops(t *testing.T) {
	if got := ExpandTabs("\tx", 4); got != "    x" {
		t.Fatalf("expected leading tab to expand fully, got %q", got)
	}
	if got := ExpandTabs("ab\tc", 4); got != "ab  c" {
		t.Fatalf("expected tab to reach next stop, got %q", got)
	}
	if got := ExpandTabs("no tabs", 4); got != "no tabs" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := ExpandTabs("\tx", 0); got != "\tx" {
		t.Fatalf("expected zero width to disable expansion, got %q", got)
	}
}

func TestSanitizeTerminalTextControlChars(t *testing.T) {
	if got := SanitizeTerminalText("plain text"); got != "plain text" {
		t.Fatalf("expected clean text untouched, got %q", got)
	}
	if got := SanitizeTerminalText("a\x1b[31mred"); got != "a?[31mred" {
		t.Fatalf("expected escape byte replaced, got %q", got)
	}
	if got := SanitizeTerminalText("line\nbreak"); got != "line break" {
		t.Fatalf("expected newline replaced with space, got %q", got)
	}
}

func TestSanitizeTerminalTextKeepsTabs(t *testing.T) {
	if got := SanitizeTerminalText("a\tb"); got != "a\tb" {
		t.Fatalf("expected tabs preserved for later expansion, got %q", got)
	}
}

func TestSanitizeTerminalTextLabelsFormattingRunes(t *testing.T) {
	if got := SanitizeTerminalText("a​b"); got != "a⟪ZWSP⟫b" {
		t.Fatalf("expected zero-width space labeled, got %q", got)
	}
	if got := SanitizeTerminalText("x‮y"); got != "x⟪RLO⟫y" {
		t.Fatalf("expected RLO labeled, got %q", got)
	}
}
