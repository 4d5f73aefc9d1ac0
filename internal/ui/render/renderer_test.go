package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/mdview/internal/markdown"
	statepkg "github.com/kk-code-lab/mdview/internal/state"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func readyState(src string, w, h int) *statepkg.ViewState {
	state := statepkg.NewViewState("", nil)
	state.Doc = markdown.Parse(src)
	state.Status = statepkg.DocReady
	state.ScreenWidth = w
	state.ScreenHeight = h
	return state
}

func TestRenderReturnsContentHeight(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewRenderer(screen)

	state := readyState("# Title\n\nbody\n", 80, 24)
	if got := r.Render(state); got != 3 {
		t.Fatalf("expected 3 content lines, got %d", got)
	}

	mainc, _, _, _ := screen.GetContent(0, 0)
	if mainc != '#' {
		t.Fatalf("expected heading hash at origin, got %q", mainc)
	}
}

func TestRenderEmptyStateIsZeroLines(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewRenderer(screen)

	state := statepkg.NewViewState("", nil)
	state.ScreenWidth = 80
	state.ScreenHeight = 24
	if got := r.Render(state); got != 0 {
		t.Fatalf("expected 0 lines without document, got %d", got)
	}
}

func TestRenderWrapIncreasesLineCount(t *testing.T) {
	screen := newTestScreen(t, 20, 24)
	r := NewRenderer(screen)

	src := strings.Repeat("word ", 20) + "\n"
	state := readyState(src, 20, 24)

	unwrapped := r.Render(state)
	state.Wrap = true
	wrapped := r.Render(state)

	if wrapped <= unwrapped {
		t.Fatalf("expected wrapping to add lines: %d vs %d", wrapped, unwrapped)
	}
}

func TestRenderScrollOffsetShiftsContent(t *testing.T) {
	screen := newTestScreen(t, 80, 5)
	r := NewRenderer(screen)

	state := readyState("one\n\ntwo\n\nthree\n", 80, 5)
	state.ScrollOffset = 2
	r.Render(state)

	mainc, _, _, _ := screen.GetContent(0, 0)
	if mainc != 't' {
		t.Fatalf("expected scrolled content at top, got %q", mainc)
	}
}

func TestRenderHandlesZeroSize(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewRenderer(screen)

	state := readyState("x\n", 0, 0)
	if got := r.Render(state); got != 0 {
		t.Fatalf("expected no lines at zero size, got %d", got)
	}
}
