package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/mdview/internal/state"
)

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestHandlerQuitKeys(t *testing.T) {
	h := NewHandler()
	for _, ev := range []*tcell.EventKey{
		keyEvent(tcell.KeyEscape, 0),
		keyEvent(tcell.KeyCtrlC, 0),
		keyEvent(tcell.KeyRune, 'q'),
	} {
		actions, quit := h.HandleEvent(ev)
		if !quit {
			t.Fatalf("expected quit for %v", ev.Key())
		}
		if len(actions) != 0 {
			t.Fatalf("expected no actions on quit, got %v", actions)
		}
	}
}

func TestHandlerScrollKeys(t *testing.T) {
	h := NewHandler()
	tests := []struct {
		ev    *tcell.EventKey
		delta int
		page  bool
	}{
		{keyEvent(tcell.KeyUp, 0), -1, false},
		{keyEvent(tcell.KeyDown, 0), 1, false},
		{keyEvent(tcell.KeyRune, 'k'), -1, false},
		{keyEvent(tcell.KeyRune, 'j'), 1, false},
		{keyEvent(tcell.KeyPgUp, 0), -1, true},
		{keyEvent(tcell.KeyPgDn, 0), 1, true},
	}
	for _, tt := range tests {
		actions, quit := h.HandleEvent(tt.ev)
		if quit {
			t.Fatalf("unexpected quit for %v", tt.ev)
		}
		if len(actions) != 1 {
			t.Fatalf("expected 1 action, got %v", actions)
		}
		scroll, ok := actions[0].(statepkg.ScrollAction)
		if !ok {
			t.Fatalf("expected scroll action, got %#v", actions[0])
		}
		if scroll.Delta != tt.delta || scroll.Page != tt.page {
			t.Fatalf("expected delta %d page %v, got %#v", tt.delta, tt.page, scroll)
		}
	}
}

func TestHandlerJumpKeys(t *testing.T) {
	h := NewHandler()

	actions, _ := h.HandleEvent(keyEvent(tcell.KeyRune, 'g'))
	top, ok := actions[0].(statepkg.ScrollToAction)
	if !ok || top.Offset != 0 || top.Bottom {
		t.Fatalf("expected jump to top, got %#v", actions[0])
	}

	actions, _ = h.HandleEvent(keyEvent(tcell.KeyRune, 'G'))
	bottom, ok := actions[0].(statepkg.ScrollToAction)
	if !ok || !bottom.Bottom {
		t.Fatalf("expected jump to bottom, got %#v", actions[0])
	}
}

func TestHandlerReloadAndWrapKeys(t *testing.T) {
	h := NewHandler()

	actions, _ := h.HandleEvent(keyEvent(tcell.KeyRune, 'r'))
	if _, ok := actions[0].(statepkg.ReloadAction); !ok {
		t.Fatalf("expected reload action, got %#v", actions[0])
	}

	actions, _ = h.HandleEvent(keyEvent(tcell.KeyRune, 'w'))
	if _, ok := actions[0].(statepkg.ToggleWrapAction); !ok {
		t.Fatalf("expected wrap toggle, got %#v", actions[0])
	}
}

func TestHandlerMouseWheel(t *testing.T) {
	h := NewHandler()

	actions, quit := h.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if quit {
		t.Fatalf("unexpected quit on mouse event")
	}
	scroll, ok := actions[0].(statepkg.ScrollAction)
	if !ok || scroll.Delta != 3 {
		t.Fatalf("expected wheel scroll by 3, got %#v", actions[0])
	}

	actions, _ = h.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	scroll = actions[0].(statepkg.ScrollAction)
	if scroll.Delta != -3 {
		t.Fatalf("expected wheel scroll by -3, got %#v", actions[0])
	}
}

func TestHandlerIgnoresUnknownKeys(t *testing.T) {
	h := NewHandler()
	actions, quit := h.HandleEvent(keyEvent(tcell.KeyRune, 'z'))
	if quit || len(actions) != 0 {
		t.Fatalf("expected unknown key ignored, got %v quit=%v", actions, quit)
	}
}
