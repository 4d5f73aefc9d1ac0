package input

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/mdview/internal/state"
)

// Handler translates tcell events into state actions.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// HandleEvent maps one event to actions. quit reports that the user asked
// to leave; no action is produced for it.
func (h *Handler) HandleEvent(ev tcell.Event) (actions []statepkg.Action, quit bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(e)
	case *tcell.EventMouse:
		return h.handleMouse(e), false
	}
	return nil, false
}

func (h *Handler) handleKey(ev *tcell.EventKey) ([]statepkg.Action, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyUp:
		return []statepkg.Action{statepkg.ScrollAction{Delta: -1}}, false
	case tcell.KeyDown:
		return []statepkg.Action{statepkg.ScrollAction{Delta: 1}}, false
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		return []statepkg.Action{statepkg.ScrollAction{Delta: -1, Page: true}}, false
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		return []statepkg.Action{statepkg.ScrollAction{Delta: 1, Page: true}}, false
	case tcell.KeyHome:
		return []statepkg.Action{statepkg.ScrollToAction{Offset: 0}}, false
	case tcell.KeyEnd:
		return []statepkg.Action{statepkg.ScrollToAction{Bottom: true}}, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return nil, true
		case 'k':
			return []statepkg.Action{statepkg.ScrollAction{Delta: -1}}, false
		case 'j':
			return []statepkg.Action{statepkg.ScrollAction{Delta: 1}}, false
		case 'g':
			return []statepkg.Action{statepkg.ScrollToAction{Offset: 0}}, false
		case 'G':
			return []statepkg.Action{statepkg.ScrollToAction{Bottom: true}}, false
		case 'r':
			return []statepkg.Action{statepkg.ReloadAction{}}, false
		case 'w':
			return []statepkg.Action{statepkg.ToggleWrapAction{}}, false
		}
	}
	return nil, false
}

func (h *Handler) handleMouse(ev *tcell.EventMouse) []statepkg.Action {
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		return []statepkg.Action{statepkg.ScrollAction{Delta: -3}}
	case ev.Buttons()&tcell.WheelDown != 0:
		return []statepkg.Action{statepkg.ScrollAction{Delta: 3}}
	}
	return nil
}
