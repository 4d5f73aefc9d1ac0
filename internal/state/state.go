package state

import (
	"github.com/kk-code-lab/mdview/internal/markdown"
)

// DocStatus is the observable lifecycle of the displayed document.
type DocStatus int

const (
	// DocNone: nothing has been requested yet.
	DocNone DocStatus = iota
	// DocParsing: a parse is in flight; Doc may still hold the previous
	// document so the view does not flash empty on reload.
	DocParsing
	// DocReady: Doc is the result of the newest requested parse.
	DocReady
)

// ViewState holds everything the viewer shows. It is owned by the event
// loop goroutine; async workers never touch it directly and instead
// dispatch actions back through the channel set with SetDispatch.
type ViewState struct {
	// Document
	SourcePath string
	Doc        *markdown.Document
	Status     DocStatus

	// Viewport
	ScrollOffset int
	Wrap         bool
	ScreenWidth  int
	ScreenHeight int

	// ContentLines is the rendered height of the current document; the
	// loop updates it after each paint so scrolling can clamp.
	ContentLines int

	// Error state; drawn in the status line, never fatal.
	LastErr error

	Loader ParseLoader

	dispatchAction func(Action)

	parseSeq         int
	activeParseToken int
}

// NewViewState builds the initial state for a source path (may be empty
// when viewing embedded text).
func NewViewState(path string, loader ParseLoader) *ViewState {
	return &ViewState{
		SourcePath: path,
		Status:     DocNone,
		Loader:     loader,
	}
}

// SetDispatch installs the callback used to route async results back into
// the event loop.
func (s *ViewState) SetDispatch(fn func(Action)) {
	s.dispatchAction = fn
}

func (s *ViewState) getDispatch() func(Action) {
	return s.dispatchAction
}

// Dispatch routes an action into the event loop. Safe to call from any
// goroutine once SetDispatch has been installed.
func (s *ViewState) Dispatch(action Action) {
	if s.dispatchAction != nil {
		s.dispatchAction(action)
	}
}

// ActiveParseToken reports the token of the in-flight parse, zero if none.
func (s *ViewState) ActiveParseToken() int {
	return s.activeParseToken
}

func (s *ViewState) nextParseToken() int {
	s.parseSeq++
	return s.parseSeq
}

// MaxScroll is the furthest allowed scroll offset for the current content.
func (s *ViewState) MaxScroll() int {
	visible := s.ScreenHeight - 1 // status line
	if visible < 1 {
		visible = 1
	}
	max := s.ContentLines - visible
	if max < 0 {
		max = 0
	}
	return max
}
