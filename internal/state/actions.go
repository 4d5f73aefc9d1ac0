package state

import "github.com/kk-code-lab/mdview/internal/markdown"

// Action is the base interface for all state mutations.
type Action interface{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type ScrollAction struct {
	// Delta moves relative to the current offset; Page scrolls by visible
	// height instead of lines.
	Delta int
	Page  bool
}

type ScrollToAction struct {
	// Bottom overrides Offset and jumps to the end of the document.
	Offset int
	Bottom bool
}

type ToggleWrapAction struct{}

// ===== DOCUMENT ACTIONS =====

// SetSourceAction replaces the viewed document with in-memory text and
// starts a parse for it.
type SetSourceAction struct {
	Path string
	Text string
}

// ReloadAction re-reads SourcePath and starts a fresh parse. Dispatched by
// the file watcher and by the manual reload key.
type ReloadAction struct{}

// ParseResultAction is delivered by the ParseLoader when a parse job
// finishes. Token identifies the request; stale tokens are dropped.
type ParseResultAction struct {
	Token int
	Path  string
	Doc   *markdown.Document
	Err   error
}
