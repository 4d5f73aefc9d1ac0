package render

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Context carries the mutable state one render pass needs: list nesting,
// per-depth ordered counters and the base location for resolving relative
// link and image destinations. Create a fresh Context per pass and discard
// it afterwards; it must never be shared between passes or goroutines.
type Context struct {
	// MaxWidth clamps table layout. Zero means unlimited.
	MaxWidth int

	baseDir string
	lists   []listLevel
}

type listLevel struct {
	ordered bool
	next    int
}

// NewContext builds a context for one pass. basePath is the document's
// source path (may be empty); only its directory is used.
func NewContext(basePath string, maxWidth int) *Context {
	ctx := &Context{MaxWidth: maxWidth}
	if basePath != "" {
		ctx.baseDir = filepath.Dir(basePath)
	}
	return ctx
}

// Depth reports the current list nesting depth; zero outside any list.
func (ctx *Context) Depth() int {
	return len(ctx.lists)
}

// pushList opens a list level. Ordered counters always restart at the
// list's declared start, so a nested list numbers independently of its
// parent.
func (ctx *Context) pushList(ordered bool, start int) {
	if start <= 0 {
		start = 1
	}
	ctx.lists = append(ctx.lists, listLevel{ordered: ordered, next: start})
}

func (ctx *Context) popList() {
	if len(ctx.lists) > 0 {
		ctx.lists = ctx.lists[:len(ctx.lists)-1]
	}
}

// nextMarker returns the marker for the next item at the current level and
// advances the counter. Literal source numbers beyond the start are
// ignored; items renumber sequentially.
func (ctx *Context) nextMarker() string {
	if len(ctx.lists) == 0 {
		return "•"
	}
	level := &ctx.lists[len(ctx.lists)-1]
	if level.ordered {
		marker := strconv.Itoa(level.next) + "."
		level.next++
		return marker
	}
	switch (len(ctx.lists) - 1) % 3 {
	case 0:
		return "•"
	case 1:
		return "◦"
	default:
		return "▪"
	}
}

// ResolveDestination maps a link or image destination to the form shown to
// the user: absolute URLs and paths pass through, relative paths are
// resolved against the document's directory. No I/O happens here.
func (ctx *Context) ResolveDestination(dest string) string {
	if dest == "" || ctx.baseDir == "" {
		return dest
	}
	if strings.Contains(dest, "://") ||
		strings.HasPrefix(dest, "mailto:") ||
		strings.HasPrefix(dest, "#") ||
		strings.HasPrefix(dest, "/") {
		return dest
	}
	return filepath.Join(ctx.baseDir, dest)
}
