package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	mdrender "github.com/kk-code-lab/mdview/internal/render"
	statepkg "github.com/kk-code-lab/mdview/internal/state"
	"github.com/kk-code-lab/mdview/internal/textutil"
)

// Renderer paints the view state onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render paints one frame and returns the total rendered content height so
// the caller can clamp scrolling. A fresh render context is created per
// frame; nothing is retained between frames.
func (r *Renderer) Render(state *statepkg.ViewState) int {
	r.screen.Clear()

	width, height := state.ScreenWidth, state.ScreenHeight
	if width <= 0 || height <= 0 {
		r.screen.Show()
		return 0
	}

	lines := r.documentLines(state, width)

	visible := height - 1
	offset := state.ScrollOffset
	if offset > len(lines) {
		offset = len(lines)
	}
	for row := 0; row < visible && offset+row < len(lines); row++ {
		r.drawLine(0, row, width, lines[offset+row])
	}

	r.drawStatusLine(state, len(lines))
	r.screen.Show()
	return len(lines)
}

func (r *Renderer) documentLines(state *statepkg.ViewState, width int) []mdrender.Line {
	if state.Doc == nil {
		return nil
	}
	lines := mdrender.Document(state.Doc, width)
	if !state.Wrap {
		return lines
	}
	var wrapped []mdrender.Line
	for _, line := range lines {
		wrapped = append(wrapped, mdrender.WrapSegments(line, width)...)
	}
	return wrapped
}

func (r *Renderer) drawLine(x, y, maxWidth int, line mdrender.Line) {
	col := x
	for _, seg := range line {
		style := r.theme.StyleFor(seg.Style)
		text := textutil.SanitizeTerminalText(seg.Text)
		text = textutil.ExpandTabs(text, textutil.DefaultTabWidth)
		for _, ru := range text {
			w := runewidth.RuneWidth(ru)
			if w < 1 {
				w = 1
			}
			if col+w > x+maxWidth {
				return
			}
			r.screen.SetContent(col, y, ru, nil, style)
			col += w
		}
	}
}

func (r *Renderer) drawStatusLine(state *statepkg.ViewState, contentLines int) {
	width, height := state.ScreenWidth, state.ScreenHeight
	y := height - 1
	if y < 0 {
		return
	}

	left := state.SourcePath
	if left == "" {
		left = "(built-in document)"
	}

	var right string
	switch {
	case state.LastErr != nil:
		right = "error: " + state.LastErr.Error()
	case state.Status == statepkg.DocParsing:
		right = "parsing…"
	case state.Status == statepkg.DocNone:
		right = "no document"
	default:
		top := state.ScrollOffset + 1
		if contentLines == 0 {
			top = 0
		}
		bottom := state.ScrollOffset + height - 1
		if bottom > contentLines {
			bottom = contentLines
		}
		right = fmt.Sprintf("%d-%d/%d", top, bottom, contentLines)
	}

	style := tcell.StyleDefault.Foreground(r.theme.StatusFg).Background(r.theme.StatusBg).Reverse(true)
	if state.LastErr != nil {
		style = style.Foreground(r.theme.ErrorFg)
	}

	leftText := textutil.SanitizeTerminalText(left)
	rightText := textutil.SanitizeTerminalText(right)
	gap := width - textutil.DisplayWidth(leftText) - textutil.DisplayWidth(rightText) - 2
	var text string
	if gap >= 0 {
		text = " " + leftText + strings.Repeat(" ", gap) + rightText + " "
	} else {
		text = " " + rightText + " "
	}

	col := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w < 1 {
			w = 1
		}
		if col+w > width {
			break
		}
		r.screen.SetContent(col, y, ru, nil, style)
		col += w
	}
	for ; col < width; col++ {
		r.screen.SetContent(col, y, ' ', nil, style)
	}
}
