package render

import (
	"github.com/gdamore/tcell/v2"

	mdrender "github.com/kk-code-lab/mdview/internal/render"
)

// ColorTheme defines the viewer's colors.
type ColorTheme struct {
	Background tcell.Color
	Foreground tcell.Color
	HeadingFg  tcell.Color
	LinkFg     tcell.Color
	MarkerFg   tcell.Color
	QuoteFg    tcell.Color
	RuleFg     tcell.Color
	CodeFg     tcell.Color
	CodeBg     tcell.Color
	CodeBlockFg tcell.Color
	CodeBlockBg tcell.Color
	LabelFg    tcell.Color
	StatusFg   tcell.Color
	StatusBg   tcell.Color
	ErrorFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeadingFg:   tcell.Color33,
		LinkFg:      tcell.Color39,
		MarkerFg:    tcell.Color33,
		QuoteFg:     tcell.ColorLightSlateGray,
		RuleFg:      tcell.ColorLightSlateGray,
		CodeFg:      tcell.Color44,  // brighter cyan text for inline code
		CodeBg:      tcell.ColorDefault,
		CodeBlockFg: tcell.Color252, // light grey text for fenced code
		CodeBlockBg: tcell.Color234, // darker grey background for fenced code
		LabelFg:     tcell.Color245,
		StatusFg:    tcell.ColorDefault,
		StatusBg:    tcell.ColorDefault,
		ErrorFg:     tcell.ColorRed,
	}
}

// StyleFor maps a semantic segment style onto a concrete tcell style.
func (t ColorTheme) StyleFor(kind mdrender.StyleKind) tcell.Style {
	base := tcell.StyleDefault.Background(t.Background).Foreground(t.Foreground)
	switch kind {
	case mdrender.StyleEmphasis:
		return base.Italic(true)
	case mdrender.StyleStrong:
		return base.Bold(true)
	case mdrender.StyleStrike:
		return base.StrikeThrough(true)
	case mdrender.StyleCode:
		return base.Foreground(t.CodeFg).Background(t.CodeBg)
	case mdrender.StyleCodeBlock:
		return base.Foreground(t.CodeBlockFg).Background(t.CodeBlockBg)
	case mdrender.StyleCodeLabel:
		return base.Foreground(t.LabelFg).Italic(true)
	case mdrender.StyleLink:
		return base.Foreground(t.LinkFg).Underline(true)
	case mdrender.StyleHeading:
		return base.Foreground(t.HeadingFg).Bold(true)
	case mdrender.StyleRule:
		return base.Foreground(t.RuleFg)
	case mdrender.StyleQuote:
		return base.Foreground(t.QuoteFg)
	case mdrender.StyleMarker:
		return base.Foreground(t.MarkerFg)
	default:
		return base
	}
}
