package render

import (
	"github.com/kk-code-lab/mdview/internal/markdown"
)

// inlineSegments flattens inline nodes into styled segments on a single
// conceptual line. Hard breaks are handled by inlineLines; when they reach
// this function (nested inside emphasis, say) they degrade to a space.
func inlineSegments(inlines []markdown.Inline, defaultStyle StyleKind, ctx *Context) []Segment {
	var segments []Segment
	for _, inline := range inlines {
		switch inline.Kind {
		case markdown.InlineText:
			segments = append(segments, Segment{Text: inline.Literal, Style: defaultStyle})
		case markdown.InlineEmphasis:
			segments = append(segments, inlineSegments(inline.Children, StyleEmphasis, ctx)...)
		case markdown.InlineStrong:
			segments = append(segments, inlineSegments(inline.Children, StyleStrong, ctx)...)
		case markdown.InlineStrike:
			segments = append(segments, inlineSegments(inline.Children, StyleStrike, ctx)...)
		case markdown.InlineCode:
			segments = append(segments, Segment{Text: inline.Literal, Style: StyleCode})
		case markdown.InlineLink:
			segments = append(segments, inlineSegments(inline.Children, StyleLink, ctx)...)
			segments = appendDestination(segments, inline.Destination, ctx)
		case markdown.InlineAutolink:
			segments = append(segments, Segment{Text: inline.Literal, Style: StyleLink})
		case markdown.InlineImage:
			segments = append(segments, Segment{Text: inline.Literal, Style: defaultStyle})
			segments = appendDestination(segments, inline.Destination, ctx)
		case markdown.InlineLineBreak:
			segments = append(segments, Segment{Text: " ", Style: defaultStyle})
		}
	}
	return segments
}

func appendDestination(segments []Segment, dest string, ctx *Context) []Segment {
	if dest == "" {
		return segments
	}
	return append(segments,
		Segment{Text: " (", Style: StylePlain},
		Segment{Text: ctx.ResolveDestination(dest), Style: StyleLink},
		Segment{Text: ")", Style: StylePlain},
	)
}

// inlineLines renders inline content honoring hard line breaks: each break
// starts a new visual line. The result always has at least one line.
func inlineLines(inlines []markdown.Inline, defaultStyle StyleKind, ctx *Context) []Line {
	var lines []Line
	var current Line

	flush := func() {
		lines = append(lines, current)
		current = nil
	}

	for _, inline := range inlines {
		if inline.Kind == markdown.InlineLineBreak {
			flush()
			continue
		}
		current = append(current, inlineSegments([]markdown.Inline{inline}, defaultStyle, ctx)...)
	}
	flush()
	return lines
}
