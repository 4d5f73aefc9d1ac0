package render

import (
	"strings"

	"github.com/kk-code-lab/mdview/internal/markdown"
	"github.com/kk-code-lab/mdview/internal/textutil"
)

// Document renders a parsed document into visual lines using a fresh
// context. Blocks appear in document order separated by one blank line.
func Document(doc *markdown.Document, maxWidth int) []Line {
	if doc == nil {
		return nil
	}
	ctx := NewContext(doc.BasePath, maxWidth)
	return Blocks(doc.Blocks, ctx)
}

// Blocks renders a block sequence with blank-line separation between
// non-empty siblings.
func Blocks(blocks []markdown.Block, ctx *Context) []Line {
	var lines []Line
	for idx, block := range blocks {
		rendered := Block(block, ctx)
		if idx > 0 && len(rendered) > 0 && len(lines) > 0 && len(lines[len(lines)-1]) != 0 {
			lines = append(lines, nil)
		}
		lines = append(lines, rendered...)
	}
	return lines
}

// Block renders one block into visual lines. It is a pure function of the
// block and the context; nested blocks recurse through the same context so
// list counters and depth stay correct.
func Block(block markdown.Block, ctx *Context) []Line {
	switch b := block.(type) {
	case markdown.Heading:
		return renderHeading(b, ctx)
	case markdown.Paragraph:
		return inlineLines(b.Text, StylePlain, ctx)
	case markdown.CodeBlock:
		return renderCodeBlock(b)
	case markdown.List:
		return renderList(b, ctx)
	case markdown.Blockquote:
		return renderBlockquote(b, ctx)
	case markdown.Rule:
		return []Line{{Segment{Text: "─", Style: StyleRule}}}
	case markdown.Table:
		return renderTable(b, ctx)
	case markdown.Unparsed:
		return renderUnparsed(b)
	default:
		return nil
	}
}

func renderHeading(b markdown.Heading, ctx *Context) []Line {
	prefix := strings.Repeat("#", b.Level)
	line := Line{Segment{Text: prefix + " ", Style: StyleHeading}}
	line = append(line, inlineSegments(b.Text, StyleHeading, ctx)...)
	return []Line{line}
}

func renderCodeBlock(b markdown.CodeBlock) []Line {
	if len(b.Lines) == 0 {
		return nil
	}
	const indent = "    "
	lines := make([]Line, 0, len(b.Lines)+1)
	if b.Language != "" {
		lines = append(lines, Line{Segment{Text: indent + "[" + b.Language + "]", Style: StyleCodeLabel}})
	}
	for _, raw := range b.Lines {
		text := textutil.ExpandTabs(raw, textutil.DefaultTabWidth)
		lines = append(lines, Line{Segment{Text: indent + text, Style: StyleCodeBlock}})
	}
	return lines
}

func renderList(list markdown.List, ctx *Context) []Line {
	pad := strings.Repeat("  ", ctx.Depth())
	ctx.pushList(list.Ordered, list.Start)
	defer ctx.popList()

	var lines []Line
	for _, item := range list.Items {
		marker := ctx.nextMarker()
		blocks := Blocks(item.Blocks, ctx)
		if len(blocks) == 0 {
			lines = append(lines, Line{Segment{Text: pad + marker, Style: StyleMarker}})
			continue
		}
		first := Line{
			Segment{Text: pad, Style: StylePlain},
			Segment{Text: marker + " ", Style: StyleMarker},
		}
		first = append(first, blocks[0]...)
		lines = append(lines, first)

		contPad := pad + strings.Repeat(" ", textutil.DisplayWidth(marker)+1)
		for _, line := range blocks[1:] {
			if len(line) == 0 {
				lines = append(lines, nil)
				continue
			}
			lines = append(lines, prefixLine(Segment{Text: contPad, Style: StylePlain}, line))
		}
	}
	return lines
}

func renderBlockquote(b markdown.Blockquote, ctx *Context) []Line {
	content := Blocks(b.Blocks, ctx)
	if len(content) == 0 {
		return nil
	}
	out := make([]Line, 0, len(content))
	for _, line := range content {
		out = append(out, prefixLine(Segment{Text: "│ ", Style: StyleQuote}, line))
	}
	return out
}

func renderUnparsed(b markdown.Unparsed) []Line {
	raw := strings.Split(b.Text, "\n")
	lines := make([]Line, 0, len(raw))
	for _, text := range raw {
		lines = append(lines, Line{Segment{Text: text, Style: StylePlain}})
	}
	return lines
}
