package render

import (
	"strings"

	"github.com/kk-code-lab/mdview/internal/markdown"
	"github.com/kk-code-lab/mdview/internal/textutil"
	"github.com/rivo/uniseg"
)

type tableBorders struct {
	topLeft, topSep, topRight          string
	midLeft, midSep, midRight          string
	bottomLeft, bottomSep, bottomRight string
}

func defaultTableBorders() tableBorders {
	return tableBorders{
		topLeft:    "┌",
		topSep:     "┬",
		topRight:   "┐",
		midLeft:    "├",
		midSep:     "┼",
		midRight:   "┤",
		bottomLeft: "└",
		bottomSep:  "┴",
		bottomRight: "┘",
	}
}

type tableCell struct {
	lines []cellLine
}

type cellLine struct {
	segments Line
	width    int
}

func renderTable(tbl markdown.Table, ctx *Context) []Line {
	if len(tbl.Header) == 0 {
		return nil
	}

	header := make([]tableCell, len(tbl.Header))
	for i, cell := range tbl.Header {
		header[i] = makeTableCell(cell, StyleStrong, ctx)
	}
	rows := make([][]tableCell, len(tbl.Rows))
	for i, row := range tbl.Rows {
		rows[i] = make([]tableCell, len(tbl.Header))
		for j := range tbl.Header {
			var content []markdown.Inline
			if j < len(row) {
				content = row[j]
			}
			rows[i][j] = makeTableCell(content, StylePlain, ctx)
		}
	}

	widths := computeColumnWidths(header, rows)
	widths = clampColumnWidths(widths, ctx.MaxWidth)
	header = wrapCells(header, widths)
	for i := range rows {
		rows[i] = wrapCells(rows[i], widths)
	}

	borders := defaultTableBorders()
	borderCols := make([]string, len(widths))
	for i, w := range widths {
		borderCols[i] = strings.Repeat("─", w+2)
	}

	var lines []Line
	lines = append(lines, borderLine(borderCols, borders.topLeft, borders.topSep, borders.topRight))
	for i := 0; i < cellBlockHeight(header); i++ {
		lines = append(lines, tableRowLine(header, i, widths, tbl.Align))
	}
	lines = append(lines, borderLine(borderCols, borders.midLeft, borders.midSep, borders.midRight))
	for _, row := range rows {
		for i := 0; i < cellBlockHeight(row); i++ {
			lines = append(lines, tableRowLine(row, i, widths, tbl.Align))
		}
	}
	lines = append(lines, borderLine(borderCols, borders.bottomLeft, borders.bottomSep, borders.bottomRight))
	return lines
}

func makeTableCell(inlines []markdown.Inline, defaultStyle StyleKind, ctx *Context) tableCell {
	rendered := inlineLines(inlines, defaultStyle, ctx)
	cellLines := make([]cellLine, 0, len(rendered))
	for _, line := range rendered {
		expanded := expandTabsInLine(line)
		cellLines = append(cellLines, cellLine{
			segments: expanded,
			width:    textutil.DisplayWidth(expanded.Text()),
		})
	}
	if len(cellLines) == 0 {
		cellLines = []cellLine{{}}
	}
	return tableCell{lines: cellLines}
}

func expandTabsInLine(line Line) Line {
	changed := false
	for _, seg := range line {
		if strings.ContainsRune(seg.Text, '\t') {
			changed = true
			break
		}
	}
	if !changed {
		return line
	}
	out := make(Line, 0, len(line))
	column := 0
	for _, seg := range line {
		text := seg.Text
		if strings.ContainsRune(text, '\t') {
			var b strings.Builder
			for _, r := range text {
				if r == '\t' {
					spaces := textutil.DefaultTabWidth - (column % textutil.DefaultTabWidth)
					b.WriteString(strings.Repeat(" ", spaces))
					column += spaces
					continue
				}
				b.WriteRune(r)
				column += textutil.DisplayWidth(string(r))
			}
			text = b.String()
		} else {
			column += textutil.DisplayWidth(text)
		}
		out = append(out, Segment{Text: text, Style: seg.Style})
	}
	return out
}

func borderLine(columns []string, left, sep, right string) Line {
	return Line{Segment{Text: left + strings.Join(columns, sep) + right, Style: StyleRule}}
}

func computeColumnWidths(header []tableCell, rows [][]tableCell) []int {
	widths := make([]int, len(header))
	update := func(cell tableCell, idx int) {
		for _, line := range cell.lines {
			if line.width > widths[idx] {
				widths[idx] = line.width
			}
		}
	}
	for i, cell := range header {
		update(cell, i)
	}
	for _, row := range rows {
		for i := range widths {
			if i < len(row) {
				update(row[i], i)
			}
		}
	}
	for i, w := range widths {
		if w == 0 {
			widths[i] = 1
		}
	}
	return widths
}

func clampColumnWidths(widths []int, maxWidth int) []int {
	if maxWidth <= 0 || len(widths) == 0 {
		return widths
	}
	const minColWidth = 3
	total := totalTableWidth(widths)
	for total > maxWidth {
		idx := widestColumn(widths, minColWidth)
		if idx == -1 {
			break
		}
		widths[idx]--
		total--
	}
	return widths
}

func totalTableWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	// Per column: two padding spaces and one border, plus the closing border.
	return total + len(widths)*3 + 1
}

func widestColumn(widths []int, minWidth int) int {
	maxIdx := -1
	maxVal := minWidth
	for i, w := range widths {
		if w > maxVal {
			maxVal = w
			maxIdx = i
		}
	}
	return maxIdx
}

func wrapCells(cells []tableCell, widths []int) []tableCell {
	out := make([]tableCell, len(cells))
	for i, cell := range cells {
		width := 1
		if i < len(widths) {
			width = widths[i]
		}
		out[i] = wrapCell(cell, width)
	}
	return out
}

func wrapCell(cell tableCell, width int) tableCell {
	var wrapped []cellLine
	for _, line := range cell.lines {
		for _, segs := range WrapSegments(line.segments, width) {
			wrapped = append(wrapped, cellLine{
				segments: segs,
				width:    textutil.DisplayWidth(segs.Text()),
			})
		}
	}
	if len(wrapped) == 0 {
		wrapped = []cellLine{{}}
	}
	return tableCell{lines: wrapped}
}

// WrapSegments splits a styled line into display rows no wider than width,
// breaking on grapheme cluster boundaries so wide runes never straddle a
// row edge.
func WrapSegments(segments Line, width int) []Line {
	if width <= 0 {
		return []Line{segments}
	}
	var lines []Line
	var current Line
	currentWidth := 0

	flush := func() {
		line := make(Line, len(current))
		copy(line, current)
		lines = append(lines, line)
		current = current[:0]
		currentWidth = 0
	}

	for _, seg := range segments {
		text := seg.Text
		if text == "" {
			continue
		}
		var buf strings.Builder
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			cluster := g.Str()
			w := textutil.DisplayWidth(cluster)
			if w < 1 {
				w = 1
			}
			if currentWidth > 0 && currentWidth+w > width {
				if buf.Len() > 0 {
					current = append(current, Segment{Text: buf.String(), Style: seg.Style})
					buf.Reset()
				}
				flush()
			}
			if w > width {
				continue
			}
			buf.WriteString(cluster)
			currentWidth += w
			if currentWidth == width {
				current = append(current, Segment{Text: buf.String(), Style: seg.Style})
				buf.Reset()
				flush()
			}
		}
		if buf.Len() > 0 {
			current = append(current, Segment{Text: buf.String(), Style: seg.Style})
		}
	}
	if len(current) > 0 {
		flush()
	}
	if len(lines) == 0 {
		lines = append(lines, Line{})
	}
	return lines
}

func cellBlockHeight(cells []tableCell) int {
	height := 1
	for _, cell := range cells {
		if len(cell.lines) > height {
			height = len(cell.lines)
		}
	}
	return height
}

func tableRowLine(cells []tableCell, lineIdx int, widths []int, align []markdown.Alignment) Line {
	var out Line
	out = append(out, Segment{Text: "│ ", Style: StyleRule})
	for i, cell := range cells {
		var line cellLine
		if lineIdx < len(cell.lines) {
			line = cell.lines[lineIdx]
		}
		out = append(out, alignCell(line, widths[i], alignAt(i, align))...)
		if i == len(cells)-1 {
			out = append(out, Segment{Text: " │", Style: StyleRule})
		} else {
			out = append(out, Segment{Text: " │ ", Style: StyleRule})
		}
	}
	return out
}

func alignCell(line cellLine, width int, alignment markdown.Alignment) Line {
	space := width - line.width
	if space < 0 {
		space = 0
	}
	left, right := 0, space
	switch alignment {
	case markdown.AlignCenter:
		left = space / 2
		right = space - left
	case markdown.AlignRight:
		left = space
		right = 0
	}

	segments := make(Line, 0, len(line.segments)+2)
	if left > 0 {
		segments = append(segments, Segment{Text: strings.Repeat(" ", left), Style: StylePlain})
	}
	segments = append(segments, line.segments...)
	if right > 0 {
		segments = append(segments, Segment{Text: strings.Repeat(" ", right), Style: StylePlain})
	}
	return segments
}

func alignAt(idx int, align []markdown.Alignment) markdown.Alignment {
	if idx < len(align) {
		return align[idx]
	}
	return markdown.AlignDefault
}
