package markdown

import "strings"

// parseTable recognizes a pipe table: a header row immediately followed by
// an alignment separator row. Data rows are normalized to the header width,
// dropping extra cells and padding missing ones with empty content.
func (p parser) parseTable(lines []string, start, offset int) (Table, int, bool) {
	if start+1 >= len(lines) {
		return Table{}, start, false
	}
	header := strings.TrimSpace(lines[start])
	separator := strings.TrimSpace(lines[start+1])
	if !looksLikeTableHeader(header) || !looksLikeTableSeparator(separator) {
		return Table{}, start, false
	}

	headerCells := splitTableRow(header)
	separators := splitTableRow(separator)
	if len(headerCells) == 0 || len(headerCells) != len(separators) {
		return Table{}, start, false
	}
	align := parseTableAlignment(separators)

	headerInlines := make([][]Inline, len(headerCells))
	for i, cell := range headerCells {
		headerInlines[i] = parseInline(cell)
	}

	var rows [][][]Inline
	i := start + 2
	for i < len(lines) {
		line := lines[i]
		if isBlankLine(line) || !strings.Contains(line, "|") {
			break
		}
		cells := splitTableRow(line)
		row := make([][]Inline, len(headerInlines))
		for j := range headerInlines {
			if j < len(cells) {
				row[j] = parseInline(cells[j])
			}
		}
		rows = append(rows, row)
		i++
	}

	return Table{
		Align:  align,
		Header: headerInlines,
		Rows:   rows,
		Src:    Span{Start: offset + start, End: offset + i},
	}, i, true
}

func looksLikeTableStart(lines []string, index int) bool {
	if index+1 >= len(lines) {
		return false
	}
	header := strings.TrimSpace(lines[index])
	separator := strings.TrimSpace(lines[index+1])
	if !looksLikeTableHeader(header) || !looksLikeTableSeparator(separator) {
		return false
	}
	headers := splitTableRow(header)
	separators := splitTableRow(separator)
	return len(headers) > 0 && len(headers) == len(separators)
}

func looksLikeTableHeader(line string) bool {
	return strings.Contains(line, "|")
}

func looksLikeTableSeparator(line string) bool {
	parts := splitTableRow(line)
	if len(parts) == 0 {
		return false
	}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return false
		}
		if strings.IndexFunc(part, func(r rune) bool { return r != '-' && r != ':' }) != -1 {
			return false
		}
	}
	return true
}

func parseTableAlignment(parts []string) []Alignment {
	align := make([]Alignment, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		left := strings.HasPrefix(part, ":")
		right := strings.HasSuffix(part, ":")
		switch {
		case left && right:
			align[i] = AlignCenter
		case right:
			align[i] = AlignRight
		case left:
			align[i] = AlignLeft
		default:
			align[i] = AlignDefault
		}
	}
	return align
}

func splitTableRow(line string) []string {
	line = strings.Trim(strings.TrimSpace(line), "|")
	parts := splitPipes(line)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// splitPipes splits on `|` while respecting backslash escapes and leaving
// pipes inside code spans alone.
func splitPipes(line string) []string {
	var parts []string
	var buf []rune
	inCode := false
	backticks := 0
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			if i+1 < len(runes) {
				buf = append(buf, r, runes[i+1])
				i++
				continue
			}
		case '`':
			if !inCode {
				backticks = countRepeat(runes[i:], '`')
				inCode = true
				buf = append(buf, runes[i:i+backticks]...)
				i += backticks - 1
				continue
			}
			if countRepeat(runes[i:], '`') == backticks {
				buf = append(buf, runes[i:i+backticks]...)
				i += backticks - 1
				inCode = false
				backticks = 0
				continue
			}
		case '|':
			if !inCode {
				parts = append(parts, string(buf))
				buf = buf[:0]
				continue
			}
		}
		buf = append(buf, r)
	}
	parts = append(parts, string(buf))
	return parts
}
