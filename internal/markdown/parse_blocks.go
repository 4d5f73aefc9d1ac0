package markdown

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const nestingLimit = 64
const fenceIndentLimit = 3

// Option configures Parse.
type Option func(*parseConfig)

type parseConfig struct {
	basePath string
	langs    *LanguageRegistry
}

// WithBasePath records the source location on the Document so renderers can
// resolve relative link and image destinations.
func WithBasePath(path string) Option {
	return func(c *parseConfig) { c.basePath = path }
}

// WithLanguages sets the registry used to normalize code fence info strings.
func WithLanguages(r *LanguageRegistry) Option {
	return func(c *parseConfig) { c.langs = r }
}

// Parse turns markdown source into a Document. It never fails: input that
// matches no construct survives as paragraph or Unparsed blocks. Parse does
// no I/O and is safe to call from any goroutine.
func Parse(text string, opts ...Option) *Document {
	cfg := parseConfig{langs: DefaultLanguages()}
	for _, opt := range opts {
		opt(&cfg)
	}
	p := parser{langs: cfg.langs}
	blocks := p.parseBlocks(SplitLines(text), 0, 0)
	return &Document{Blocks: blocks, BasePath: cfg.basePath}
}

// SplitLines splits source text into lines, tolerating CRLF endings.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type parser struct {
	langs *LanguageRegistry
}

// parseBlocks consumes lines into blocks. offset is the absolute source
// line number of lines[0]; spans on the produced blocks are expressed in
// absolute lines so nested blocks stay mappable to the original input.
func (p parser) parseBlocks(lines []string, offset int, depth int) []Block {
	if depth >= nestingLimit && len(lines) > 0 {
		return []Block{Unparsed{
			Text: strings.Join(lines, "\n"),
			Src:  Span{Start: offset, End: offset + len(lines)},
		}}
	}

	var blocks []Block
	i := 0
	for i < len(lines) {
		line := lines[i]
		if isBlankLine(line) {
			i++
			continue
		}

		indent := leadingSpaces(line)
		trimmed := strings.TrimLeft(line, " \t")

		if indent >= 4 {
			block, next := p.parseIndentedCode(lines, i, offset)
			blocks = append(blocks, block)
			i = next
			continue
		}

		if fence, ok := detectFence(trimmed); ok {
			block, next := p.parseFencedCode(lines, i, offset, fence)
			blocks = append(blocks, block)
			i = next
			continue
		}

		if level, text, ok := parseHeadingLine(trimmed); ok {
			blocks = append(blocks, Heading{
				Level: level,
				Text:  parseInline(text),
				Src:   Span{Start: offset + i, End: offset + i + 1},
			})
			i++
			continue
		}

		// Rule before list so a bare "***" is never an empty list item.
		if isRuleLine(trimmed) {
			blocks = append(blocks, Rule{Src: Span{Start: offset + i, End: offset + i + 1}})
			i++
			continue
		}

		if strings.HasPrefix(trimmed, ">") {
			block, next := p.parseBlockquote(lines, i, offset, depth)
			blocks = append(blocks, block)
			i = next
			continue
		}

		if list, next, ok := p.parseList(lines, i, offset, depth); ok {
			blocks = append(blocks, list)
			i = next
			continue
		}

		if tbl, next, ok := p.parseTable(lines, i, offset); ok {
			blocks = append(blocks, tbl)
			i = next
			continue
		}

		if level, ok := detectSetextHeading(lines, i); ok {
			blocks = append(blocks, Heading{
				Level: level,
				Text:  parseInline(strings.TrimSpace(lines[i])),
				Src:   Span{Start: offset + i, End: offset + i + 2},
			})
			i += 2
			continue
		}

		block, next := p.parseParagraph(lines, i, offset)
		if next == i {
			// No rule consumed anything; keep the line and move on.
			blocks = append(blocks, Unparsed{
				Text: line,
				Src:  Span{Start: offset + i, End: offset + i + 1},
			})
			next = i + 1
		} else {
			blocks = append(blocks, block)
		}
		i = next
	}
	return blocks
}

func (p parser) parseParagraph(lines []string, start, offset int) (Paragraph, int) {
	var parts []string
	i := start
	for i < len(lines) {
		line := lines[i]
		if isBlankLine(line) {
			break
		}
		if leadingSpaces(line) >= 4 || p.startsBlock(lines, i) {
			break
		}
		parts = append(parts, line)
		i++
	}

	text := joinParagraphLines(parts)
	return Paragraph{
		Text: parseInline(text),
		Src:  Span{Start: offset + start, End: offset + i},
	}, i
}

func (p parser) parseBlockquote(lines []string, start, offset, depth int) (Blockquote, int) {
	var quoteLines []string
	i := start
	for i < len(lines) {
		line := lines[i]
		if isBlankLine(line) {
			quoteLines = append(quoteLines, "")
			i++
			continue
		}

		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, ">") {
			break
		}
		stripped := strings.TrimPrefix(trimmed, ">")
		stripped = strings.TrimPrefix(stripped, " ")
		quoteLines = append(quoteLines, stripped)
		i++
	}

	// quoteLines map one-to-one onto the consumed source lines, so the
	// nested parse keeps absolute spans.
	children := p.parseBlocks(quoteLines, offset+start, depth+1)
	return Blockquote{
		Blocks: children,
		Src:    Span{Start: offset + start, End: offset + i},
	}, i
}

type fenceSpec struct {
	delimiter rune
	length    int
	info      string
}

func detectFence(trimmed string) (fenceSpec, bool) {
	if trimmed == "" {
		return fenceSpec{}, false
	}
	first, size := utf8.DecodeRuneInString(trimmed)
	if size == 0 || (first != '`' && first != '~') {
		return fenceSpec{}, false
	}
	count := countRepeatRune(trimmed, first)
	if count < 3 {
		return fenceSpec{}, false
	}
	return fenceSpec{
		delimiter: first,
		length:    count,
		info:      strings.TrimSpace(trimmed[count:]),
	}, true
}

func (p parser) parseFencedCode(lines []string, start, offset int, fence fenceSpec) (CodeBlock, int) {
	lang := p.langs.Normalize(fence.info)
	var content []string
	i := start + 1
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimLeft(line, " \t")
		if leadingSpaces(line) <= fenceIndentLimit {
			if closing, ok := detectFence(trimmed); ok &&
				closing.delimiter == fence.delimiter && closing.length >= fence.length && closing.info == "" {
				return CodeBlock{
					Language: lang,
					Lines:    content,
					Fenced:   true,
					Src:      Span{Start: offset + start, End: offset + i + 1},
				}, i + 1
			}
		}
		content = append(content, line)
		i++
	}
	// Unterminated fence consumes to end of input.
	return CodeBlock{
		Language: lang,
		Lines:    content,
		Fenced:   true,
		Src:      Span{Start: offset + start, End: offset + i},
	}, i
}

func (p parser) parseIndentedCode(lines []string, start, offset int) (CodeBlock, int) {
	var content []string
	i := start
	for i < len(lines) {
		line := lines[i]
		if isBlankLine(line) {
			content = append(content, "")
			i++
			continue
		}
		if leadingSpaces(line) < 4 {
			break
		}
		content = append(content, line[4:])
		i++
	}
	for len(content) > 0 && content[len(content)-1] == "" {
		content = content[:len(content)-1]
	}
	return CodeBlock{
		Lines: content,
		Src:   Span{Start: offset + start, End: offset + i},
	}, i
}

type listMarker struct {
	ordered   bool
	number    int
	markerLen int
	indent    int
	content   string
}

func (p parser) parseList(lines []string, start, offset, depth int) (List, int, bool) {
	marker, ok := parseListMarker(lines[start])
	if !ok {
		return List{}, start, false
	}

	baseIndent := marker.indent
	list := List{
		Ordered: marker.ordered,
		Start:   marker.number,
	}
	if !list.Ordered || list.Start <= 0 {
		list.Start = 1
	}

	i := start
	for i < len(lines) {
		m, ok := parseListMarker(lines[i])
		if !ok || m.indent != baseIndent || m.ordered != list.Ordered {
			break
		}

		itemStart := i
		itemLines := []string{m.content}
		contentIndent := baseIndent + m.markerLen + 1
		codeIndent := contentIndent + 4
		inFence := false
		var fenceDelimiter rune
		var fenceLength int
		i++
		for i < len(lines) {
			line := lines[i]
			if isBlankLine(line) {
				itemLines = append(itemLines, "")
				i++
				continue
			}

			if !inFence {
				if nextMarker, ok := parseListMarker(line); ok && nextMarker.indent == baseIndent {
					break
				}
			}

			if leadingSpaces(line) < contentIndent {
				break
			}

			content := line[contentIndent:]
			contentLeading := leadingSpaces(content)
			trimmedContent := strings.TrimLeft(content, " \t")

			if inFence {
				itemLines = append(itemLines, trimmedContent)
				if contentLeading <= fenceIndentLimit {
					if count := countRepeatRune(trimmedContent, fenceDelimiter); count >= fenceLength {
						inFence = false
					}
				}
				i++
				continue
			}

			if contentLeading <= fenceIndentLimit {
				if fence, ok := detectFence(trimmedContent); ok {
					inFence = true
					fenceDelimiter = fence.delimiter
					fenceLength = fence.length
					itemLines = append(itemLines, trimmedContent)
					i++
					continue
				}
			}

			if leadingSpaces(line) >= codeIndent {
				itemLines = append(itemLines, content)
				i++
				continue
			}

			itemLines = append(itemLines, trimmedContent)
			i++
		}

		// Trailing blanks belong to the gap between items, not the item.
		for len(itemLines) > 0 && itemLines[len(itemLines)-1] == "" {
			itemLines = itemLines[:len(itemLines)-1]
		}

		itemBlocks := p.parseBlocks(itemLines, offset+itemStart, depth+1)
		list.Items = append(list.Items, ListItem{Blocks: itemBlocks})
	}

	list.Src = Span{Start: offset + start, End: offset + i}
	return list, i, true
}

func parseListMarker(line string) (listMarker, bool) {
	if isBlankLine(line) {
		return listMarker{}, false
	}
	indent := leadingSpaces(line)
	trimmed := line[indent:]
	if trimmed == "" {
		return listMarker{}, false
	}

	if isBullet(trimmed[0]) {
		if len(trimmed) < 2 || !isSpaceOrTab(rune(trimmed[1])) {
			return listMarker{}, false
		}
		return listMarker{
			markerLen: 1,
			indent:    indent,
			content:   strings.TrimLeft(trimmed[2:], " \t"),
		}, true
	}

	if unicode.IsDigit(rune(trimmed[0])) {
		j := 0
		for j < len(trimmed) && unicode.IsDigit(rune(trimmed[j])) {
			j++
		}
		if j == 0 || j >= len(trimmed) {
			return listMarker{}, false
		}
		if trimmed[j] != '.' && trimmed[j] != ')' {
			return listMarker{}, false
		}
		if j+1 >= len(trimmed) || !isSpaceOrTab(rune(trimmed[j+1])) {
			return listMarker{}, false
		}
		num, _ := strconv.Atoi(trimmed[:j])
		return listMarker{
			ordered:   true,
			number:    num,
			markerLen: j + 1,
			indent:    indent,
			content:   strings.TrimLeft(trimmed[j+2:], " \t"),
		}, true
	}

	return listMarker{}, false
}

func parseHeadingLine(trimmed string) (int, string, bool) {
	if !strings.HasPrefix(trimmed, "#") {
		return 0, "", false
	}
	level := 0
	for level < len(trimmed) && level < 6 && trimmed[level] == '#' {
		level++
	}
	if level < len(trimmed) && trimmed[level] == '#' {
		// More than six hashes is not a heading.
		return 0, "", false
	}
	if level < len(trimmed) && !isSpaceOrTab(rune(trimmed[level])) {
		return 0, "", false
	}
	return level, strings.TrimSpace(trimmed[level:]), true
}

func detectSetextHeading(lines []string, index int) (int, bool) {
	if index+1 >= len(lines) {
		return 0, false
	}
	if isBlankLine(lines[index]) {
		return 0, false
	}
	indicator := strings.TrimSpace(lines[index+1])
	switch {
	case allRunes(indicator, '='):
		return 1, true
	case allRunes(indicator, '-'):
		return 2, true
	}
	return 0, false
}

func (p parser) startsBlock(lines []string, index int) bool {
	if index >= len(lines) {
		return false
	}
	trimmed := strings.TrimLeft(lines[index], " \t")
	if trimmed == "" {
		return false
	}
	if _, _, ok := parseHeadingLine(trimmed); ok {
		return true
	}
	if strings.HasPrefix(trimmed, ">") || isRuleLine(trimmed) {
		return true
	}
	if _, ok := detectFence(trimmed); ok {
		return true
	}
	if _, ok := parseListMarker(trimmed); ok {
		return true
	}
	return looksLikeTableStart(lines, index)
}

func isRuleLine(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	if strings.ContainsAny(trimmed, "0123456789") {
		return false
	}
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, trimmed)
	if len(clean) < 3 {
		return false
	}
	return allRunes(clean, '-') || allRunes(clean, '*') || allRunes(clean, '_')
}

// joinParagraphLines soft-wraps continuation lines with a space and turns
// hard break markers (trailing backslash, two or more trailing spaces) into
// newlines the inline tokenizer emits as LineBreak nodes.
func joinParagraphLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	hardPrev := false
	for idx, line := range lines {
		content, hard := normalizeParagraphLine(line)
		if idx > 0 {
			if hardPrev {
				b.WriteRune('\n')
			} else {
				b.WriteRune(' ')
			}
		}
		b.WriteString(content)
		hardPrev = hard
	}
	return b.String()
}

func normalizeParagraphLine(line string) (string, bool) {
	raw := strings.TrimRight(line, "\t")
	trimmed := strings.TrimRight(raw, " ")
	hardBreak := len(raw)-len(trimmed) >= 2
	content := trimmed

	if strings.HasSuffix(content, "\\") && trailingBackslashes(content)%2 == 1 {
		hardBreak = true
		content = content[:len(content)-1]
	}
	if hardBreak {
		content = strings.TrimRight(content, " ")
	}
	return strings.TrimLeft(content, " \t"), hardBreak
}

func trailingBackslashes(s string) int {
	count := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		count++
	}
	return count
}

func leadingSpaces(line string) int {
	count := 0
	for _, ch := range line {
		switch ch {
		case ' ', '\t':
			count++
		default:
			return count
		}
	}
	return count
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isBullet(ch byte) bool {
	return ch == '-' || ch == '+' || ch == '*'
}

func isSpaceOrTab(r rune) bool {
	return r == ' ' || r == '\t'
}

func allRunes(s string, target rune) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != target {
			return false
		}
	}
	return true
}

func countRepeatRune(text string, target rune) int {
	n := 0
	for _, r := range text {
		if r != target {
			break
		}
		n++
	}
	return n
}
