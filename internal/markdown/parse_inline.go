package markdown

import (
	"strings"
	"unicode"
)

// parseInline tokenizes one run of paragraph-level text into inline nodes.
// The scan is a single left-to-right pass; every delimiter that fails to
// close degrades to literal text, so the result always covers the whole
// input and the function cannot fail.
func parseInline(text string) []Inline {
	runes := []rune(text)
	var nodes []Inline
	var buf []rune

	flushText := func() {
		if len(buf) == 0 {
			return
		}
		nodes = append(nodes, Inline{Kind: InlineText, Literal: string(buf)})
		buf = buf[:0]
	}

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch r {
		case '\\':
			if i+1 < len(runes) {
				buf = append(buf, runes[i+1])
				i += 2
			} else {
				buf = append(buf, r)
				i++
			}
		case '\n':
			// Hard breaks only; soft breaks were joined with spaces when
			// the paragraph was assembled.
			flushText()
			nodes = append(nodes, Inline{Kind: InlineLineBreak, Hard: true})
			i++
		case '`':
			count := countRepeat(runes[i:], '`')
			end := findClosingBackticks(runes[i+count:], count)
			if end == -1 {
				buf = append(buf, runes[i:i+count]...)
				i += count
				continue
			}
			flushText()
			code := string(runes[i+count : i+count+end])
			nodes = append(nodes, Inline{Kind: InlineCode, Literal: code})
			i += count + end + count
		case '!':
			if i+1 < len(runes) && runes[i+1] == '[' {
				node, consumed, ok := parseLinkOrImage(runes[i:], true)
				if ok {
					flushText()
					nodes = append(nodes, node)
					i += consumed
					continue
				}
			}
			buf = append(buf, r)
			i++
		case '[':
			node, consumed, ok := parseLinkOrImage(runes[i:], false)
			if ok {
				flushText()
				nodes = append(nodes, node)
				i += consumed
				continue
			}
			buf = append(buf, r)
			i++
		case '<':
			if brLen := detectBreakTag(runes[i:]); brLen > 0 {
				flushText()
				nodes = append(nodes, Inline{Kind: InlineLineBreak, Hard: true})
				i += brLen
				continue
			}
			end := findAutolinkEnd(runes[i+1:])
			if end >= 0 {
				candidate := string(runes[i+1 : i+1+end])
				if isAutolinkTarget(candidate) {
					flushText()
					nodes = append(nodes, autolinkNode(candidate))
					i += end + 2
					continue
				}
			}
			buf = append(buf, r)
			i++
		case '*', '_':
			run := countRepeat(runes[i:], r)
			if run >= 3 {
				// Triple delimiters are strong emphasis wrapping emphasis.
				if closeIdx := findClosingDelimiter(runes, i+3, r, 3); closeIdx != -1 {
					flushText()
					content := parseInline(string(runes[i+3 : closeIdx]))
					nodes = append(nodes, Inline{
						Kind:     InlineStrong,
						Children: []Inline{{Kind: InlineEmphasis, Children: content}},
					})
					i = closeIdx + 3
					continue
				}
			}
			if run >= 2 {
				run = 2
			} else {
				run = 1
			}
			closeIdx := findClosingDelimiter(runes, i+run, r, run)
			if closeIdx == -1 {
				buf = append(buf, r)
				i++
				continue
			}
			if isAlnum(runes, i-1) && isAlnum(runes, closeIdx+run) {
				// Intra-word delimiters like snake_case stay literal.
				buf = append(buf, r)
				i++
				continue
			}
			flushText()
			content := parseInline(string(runes[i+run : closeIdx]))
			kind := InlineEmphasis
			if run == 2 {
				kind = InlineStrong
			}
			nodes = append(nodes, Inline{Kind: kind, Children: content})
			i = closeIdx + run
		case '~':
			run := countRepeat(runes[i:], r)
			if run < 2 {
				buf = append(buf, r)
				i++
				continue
			}
			closeIdx := findClosingDelimiter(runes, i+run, r, run)
			if closeIdx == -1 {
				buf = append(buf, r)
				i++
				continue
			}
			flushText()
			content := parseInline(string(runes[i+run : closeIdx]))
			nodes = append(nodes, Inline{Kind: InlineStrike, Children: content})
			i = closeIdx + run
		default:
			if end, ok := detectBareURL(runes, i); ok {
				flushText()
				nodes = append(nodes, autolinkNode(string(runes[i:end])))
				i = end
				continue
			}
			buf = append(buf, r)
			i++
		}
	}

	if len(buf) > 0 {
		nodes = append(nodes, Inline{Kind: InlineText, Literal: string(buf)})
	}
	return nodes
}

func autolinkNode(target string) Inline {
	display := strings.TrimPrefix(target, "mailto:")
	return Inline{
		Kind:        InlineAutolink,
		Literal:     display,
		Destination: target,
	}
}

func parseLinkOrImage(runes []rune, isImage bool) (Inline, int, bool) {
	offset := 0
	if isImage {
		offset = 1
	}

	endText := findMatchingBracket(runes[offset+1:])
	if endText == -1 || offset+1+endText+1 >= len(runes) || runes[offset+1+endText+1] != '(' {
		return Inline{}, 0, false
	}

	closeParen := findMatchingParen(runes[offset+1+endText+2:])
	if closeParen == -1 {
		return Inline{}, 0, false
	}

	textEnd := offset + 1 + endText
	textRunes := runes[offset+1 : textEnd]
	destStart := textEnd + 2
	dest, title := splitDestinationTitle(string(runes[destStart : destStart+closeParen]))
	consumed := destStart + closeParen + 1

	if isImage {
		return Inline{
			Kind:        InlineImage,
			Literal:     string(textRunes),
			Destination: dest,
			Title:       title,
		}, consumed, true
	}

	return Inline{
		Kind:        InlineLink,
		Children:    parseInline(string(textRunes)),
		Destination: dest,
		Title:       title,
	}, consumed, true
}

// splitDestinationTitle separates `url "title"` inside link parentheses.
// The title must be the trailing quoted part; anything else stays in the
// destination untouched.
func splitDestinationTitle(raw string) (string, string) {
	s := strings.TrimSpace(raw)
	if len(s) < 2 {
		return s, ""
	}
	last := s[len(s)-1]
	if last != '"' && last != '\'' {
		return s, ""
	}
	open := strings.LastIndexByte(s[:len(s)-1], last)
	if open <= 0 {
		return s, ""
	}
	dest := strings.TrimSpace(s[:open])
	if dest == "" || strings.ContainsAny(dest, "\"'") {
		return s, ""
	}
	return dest, s[open+1 : len(s)-1]
}

func findMatchingBracket(runes []rune) int {
	depth := 0
	for i := 0; i < len(runes); {
		switch runes[i] {
		case '\\':
			i += 2
			continue
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return i
			}
			depth--
		}
		i++
	}
	return -1
}

func findMatchingParen(runes []rune) int {
	depth := 0
	for i := 0; i < len(runes); {
		switch runes[i] {
		case '\\':
			i += 2
			continue
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return i
			}
			depth--
		}
		i++
	}
	return -1
}

func findClosingBackticks(runes []rune, count int) int {
	for i := 0; i < len(runes); i++ {
		if runes[i] != '`' {
			continue
		}
		if countRepeat(runes[i:], '`') == count {
			return i
		}
	}
	return -1
}

func findClosingDelimiter(runes []rune, start int, delim rune, count int) int {
	for i := start; i < len(runes); i++ {
		if runes[i] != delim {
			continue
		}
		if countRepeat(runes[i:], delim) < count {
			continue
		}
		if i > 0 && runes[i-1] == '\\' {
			continue
		}
		return i
	}
	return -1
}

func isAlnum(runes []rune, idx int) bool {
	if idx < 0 || idx >= len(runes) {
		return false
	}
	return unicode.IsLetter(runes[idx]) || unicode.IsDigit(runes[idx])
}

func countRepeat(runes []rune, target rune) int {
	n := 0
	for n < len(runes) && runes[n] == target {
		n++
	}
	return n
}

func findAutolinkEnd(runes []rune) int {
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' {
			i++
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '<' {
			return -1
		}
		if r == '>' {
			return i
		}
	}
	return -1
}

func isAutolinkTarget(s string) bool {
	if hasRecognizedScheme(s) {
		return true
	}
	if strings.Contains(s, "@") && strings.Contains(s, ".") && !strings.ContainsAny(s, " \t") {
		return true
	}
	return false
}

func hasRecognizedScheme(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "mailto:")
}

// detectBareURL promotes unbracketed URLs with a recognized scheme that
// start at a word boundary, mirroring the automatic link detection of the
// surrounding ecosystem.
func detectBareURL(runes []rune, i int) (int, bool) {
	if runes[i] != 'h' {
		return 0, false
	}
	if i > 0 && !isURLBoundary(runes[i-1]) {
		return 0, false
	}
	rest := string(runes[i:])
	if !strings.HasPrefix(rest, "http://") && !strings.HasPrefix(rest, "https://") {
		return 0, false
	}
	end := i
	for end < len(runes) && !isURLTerminator(runes[end]) {
		end++
	}
	// Trailing sentence punctuation belongs to the prose, not the URL.
	for end > i && strings.ContainsRune(".,;:!?)", runes[end-1]) {
		end--
	}
	scheme := len("http://")
	if strings.HasPrefix(rest, "https://") {
		scheme = len("https://")
	}
	if end-i <= scheme {
		return 0, false
	}
	return end, true
}

func isURLBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func isURLTerminator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '<', '>', '"', '\'', '`', ')':
		return true
	}
	return false
}

func detectBreakTag(runes []rune) int {
	lower := strings.ToLower(string(runes))
	switch {
	case strings.HasPrefix(lower, "<br/>"):
		return len("<br/>")
	case strings.HasPrefix(lower, "<br />"):
		return len("<br />")
	case strings.HasPrefix(lower, "<br>"):
		return len("<br>")
	default:
		return 0
	}
}
