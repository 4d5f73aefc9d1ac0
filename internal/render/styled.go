package render

// StyleKind describes a semantic style for rendered segments. The terminal
// painter maps kinds to concrete tcell styles; this package stays free of
// any drawing backend.
type StyleKind int

const (
	StylePlain StyleKind = iota
	StyleEmphasis
	StyleStrong
	StyleStrike
	StyleCode
	StyleCodeBlock
	StyleCodeLabel
	StyleLink
	StyleHeading
	StyleRule
	StyleQuote
	StyleMarker
)

// Segment is a chunk of text with an associated style.
type Segment struct {
	Text  string
	Style StyleKind
}

// Line is one visual line: an ordered sequence of styled segments.
type Line []Segment

// Text returns the concatenated text of a line.
func (l Line) Text() string {
	if len(l) == 0 {
		return ""
	}
	total := 0
	for _, seg := range l {
		total += len(seg.Text)
	}
	buf := make([]byte, 0, total)
	for _, seg := range l {
		buf = append(buf, seg.Text...)
	}
	return string(buf)
}

func prefixLine(prefix Segment, line Line) Line {
	out := make(Line, 0, len(line)+1)
	out = append(out, prefix)
	return append(out, line...)
}
