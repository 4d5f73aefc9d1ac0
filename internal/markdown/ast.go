package markdown

// Span is the half-open range of source lines a block was consumed from.
type Span struct {
	Start int
	End   int
}

// Document is the parsed form of one markdown source. It is immutable once
// returned by Parse; consumers that want to mutate must copy.
type Document struct {
	Blocks []Block
	// BasePath is the source location used to resolve relative link and
	// image destinations. Empty when the source did not come from a file.
	BasePath string
}

// Block is one block-level node. The set of implementations is closed;
// renderers dispatch on Kind.
type Block interface {
	Kind() BlockKind
	Span() Span
}

type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindCodeBlock
	KindList
	KindBlockquote
	KindRule
	KindTable
	KindUnparsed
)

type Heading struct {
	Level int
	Text  []Inline
	Src   Span
}

func (b Heading) Kind() BlockKind { return KindHeading }
func (b Heading) Span() Span      { return b.Src }

type Paragraph struct {
	Text []Inline
	Src  Span
}

func (b Paragraph) Kind() BlockKind { return KindParagraph }
func (b Paragraph) Span() Span      { return b.Src }

// CodeBlock holds literal text. Lines are verbatim source lines; no inline
// parsing is ever applied to them.
type CodeBlock struct {
	Language string
	Lines    []string
	Fenced   bool
	Src      Span
}

func (b CodeBlock) Kind() BlockKind { return KindCodeBlock }
func (b CodeBlock) Span() Span      { return b.Src }

type List struct {
	Ordered bool
	// Start is the first marker number for ordered lists, 1 otherwise.
	Start int
	Items []ListItem
	Src   Span
}

// ListItem is an ordered sequence of blocks; nested lists appear here as
// List blocks, so nesting depth is structural.
type ListItem struct {
	Blocks []Block
}

func (b List) Kind() BlockKind { return KindList }
func (b List) Span() Span      { return b.Src }

type Blockquote struct {
	Blocks []Block
	Src    Span
}

func (b Blockquote) Kind() BlockKind { return KindBlockquote }
func (b Blockquote) Span() Span      { return b.Src }

type Rule struct {
	Src Span
}

func (b Rule) Kind() BlockKind { return KindRule }
func (b Rule) Span() Span      { return b.Src }

// Table rows are normalized to the header width: extra cells are dropped,
// missing cells are empty.
type Table struct {
	Align  []Alignment
	Header [][]Inline
	Rows   [][][]Inline
	Src    Span
}

func (b Table) Kind() BlockKind { return KindTable }
func (b Table) Span() Span      { return b.Src }

type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Unparsed preserves source text that no other rule consumed. It exists so
// that malformed input is carried through instead of dropped.
type Unparsed struct {
	Text string
	Src  Span
}

func (b Unparsed) Kind() BlockKind { return KindUnparsed }
func (b Unparsed) Span() Span      { return b.Src }

type InlineKind int

const (
	InlineText InlineKind = iota
	InlineEmphasis
	InlineStrong
	InlineStrike
	InlineCode
	InlineLink
	InlineImage
	InlineAutolink
	InlineLineBreak
)

// Inline is one inline node. Which fields are meaningful depends on Kind:
// Literal for text, code and image alt; Children for emphasis, strong,
// strike and link display text; Destination and Title for links and images;
// Destination for autolinks; Hard for line breaks.
type Inline struct {
	Kind        InlineKind
	Literal     string
	Children    []Inline
	Destination string
	Title       string
	Hard        bool
}

// PlainText returns the concatenated literal content of inlines with all
// markup delimiters removed. Hard breaks become newlines.
func PlainText(inlines []Inline) string {
	var b []byte
	var walk func([]Inline)
	walk = func(nodes []Inline) {
		for _, n := range nodes {
			switch n.Kind {
			case InlineText, InlineCode, InlineImage:
				b = append(b, n.Literal...)
			case InlineAutolink:
				b = append(b, n.Literal...)
			case InlineLineBreak:
				b = append(b, '\n')
			default:
				walk(n.Children)
			}
		}
	}
	walk(inlines)
	return string(b)
}
