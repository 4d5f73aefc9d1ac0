package markdown

import "testing"

func TestParseTableAlignmentMarkers(t *testing.T) {
	doc := Parse("| a | b | c | d |\n|:--|:-:|--:|---|\n| 1 | 2 | 3 | 4 |\n")
	tbl, ok := doc.Blocks[0].(Table)
	if !ok {
		t.Fatalf("expected table, got %#v", doc.Blocks[0])
	}
	want := []Alignment{AlignLeft, AlignCenter, AlignRight, AlignDefault}
	if len(tbl.Align) != len(want) {
		t.Fatalf("expected %d alignments, got %d", len(want), len(tbl.Align))
	}
	for i, a := range want {
		if tbl.Align[i] != a {
			t.Fatalf("column %d: expected alignment %d, got %d", i, a, tbl.Align[i])
		}
	}
}

func TestParseTableNormalizesRowWidth(t *testing.T) {
	doc := Parse("| a | b |\n|---|---|\n| 1 |\n| 1 | 2 | 3 |\n")
	tbl := doc.Blocks[0].(Table)
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Rows))
	}
	for i, row := range tbl.Rows {
		if len(row) != 2 {
			t.Fatalf("row %d: expected 2 cells after normalization, got %d", i, len(row))
		}
	}
	if tbl.Rows[0][1] != nil {
		t.Fatalf("expected missing cell to be empty, got %#v", tbl.Rows[0][1])
	}
	if got := PlainText(tbl.Rows[1][1]); got != "2" {
		t.Fatalf("expected extra cells dropped after %q, got %q", "2", got)
	}
}

func TestParseTableCellInlines(t *testing.T) {
	doc := Parse("| **bold** | `code` |\n|---|---|\n| [x](y.md) | plain |\n")
	tbl := doc.Blocks[0].(Table)
	if tbl.Header[0][0].Kind != InlineStrong {
		t.Fatalf("expected strong header cell, got %#v", tbl.Header[0])
	}
	if tbl.Header[1][0].Kind != InlineCode {
		t.Fatalf("expected code header cell, got %#v", tbl.Header[1])
	}
	if tbl.Rows[0][0][0].Kind != InlineLink {
		t.Fatalf("expected link cell, got %#v", tbl.Rows[0][0])
	}
}

func TestParseTableEscapedPipeStaysInCell(t *testing.T) {
	doc := Parse("| a\\|b | c |\n|---|---|\n| 1 | 2 |\n")
	tbl := doc.Blocks[0].(Table)
	if len(tbl.Header) != 2 {
		t.Fatalf("expected escaped pipe not to split, got %d columns", len(tbl.Header))
	}
	if got := PlainText(tbl.Header[0]); got != "a|b" {
		t.Fatalf("expected escaped pipe resolved to %q, got %q", "a|b", got)
	}
}

func TestParseTablePipeInsideCodeSpanStaysInCell(t *testing.T) {
	doc := Parse("| `a|b` | c |\n|---|---|\n| 1 | 2 |\n")
	tbl := doc.Blocks[0].(Table)
	if len(tbl.Header) != 2 {
		t.Fatalf("expected code-span pipe not to split, got %d columns", len(tbl.Header))
	}
	if tbl.Header[0][0].Kind != InlineCode || tbl.Header[0][0].Literal != "a|b" {
		t.Fatalf("expected code span %q, got %#v", "a|b", tbl.Header[0])
	}
}

func TestTableRequiresSeparatorRow(t *testing.T) {
	doc := Parse("| a | b |\njust text\n")
	if _, ok := doc.Blocks[0].(Table); ok {
		t.Fatalf("expected no table without separator row")
	}
}

func TestTableEndsAtBlankLine(t *testing.T) {
	doc := Parse("| a |\n|---|\n| 1 |\n\nafter\n")
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected table and paragraph, got %d blocks", len(doc.Blocks))
	}
	tbl := doc.Blocks[0].(Table)
	if len(tbl.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(tbl.Rows))
	}
	if tbl.Span().End != 3 {
		t.Fatalf("expected table span to end at line 3, got %d", tbl.Span().End)
	}
}
