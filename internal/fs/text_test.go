package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadDocumentPlainUTF8(t *testing.T) {
	path := writeTemp(t, "plain.md", []byte("# Tytuł\n\nzażółć gęślą jaźń\n"))
	text, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "# Tytuł\n\nzażółć gęślą jaźń\n" {
		t.Fatalf("unexpected content: %q", text)
	}
}

func TestLoadDocumentStripsUTF8BOM(t *testing.T) {
	path := writeTemp(t, "bom.md", []byte("\xEF\xBB\xBF# Title\n"))
	text, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "# Title\n" {
		t.Fatalf("expected BOM stripped, got %q", text)
	}
}

func TestLoadDocumentDecodesUTF16(t *testing.T) {
	source := "# UTF-16 heading\n"
	for _, tc := range []struct {
		name   string
		endian unicode.Endianness
	}{
		{"little-endian", unicode.LittleEndian},
		{"big-endian", unicode.BigEndian},
	} {
		encoder := unicode.UTF16(tc.endian, unicode.UseBOM).NewEncoder()
		encoded, err := encoder.Bytes([]byte(source))
		if err != nil {
			t.Fatalf("%s: encode: %v", tc.name, err)
		}
		path := writeTemp(t, "utf16.md", encoded)
		text, err := LoadDocument(path)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if text != source {
			t.Fatalf("%s: expected %q, got %q", tc.name, source, text)
		}
	}
}

func TestLoadDocumentRejectsBinary(t *testing.T) {
	content := make([]byte, 512)
	for i := range content {
		content[i] = byte(i % 7)
	}
	path := writeTemp(t, "blob.bin", content)
	_, err := LoadDocument(path)
	if err == nil {
		t.Fatalf("expected error for binary content")
	}
	if !errors.Is(err, ErrBinaryContent) {
		t.Fatalf("expected ErrBinaryContent, got %v", err)
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "nope.md"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestIsTextContent(t *testing.T) {
	if !IsTextContent(nil) {
		t.Fatalf("expected empty content to count as text")
	}
	if !IsTextContent([]byte("hello world\n")) {
		t.Fatalf("expected ASCII to count as text")
	}
	if IsTextContent([]byte{0x00, 0x01, 0x02, 0x03}) {
		t.Fatalf("expected NUL bytes to mark binary")
	}
	if !IsTextContent([]byte("\xFF\xFEh\x00i\x00")) {
		t.Fatalf("expected UTF-16 BOM content to count as text")
	}
}

func TestNormalizeTextContentPassthrough(t *testing.T) {
	if got := NormalizeTextContent([]byte("plain")); got != "plain" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := NormalizeTextContent(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
