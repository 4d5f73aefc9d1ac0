package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitResult(t *testing.T, ch <-chan ParseResult) ParseResult {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for parse result")
		return ParseResult{}
	}
}

func TestAsyncLoaderParsesText(t *testing.T) {
	loader := NewAsyncParseLoader()
	results := make(chan ParseResult, 1)

	loader.Start(ParseRequest{
		Token:    1,
		Text:     "# Title\n\nbody\n",
		Callback: func(res ParseResult) { results <- res },
	})

	res := waitResult(t, results)
	if res.Token != 1 {
		t.Fatalf("expected token 1, got %d", res.Token)
	}
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Doc == nil || len(res.Doc.Blocks) != 2 {
		t.Fatalf("expected parsed document with 2 blocks, got %#v", res.Doc)
	}
}

func TestAsyncLoaderReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# From Disk\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loader := NewAsyncParseLoader()
	results := make(chan ParseResult, 1)
	loader.Start(ParseRequest{
		Token:    2,
		Path:     path,
		Callback: func(res ParseResult) { results <- res },
	})

	res := waitResult(t, results)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Doc == nil || res.Doc.BasePath != path {
		t.Fatalf("expected document with base path %q, got %#v", path, res.Doc)
	}
}

func TestAsyncLoaderReportsReadError(t *testing.T) {
	loader := NewAsyncParseLoader()
	results := make(chan ParseResult, 1)
	loader.Start(ParseRequest{
		Token:    3,
		Path:     filepath.Join(t.TempDir(), "missing.md"),
		Callback: func(res ParseResult) { results <- res },
	})

	res := waitResult(t, results)
	if res.Err == nil {
		t.Fatalf("expected read error for missing file")
	}
	if res.Doc != nil {
		t.Fatalf("expected no document on error")
	}
}

func TestAsyncLoaderCancelStopsTrackedJob(t *testing.T) {
	loader := NewAsyncParseLoader().(*asyncParseLoader)

	fired := make(chan struct{}, 1)
	_, cancel := context.WithCancel(context.Background())
	loader.mu.Lock()
	loader.jobs[9] = func() {
		cancel()
		fired <- struct{}{}
	}
	loader.mu.Unlock()

	loader.Cancel(9)

	select {
	case <-fired:
	default:
		t.Fatalf("expected cancel func invoked")
	}

	loader.mu.Lock()
	_, present := loader.jobs[9]
	loader.mu.Unlock()
	if present {
		t.Fatalf("expected job removed after cancel")
	}
}

func TestAsyncLoaderCancelUnknownTokenIsNoop(t *testing.T) {
	loader := NewAsyncParseLoader()
	loader.Cancel(42)
}

func TestAsyncLoaderIgnoresZeroToken(t *testing.T) {
	loader := NewAsyncParseLoader()
	called := make(chan struct{}, 1)
	loader.Start(ParseRequest{
		Token:    0,
		Text:     "x\n",
		Callback: func(ParseResult) { called <- struct{}{} },
	})
	select {
	case <-called:
		t.Fatalf("expected zero-token request to be ignored")
	case <-time.After(50 * time.Millisecond):
	}
}
