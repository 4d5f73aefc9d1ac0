package state

import (
	"context"
	"sync"

	"github.com/kk-code-lab/mdview/internal/fs"
	"github.com/kk-code-lab/mdview/internal/markdown"
)

// ParseLoader runs markdown parses off the event-loop goroutine.
type ParseLoader interface {
	Start(req ParseRequest)
	Cancel(token int)
}

// ParseRequest describes one parse job. When Text is empty and Path is
// set, the loader reads the file itself so no I/O happens on the caller's
// goroutine.
type ParseRequest struct {
	Token    int
	Path     string
	Text     string
	Callback func(ParseResult)
}

// ParseResult carries the finished document or the read error.
type ParseResult struct {
	Token int
	Path  string
	Doc   *markdown.Document
	Err   error
}

// NewAsyncParseLoader constructs the default goroutine-based loader.
func NewAsyncParseLoader() ParseLoader {
	return &asyncParseLoader{
		jobs: make(map[int]context.CancelFunc),
	}
}

type asyncParseLoader struct {
	mu   sync.Mutex
	jobs map[int]context.CancelFunc
}

func (l *asyncParseLoader) Start(req ParseRequest) {
	if req.Token == 0 || req.Callback == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.mu.Lock()
	l.jobs[req.Token] = cancel
	l.mu.Unlock()

	go func() {
		defer func() {
			l.mu.Lock()
			delete(l.jobs, req.Token)
			l.mu.Unlock()
		}()

		text := req.Text
		var err error
		if text == "" && req.Path != "" {
			text, err = fs.LoadDocument(req.Path)
		}

		var doc *markdown.Document
		if err == nil {
			doc = markdown.Parse(text, markdown.WithBasePath(req.Path))
		}

		// A cancelled job completes silently; its result must never be
		// observed by the consumer.
		select {
		case <-ctx.Done():
			return
		default:
		}

		req.Callback(ParseResult{
			Token: req.Token,
			Path:  req.Path,
			Doc:   doc,
			Err:   err,
		})
	}()
}

func (l *asyncParseLoader) Cancel(token int) {
	l.mu.Lock()
	if cancel, ok := l.jobs[token]; ok {
		cancel()
		delete(l.jobs, token)
	}
	l.mu.Unlock()
}
