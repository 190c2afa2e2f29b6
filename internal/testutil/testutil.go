// Package testutil provides shared test helpers: an in-memory document
// source with scriptable failures, and a discard logger.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/brighthorizon/showcase/internal/source"
)

// FakeSource is an in-memory source.Source for tests. Documents are served
// from a map keyed by filename; individual fetches and the listing itself
// can be made to fail.
type FakeSource struct {
	mu        sync.Mutex
	docs      map[string]string
	modified  map[string]time.Time
	order     []string
	listErr   error
	fetchFail map[string]bool
}

// NewFakeSource creates an empty fake source.
func NewFakeSource() *FakeSource {
	return &FakeSource{
		docs:      make(map[string]string),
		modified:  make(map[string]time.Time),
		fetchFail: make(map[string]bool),
	}
}

// Add registers a document. Listing order follows insertion order.
func (f *FakeSource) Add(name, content string, modified time.Time) *FakeSource {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.docs[name]; !ok {
		f.order = append(f.order, name)
	}
	f.docs[name] = content
	f.modified[name] = modified
	return f
}

// FailFetch makes content fetches for name fail.
func (f *FakeSource) FailFetch(name string) *FakeSource {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchFail[name] = true
	return f
}

// FailList makes the next List calls fail with err.
func (f *FakeSource) FailList(err error) *FakeSource {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErr = err
	return f
}

// URL returns the content URL the fake assigns to a document name.
func (f *FakeSource) URL(name string) string {
	return "fake://docs/" + name
}

// List implements source.Source.
func (f *FakeSource) List(ctx context.Context) ([]source.DocumentRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, &source.FetchError{URL: "fake://docs", Err: f.listErr}
	}
	refs := make([]source.DocumentRef, 0, len(f.order))
	for _, name := range f.order {
		refs = append(refs, source.DocumentRef{
			Name:       name,
			URL:        f.URL(name),
			ModifiedAt: f.modified[name],
		})
	}
	return refs, nil
}

// Fetch implements source.Source.
func (f *FakeSource) Fetch(ctx context.Context, ref source.DocumentRef) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchFail[ref.Name] {
		return nil, &source.FetchError{URL: ref.URL, Err: fmt.Errorf("injected failure")}
	}
	content, ok := f.docs[ref.Name]
	if !ok {
		return nil, &source.FetchError{URL: ref.URL, Err: fmt.Errorf("no such document")}
	}
	return []byte(content), nil
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
