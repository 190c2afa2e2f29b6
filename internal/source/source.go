// Package source defines the content-source abstraction the gallery loads
// project documents from, with GitHub, manifest, and local-directory
// implementations.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DocumentRef identifies one Markdown document available from a source.
type DocumentRef struct {
	// Name is the document's filename (e.g. "braincell.md").
	Name string
	// URL is the stable content-fetch location. It doubles as the
	// project's SourceID.
	URL string
	// ModifiedAt is the last-modified time reported by the host. Zero when
	// the host could not provide one.
	ModifiedAt time.Time
}

// Source enumerates available documents and fetches their raw content.
type Source interface {
	// List returns every available Markdown document reference.
	List(ctx context.Context) ([]DocumentRef, error)
	// Fetch returns the exact bytes of the referenced document.
	Fetch(ctx context.Context, ref DocumentRef) ([]byte, error)
}

// FetchError reports a failed listing or content request: a transport
// failure or a non-success HTTP status.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// httpGet performs a GET and returns the response body, converting
// transport failures and non-2xx statuses into *FetchError.
func httpGet(ctx context.Context, client *http.Client, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return body, nil
}
