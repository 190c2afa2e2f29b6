package source

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest lists documents from a local YAML manifest file that names each
// document and its published date, combined with a fixed base URL for
// content fetches:
//
//	base_url: https://raw.githubusercontent.com/acme/posts/main/projects
//	documents:
//	  - file: braincell.md
//	    published: 2025-03-01T00:00:00Z
//
// The manifest file can be edited while the service runs; the entry point
// watches it and reloads the collection on change.
type Manifest struct {
	path   string
	client *http.Client
}

// manifestDoc is the on-disk manifest schema.
type manifestDoc struct {
	BaseURL   string `yaml:"base_url"`
	Documents []struct {
		File      string    `yaml:"file"`
		Published time.Time `yaml:"published"`
	} `yaml:"documents"`
}

// NewManifest creates a manifest source reading from path.
func NewManifest(path string) *Manifest {
	return &Manifest{
		path:   path,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Path returns the manifest file location, for the file watcher.
func (m *Manifest) Path() string { return m.path }

// List parses the manifest and returns a ref per listed document.
func (m *Manifest) List(ctx context.Context) ([]DocumentRef, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, &FetchError{URL: m.path, Err: err}
	}
	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &FetchError{URL: m.path, Err: fmt.Errorf("parse manifest: %w", err)}
	}
	if doc.BaseURL == "" {
		return nil, &FetchError{URL: m.path, Err: fmt.Errorf("manifest has no base_url")}
	}

	base := strings.TrimRight(doc.BaseURL, "/")
	var refs []DocumentRef
	for _, d := range doc.Documents {
		if d.File == "" {
			continue
		}
		refs = append(refs, DocumentRef{
			Name:       d.File,
			URL:        base + "/" + d.File,
			ModifiedAt: d.Published,
		})
	}
	return refs, nil
}

// Fetch retrieves the document content over HTTP.
func (m *Manifest) Fetch(ctx context.Context, ref DocumentRef) ([]byte, error) {
	return httpGet(ctx, m.client, ref.URL, nil)
}
