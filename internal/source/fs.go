package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Dir serves documents from a local directory of .md files. It is the
// offline development strategy; refs carry paths relative to the root and
// modification times from the filesystem.
type Dir struct {
	root string // absolute path to the documents directory
}

// NewDir creates a Dir source rooted at the given directory, which must
// already exist.
func NewDir(root string) (*Dir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("source: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("source: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source: root is not a directory: %s", abs)
	}
	return &Dir{root: abs}, nil
}

// safePath resolves a relative path against the root and rejects any
// result that escapes it (directory traversal).
func (d *Dir) safePath(rel string) (string, error) {
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("source: absolute paths not allowed: %s", rel)
	}
	joined := filepath.Join(d.root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("source: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, d.root+string(os.PathSeparator)) && abs != d.root {
		return "", fmt.Errorf("source: path escapes root: %s", rel)
	}
	return abs, nil
}

// List walks the root and returns a ref for every .md file.
func (d *Dir) List(ctx context.Context) ([]DocumentRef, error) {
	var refs []DocumentRef
	err := filepath.WalkDir(d.root, func(p string, de fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".md") {
			return nil
		}
		info, err := de.Info()
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(d.root, p)
		refs = append(refs, DocumentRef{
			Name:       de.Name(),
			URL:        filepath.ToSlash(rel),
			ModifiedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, &FetchError{URL: d.root, Err: err}
	}
	return refs, nil
}

// Fetch reads the document's bytes from disk.
func (d *Dir) Fetch(ctx context.Context, ref DocumentRef) ([]byte, error) {
	abs, err := d.safePath(ref.URL)
	if err != nil {
		return nil, &FetchError{URL: ref.URL, Err: err}
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, &FetchError{URL: ref.URL, Err: err}
	}
	return data, nil
}
