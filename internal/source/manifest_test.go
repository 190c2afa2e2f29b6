package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeManifest(t *testing.T, content string) *Manifest {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return NewManifest(path)
}

func TestManifestList(t *testing.T) {
	m := writeManifest(t, `
base_url: https://raw.example.com/projects/
documents:
  - file: alpha.md
    published: 2025-01-15T00:00:00Z
  - file: beta.md
  - file: ""
`)
	refs, err := m.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("len(refs) = %d, want 2", len(refs))
	}
	if refs[0].URL != "https://raw.example.com/projects/alpha.md" {
		t.Errorf("url = %q", refs[0].URL)
	}
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if !refs[0].ModifiedAt.Equal(want) {
		t.Errorf("ModifiedAt = %v, want %v", refs[0].ModifiedAt, want)
	}
	if !refs[1].ModifiedAt.IsZero() {
		t.Errorf("beta ModifiedAt = %v, want zero", refs[1].ModifiedAt)
	}
}

func TestManifestListMissingFile(t *testing.T) {
	m := NewManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := m.List(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
}

func TestManifestListNoBaseURL(t *testing.T) {
	m := writeManifest(t, "documents:\n  - file: a.md\n")
	if _, err := m.List(context.Background()); err == nil {
		t.Fatal("expected error for missing base_url")
	}
}

func TestManifestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/alpha.md" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "# Alpha\n")
	}))
	defer srv.Close()

	m := writeManifest(t, "base_url: "+srv.URL+"/projects\ndocuments:\n  - file: alpha.md\n")
	refs, err := m.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	data, err := m.Fetch(context.Background(), refs[0])
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != "# Alpha\n" {
		t.Errorf("content = %q", data)
	}
}
