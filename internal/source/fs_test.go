package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func testDir(t *testing.T) *Dir {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"alpha.md":      "# Alpha\n",
		"sub/beta.md":   "# Beta\n",
		"ignored.txt":   "nope",
		"sub/notes.org": "nope",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	d, err := NewDir(root)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDirList(t *testing.T) {
	d := testDir(t)
	refs, err := d.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("len(refs) = %d, want 2", len(refs))
	}
	for _, ref := range refs {
		if ref.ModifiedAt.IsZero() {
			t.Errorf("%s: zero ModifiedAt", ref.URL)
		}
	}
}

func TestDirFetch(t *testing.T) {
	d := testDir(t)
	data, err := d.Fetch(context.Background(), DocumentRef{URL: "sub/beta.md"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != "# Beta\n" {
		t.Errorf("content = %q", data)
	}
}

func TestDirFetchTraversalRejected(t *testing.T) {
	d := testDir(t)
	if _, err := d.Fetch(context.Background(), DocumentRef{URL: "../escape.md"}); err == nil {
		t.Fatal("expected traversal to be rejected")
	}
}

func TestNewDirMissingRoot(t *testing.T) {
	if _, err := NewDir(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing root")
	}
}
