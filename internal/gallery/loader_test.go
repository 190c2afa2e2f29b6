package gallery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brighthorizon/showcase/internal/testutil"
)

func TestLoadParsesDocuments(t *testing.T) {
	ts := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	src := testutil.NewFakeSource().
		Add("braincell.md", "# Braincell\nTags: ai, web\nAn experiment.\n", ts).
		Add("plain.md", "no heading here\njust text\n", ts.AddDate(0, 0, 1))

	projects, err := Load(context.Background(), src, testutil.DiscardLogger())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("len(projects) = %d, want 2", len(projects))
	}

	p := projects[0]
	if p.Title != "Braincell" {
		t.Errorf("title = %q", p.Title)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "ai" || p.Tags[1] != "web" {
		t.Errorf("tags = %v", p.Tags)
	}
	if p.SourceID != src.URL("braincell.md") {
		t.Errorf("sourceID = %q", p.SourceID)
	}
	if !p.PublishedAt.Equal(ts) {
		t.Errorf("publishedAt = %v", p.PublishedAt)
	}
	if p.FullBody == "" || p.Unavailable {
		t.Errorf("project = %+v", p)
	}

	// No heading: filename fallback, title never empty.
	if projects[1].Title != "plain" {
		t.Errorf("fallback title = %q, want %q", projects[1].Title, "plain")
	}
}

func TestLoadPartialFailureYieldsPlaceholder(t *testing.T) {
	ts := time.Now()
	src := testutil.NewFakeSource()
	for _, name := range []string{"a.md", "b.md", "c.md", "d.md", "e.md"} {
		src.Add(name, "# Doc "+name+"\nbody\n", ts)
	}
	src.FailFetch("c.md")

	projects, err := Load(context.Background(), src, testutil.DiscardLogger())
	if err != nil {
		t.Fatalf("Load must not fail on per-document errors: %v", err)
	}
	if len(projects) != 5 {
		t.Fatalf("len(projects) = %d, want 5", len(projects))
	}

	normal, placeholders := 0, 0
	for _, p := range projects {
		if p.Unavailable {
			placeholders++
			if p.Title != "c" {
				t.Errorf("placeholder title = %q, want filename stem", p.Title)
			}
			if p.FullBody != "" {
				t.Errorf("placeholder carries a body")
			}
		} else {
			normal++
		}
	}
	if normal != 4 || placeholders != 1 {
		t.Errorf("normal = %d, placeholders = %d, want 4/1", normal, placeholders)
	}
}

func TestLoadListingFailureAborts(t *testing.T) {
	src := testutil.NewFakeSource().FailList(errors.New("network down"))
	if _, err := Load(context.Background(), src, testutil.DiscardLogger()); err == nil {
		t.Fatal("expected listing failure to abort the load")
	}
}

func TestLoadPreservesListingOrder(t *testing.T) {
	ts := time.Now()
	src := testutil.NewFakeSource()
	names := []string{"one.md", "two.md", "three.md", "four.md"}
	for _, name := range names {
		src.Add(name, "# "+name+"\n", ts)
	}

	projects, err := Load(context.Background(), src, testutil.DiscardLogger())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, name := range names {
		if projects[i].SourceID != src.URL(name) {
			t.Errorf("position %d = %q, want %q", i, projects[i].SourceID, src.URL(name))
		}
	}
}
