package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brighthorizon/showcase/internal/apperr"
	"github.com/brighthorizon/showcase/internal/models"
)

func testView() models.View {
	return models.View{
		Items: []models.Project{
			{
				SourceID: "https://example.com/a.md",
				Title:    "Alpha",
				Tags:     []string{"go", "infra"},
				Preview:  "A **bold** preview.",
				FullBody: "# Alpha\nfull body",
			},
			{
				SourceID:    "https://example.com/b.md",
				Title:       "Broken",
				Unavailable: true,
			},
		},
		CurrentPage: 1,
		TotalPages:  2,
		Total:       8,
	}
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestMarkdownRendersAndSanitizes(t *testing.T) {
	html, err := Markdown("Hello **world** <script>alert(1)</script>")
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	s := string(html)
	if !strings.Contains(s, "<strong>world</strong>") {
		t.Errorf("output = %q, want rendered bold", s)
	}
	if strings.Contains(s, "<script>") {
		t.Errorf("output = %q, script not sanitized", s)
	}
}

func TestCardsRendersItemsAndPagination(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Cards(testView())
	if err != nil {
		t.Fatalf("Cards: %v", err)
	}
	for _, want := range []string{
		"Alpha",
		"<strong>bold</strong>",
		`data-tag="infra"`,
		`data-source-id="https://example.com/a.md"`,
		"This project could not be loaded.",
		"Page 1 of 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// At page 1 of 2: previous disabled, next enabled.
	if !strings.Contains(out, `class="page-prev" disabled`) {
		t.Errorf("previous not disabled at lower bound:\n%s", out)
	}
	if strings.Contains(out, `class="page-next" disabled`) {
		t.Errorf("next disabled although more pages exist")
	}
	// Placeholder card must not offer a view-full affordance.
	if strings.Count(out, "view-full") != 1 {
		t.Errorf("view-full count = %d, want 1", strings.Count(out, "view-full"))
	}
}

func TestCardsIdempotent(t *testing.T) {
	r := newRenderer(t)
	v := testView()
	first, err := r.Cards(v)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Cards(v)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("rendering the same view twice produced different markup")
	}
}

func TestCardsEmptyViewShowsPlaceholder(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Cards(models.View{CurrentPage: 1, TotalPages: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No projects found.") {
		t.Errorf("missing no-results placeholder:\n%s", out)
	}
	if strings.Contains(out, "project-card") {
		t.Errorf("empty view rendered cards")
	}
}

func TestFull(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Full(models.Project{
		SourceID: "x",
		Title:    "Alpha",
		FullBody: "# Alpha\n\nBody with <script>bad()</script> inline.",
	})
	if err != nil {
		t.Fatalf("Full: %v", err)
	}
	if !strings.Contains(out, "Alpha") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("full body not sanitized")
	}
}

func TestFullUnavailable(t *testing.T) {
	r := newRenderer(t)
	_, err := r.Full(models.Project{SourceID: "x", Unavailable: true})
	if !errors.Is(err, apperr.ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestPage(t *testing.T) {
	r := newRenderer(t)
	v := testView()
	v.Items[0].PublishedAt = time.Now()
	out, err := r.Page("Projects", []string{"go", "infra"}, v)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	for _, want := range []string{"<title>Projects</title>", `<option value="go">`, "newest", "id=\"cards\""} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
