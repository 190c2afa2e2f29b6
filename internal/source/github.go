package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultAPIBase is the public GitHub REST API endpoint.
const DefaultAPIBase = "https://api.github.com"

// commitLookupLimit bounds concurrent last-modified lookups during List.
const commitLookupLimit = 4

// GitHub lists Markdown documents from one directory of a GitHub repository
// via the contents API and fetches their raw content via download URLs.
// The last-modified time of each document comes from the commits API; a
// failed lookup degrades to a zero time rather than failing the listing.
type GitHub struct {
	client  *http.Client
	apiBase string
	owner   string
	repo    string
	dir     string
	token   string
}

// GitHubOption customises a GitHub source.
type GitHubOption func(*GitHub)

// WithAPIBase overrides the API endpoint (used against test servers and
// GitHub Enterprise hosts).
func WithAPIBase(base string) GitHubOption {
	return func(g *GitHub) { g.apiBase = strings.TrimRight(base, "/") }
}

// WithToken sets a bearer token for authenticated API requests.
func WithToken(token string) GitHubOption {
	return func(g *GitHub) { g.token = token }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) GitHubOption {
	return func(g *GitHub) { g.client = c }
}

// NewGitHub creates a GitHub source for owner/repo, restricted to dir.
func NewGitHub(owner, repo, dir string, opts ...GitHubOption) *GitHub {
	g := &GitHub{
		client:  &http.Client{Timeout: 30 * time.Second},
		apiBase: DefaultAPIBase,
		owner:   owner,
		repo:    repo,
		dir:     strings.Trim(dir, "/"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// contentEntry is the subset of the contents API response we read.
type contentEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// commitEntry is the subset of the commits API response we read.
type commitEntry struct {
	Commit struct {
		Committer struct {
			Date time.Time `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
}

// List enumerates the .md files in the configured directory.
func (g *GitHub) List(ctx context.Context) ([]DocumentRef, error) {
	listURL := fmt.Sprintf("%s/repos/%s/%s/contents/%s", g.apiBase, g.owner, g.repo, g.dir)
	body, err := httpGet(ctx, g.client, listURL, g.header())
	if err != nil {
		return nil, err
	}

	var entries []contentEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &FetchError{URL: listURL, Err: fmt.Errorf("decode listing: %w", err)}
	}

	var refs []DocumentRef
	for _, e := range entries {
		if e.Type != "file" || !strings.HasSuffix(e.Name, ".md") {
			continue
		}
		refs = append(refs, DocumentRef{Name: e.Name, URL: e.DownloadURL})
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(commitLookupLimit)
	for i := range refs {
		grp.Go(func() error {
			path := g.dir + "/" + refs[i].Name
			if g.dir == "" {
				path = refs[i].Name
			}
			refs[i].ModifiedAt = g.lastModified(gctx, path)
			return nil
		})
	}
	_ = grp.Wait()

	return refs, nil
}

// Fetch returns the raw bytes of the document behind ref.URL.
func (g *GitHub) Fetch(ctx context.Context, ref DocumentRef) ([]byte, error) {
	return httpGet(ctx, g.client, ref.URL, g.header())
}

// lastModified returns the date of the most recent commit touching path,
// or the zero time when the lookup fails.
func (g *GitHub) lastModified(ctx context.Context, path string) time.Time {
	commitsURL := fmt.Sprintf("%s/repos/%s/%s/commits?path=%s&per_page=1",
		g.apiBase, g.owner, g.repo, url.QueryEscape(path))
	body, err := httpGet(ctx, g.client, commitsURL, g.header())
	if err != nil {
		return time.Time{}
	}
	var commits []commitEntry
	if err := json.Unmarshal(body, &commits); err != nil || len(commits) == 0 {
		return time.Time{}
	}
	return commits[0].Commit.Committer.Date
}

func (g *GitHub) header() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/vnd.github+json")
	if g.token != "" {
		h.Set("Authorization", "Bearer "+g.token)
	}
	return h
}
