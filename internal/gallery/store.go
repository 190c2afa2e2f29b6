// Package gallery holds the in-memory project collection and derives the
// filtered, sorted, paginated view the gallery displays.
package gallery

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/brighthorizon/showcase/internal/apperr"
	"github.com/brighthorizon/showcase/internal/models"
)

// DefaultPageSize is the number of cards per gallery page.
const DefaultPageSize = 6

// Store owns the immutable project collection (set once per load) and the
// mutable view parameters. Handlers run concurrently, so all access goes
// through the mutex.
type Store struct {
	mu       sync.Mutex
	pageSize int
	projects []models.Project
	tags     []string
	state    models.ViewState
	loadErr  error
	coll     *collate.Collator
}

// NewStore creates an empty store with the given page size.
func NewStore(pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Store{
		pageSize: pageSize,
		state:    defaultState(),
		coll:     collate.New(language.English),
	}
}

func defaultState() models.ViewState {
	return models.ViewState{Sort: models.SortNewest, Page: 1}
}

// Load replaces the full collection, resets the view parameters to their
// defaults, and recomputes the available tag set (set-union in order of
// first appearance).
func (s *Store) Load(projects []models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = projects
	s.loadErr = nil
	s.state = defaultState()

	seen := make(map[string]struct{})
	s.tags = nil
	for _, p := range projects {
		for _, tag := range p.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			s.tags = append(s.tags, tag)
		}
	}
}

// SetLoadError puts the store into the failed state: no collection, and
// LoadError reports why. The only recovery path is a reload.
func (s *Store) SetLoadError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = nil
	s.tags = nil
	s.state = defaultState()
	s.loadErr = err
}

// LoadError returns the listing failure from the last load attempt, or nil.
func (s *Store) LoadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// SetSearch updates the search term, resets to page 1, and returns the
// recomputed view.
func (s *Store) SetSearch(q string) models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Search = q
	s.state.Page = 1
	return s.deriveLocked()
}

// SetTag updates the tag filter (empty string clears it), resets to page 1,
// and returns the recomputed view.
func (s *Store) SetTag(tag string) models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tag = tag
	s.state.Page = 1
	return s.deriveLocked()
}

// SetSort updates the sort order, resets to page 1, and returns the
// recomputed view. Unknown orders are ignored.
func (s *Store) SetSort(o models.SortOrder) models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.Valid() {
		s.state.Sort = o
		s.state.Page = 1
	}
	return s.deriveLocked()
}

// SetPage navigates to page n. The value is clamped to the valid range
// during derivation; explicit navigation does not reset other parameters.
func (s *Store) SetPage(n int) models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Page = n
	return s.deriveLocked()
}

// View returns the current derived view without mutating any parameter
// except the self-correcting page clamp.
func (s *Store) View() models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deriveLocked()
}

// State returns a snapshot of the current view parameters.
func (s *Store) State() models.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Tags returns the available tags computed at load time.
func (s *Store) Tags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// Get looks up a project by its source ID.
func (s *Store) Get(sourceID string) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.SourceID == sourceID {
			return p, nil
		}
	}
	return models.Project{}, apperr.ErrNotFound
}

// Find derives a filtered, sorted result set for the given parameters
// without touching the shared view state. Read-only consumers (the MCP
// tools) use it so agent queries never move the gallery the user sees.
func (s *Store) Find(q, tag string, order models.SortOrder) []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !order.Valid() {
		order = models.SortNewest
	}
	return s.filterSortLocked(models.ViewState{Search: q, Tag: tag, Sort: order})
}

// filterSortLocked applies the filter and sort stages of derivation.
func (s *Store) filterSortLocked(st models.ViewState) []models.Project {
	filtered := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if matchesSearch(p, st.Search) && matchesTag(p, st.Tag) {
			filtered = append(filtered, p)
		}
	}

	// Stable sort keeps fetch order as the tie-break.
	switch st.Sort {
	case models.SortOldest:
		stableSort(filtered, func(a, b models.Project) bool {
			return a.PublishedAt.Before(b.PublishedAt)
		})
	case models.SortAlphabetical:
		stableSort(filtered, func(a, b models.Project) bool {
			return s.coll.CompareString(a.Title, b.Title) < 0
		})
	default: // SortNewest
		stableSort(filtered, func(a, b models.Project) bool {
			return a.PublishedAt.After(b.PublishedAt)
		})
	}
	return filtered
}

// deriveLocked computes filter → sort → paginate over the collection.
// The clamped page number is written back so the state self-corrects when
// filtering shrinks the result set below the previously viewed page.
func (s *Store) deriveLocked() models.View {
	filtered := s.filterSortLocked(s.state)

	totalPages := (len(filtered) + s.pageSize - 1) / s.pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := s.state.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	s.state.Page = page

	start := (page - 1) * s.pageSize
	end := start + s.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]models.Project, end-start)
	copy(items, filtered[start:end])

	return models.View{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       len(filtered),
	}
}

func stableSort(ps []models.Project, less func(a, b models.Project) bool) {
	sort.SliceStable(ps, func(i, j int) bool { return less(ps[i], ps[j]) })
}

func matchesSearch(p models.Project, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Preview), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// matchesTag is an exact, case-sensitive match against any entry in Tags.
func matchesTag(p models.Project, tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
