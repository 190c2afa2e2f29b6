// Package models defines the domain types for Showcase.
package models

import "time"

// Project is the parsed, structured representation of one Markdown
// project document fetched from the content source.
type Project struct {
	// SourceID is the document's content-fetch URL. It is unique within a
	// loaded collection and keys every view-full lookup.
	SourceID string `json:"source_id"`
	// Title is the first Markdown heading, or the filename stem when the
	// document carries no heading. Never empty.
	Title string `json:"title"`
	// Tags come from the document's "Tags:" line, trimmed, empties dropped.
	// Duplicates from malformed input are tolerated.
	Tags []string `json:"tags"`
	// Preview is a bounded excerpt of the body used for the card view.
	Preview string `json:"preview"`
	// FullBody is the complete raw document text. It is rendered to HTML
	// only when a full view is requested.
	FullBody string `json:"-"`
	// PublishedAt is the last-modified time reported by the content host.
	// Used only for sort ordering.
	PublishedAt time.Time `json:"published_at"`
	// Unavailable marks a placeholder entry whose content fetch failed.
	// The title is retained, the body is absent, and the full view is
	// disabled.
	Unavailable bool `json:"unavailable,omitempty"`
}

// SortOrder selects how the derived view orders projects.
type SortOrder string

const (
	SortNewest       SortOrder = "newest"
	SortOldest       SortOrder = "oldest"
	SortAlphabetical SortOrder = "alphabetical"
)

// Valid reports whether o is one of the three known orders.
func (o SortOrder) Valid() bool {
	switch o {
	case SortNewest, SortOldest, SortAlphabetical:
		return true
	}
	return false
}

// ViewState holds the current view parameters of the collection store.
type ViewState struct {
	Search string    `json:"search"`
	Tag    string    `json:"tag"`
	Sort   SortOrder `json:"sort"`
	Page   int       `json:"page"`
}

// View is the filtered, sorted, paginated subset derived from the full
// collection and the current ViewState.
type View struct {
	Items       []Project `json:"items"`
	CurrentPage int       `json:"current_page"`
	TotalPages  int       `json:"total_pages"`
	Total       int       `json:"total"`
}
