package api

import "time"

// ProjectCard is one gallery card in a list response.
type ProjectCard struct {
	SourceID    string    `json:"source_id"`
	Title       string    `json:"title"`
	Tags        []string  `json:"tags"`
	PreviewHTML string    `json:"preview_html"`
	PublishedAt time.Time `json:"published_at"`
	Unavailable bool      `json:"unavailable,omitempty"`
}

// GalleryResponse wraps one derived page of the collection.
type GalleryResponse struct {
	Projects    []ProjectCard `json:"projects"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
	Total       int           `json:"total"`
	HasPrev     bool          `json:"has_prev"`
	HasNext     bool          `json:"has_next"`
}

// TagsResponse lists the tags available for filtering.
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// OpenViewerRequest asks the viewer to show a project's full content.
type OpenViewerRequest struct {
	SourceID string `json:"source_id"`
}

// ViewerResponse reports the viewer state and, when open, the rendered
// content.
type ViewerResponse struct {
	State       string `json:"state"`
	SourceID    string `json:"source_id,omitempty"`
	ContentHTML string `json:"content_html,omitempty"`
}

// ReloadResponse reports the outcome of a manual collection reload.
type ReloadResponse struct {
	Projects int `json:"projects"`
}
