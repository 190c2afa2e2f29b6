package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/brighthorizon/showcase/internal/apperr"
	"github.com/brighthorizon/showcase/internal/gallery"
	"github.com/brighthorizon/showcase/internal/models"
	"github.com/brighthorizon/showcase/internal/render"
	"github.com/brighthorizon/showcase/internal/sse"
	"github.com/brighthorizon/showcase/internal/viewer"
)

// ReloadFunc re-fetches the collection from the source. It returns the
// number of loaded projects.
type ReloadFunc func(ctx context.Context) (int, error)

// Handler holds API route handlers.
type Handler struct {
	store    *gallery.Store
	viewer   *viewer.Controller
	renderer *render.Renderer
	broker   *sse.Broker
	reload   ReloadFunc
	title    string
}

// NewHandler creates a new Handler. broker and reload may be nil in tests.
func NewHandler(store *gallery.Store, v *viewer.Controller, renderer *render.Renderer, broker *sse.Broker, reload ReloadFunc, title string) *Handler {
	return &Handler{
		store:    store,
		viewer:   v,
		renderer: renderer,
		broker:   broker,
		reload:   reload,
		title:    title,
	}
}

// applyViewParams routes changed query parameters through the store's
// mutation operations, so search/tag/sort changes reset to page 1 while an
// explicit page navigation only clamps.
func (h *Handler) applyViewParams(r *http.Request) models.View {
	q := r.URL.Query()
	state := h.store.State()

	if q.Has("q") && q.Get("q") != state.Search {
		h.store.SetSearch(q.Get("q"))
	}
	if q.Has("tag") && q.Get("tag") != state.Tag {
		h.store.SetTag(q.Get("tag"))
	}
	if q.Has("sort") {
		if o := models.SortOrder(q.Get("sort")); o.Valid() && o != state.Sort {
			h.store.SetSort(o)
		}
	}
	if q.Has("page") {
		if n, err := strconv.Atoi(q.Get("page")); err == nil {
			h.store.SetPage(n)
		}
	}
	return h.store.View()
}

// Gallery handles GET /api/gallery: the derived view as JSON.
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	if err := h.store.LoadError(); err != nil {
		slog.Error("gallery unavailable", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, errorBody("could not load projects"))
		return
	}

	view := h.applyViewParams(r)
	cards, err := render.BuildCards(view)
	if err != nil {
		slog.Error("render previews failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	resp := GalleryResponse{
		Projects:    make([]ProjectCard, len(view.Items)),
		CurrentPage: view.CurrentPage,
		TotalPages:  view.TotalPages,
		Total:       view.Total,
		HasPrev:     view.CurrentPage > 1,
		HasNext:     view.CurrentPage < view.TotalPages,
	}
	for i, p := range view.Items {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		resp.Projects[i] = ProjectCard{
			SourceID:    p.SourceID,
			Title:       p.Title,
			Tags:        tags,
			PreviewHTML: string(cards[i].PreviewHTML),
			PublishedAt: p.PublishedAt,
			Unavailable: p.Unavailable,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Tags handles GET /api/gallery/tags.
func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	tags := h.store.Tags()
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, TagsResponse{Tags: tags})
}

// Reload handles POST /api/gallery/reload: the manual recovery path after
// a failed load. There are no automatic retries.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if h.reload == nil {
		writeJSON(w, http.StatusNotImplemented, errorBody("reload not configured"))
		return
	}
	n, err := h.reload(r.Context())
	if err != nil {
		slog.Error("reload failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadGateway, errorBody("could not load projects"))
		return
	}
	writeJSON(w, http.StatusOK, ReloadResponse{Projects: n})
}

// ViewerOpen handles POST /api/viewer/open.
func (h *Handler) ViewerOpen(w http.ResponseWriter, r *http.Request) {
	var req OpenViewerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.SourceID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("source_id is required"))
		return
	}

	content, err := h.viewer.Open(req.SourceID)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("project not found"))
		case errors.Is(err, apperr.ErrUnavailable):
			writeJSON(w, http.StatusConflict, errorBody("project content is unavailable"))
		default:
			slog.Error("viewer open failed", slog.String("source_id", req.SourceID), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}

	if h.broker != nil {
		h.broker.PublishViewerEvent(true, req.SourceID)
	}
	writeJSON(w, http.StatusOK, ViewerResponse{
		State:       string(h.viewer.State()),
		SourceID:    req.SourceID,
		ContentHTML: content,
	})
}

// ViewerDismiss handles POST /api/viewer/dismiss: starts the exit
// transition (close button, Escape, and backdrop clicks all land here).
func (h *Handler) ViewerDismiss(w http.ResponseWriter, r *http.Request) {
	h.viewer.Dismiss()
	writeJSON(w, http.StatusOK, ViewerResponse{State: string(h.viewer.State()), SourceID: h.viewer.Current()})
}

// ViewerDone handles POST /api/viewer/done: the exit animation finished,
// the instance can be removed.
func (h *Handler) ViewerDone(w http.ResponseWriter, r *http.Request) {
	closing := h.viewer.Current()
	h.viewer.AnimationDone()
	if h.broker != nil && h.viewer.State() == viewer.StateClosed && closing != "" {
		h.broker.PublishViewerEvent(false, closing)
	}
	writeJSON(w, http.StatusOK, ViewerResponse{State: string(h.viewer.State())})
}

// ViewerState handles GET /api/viewer.
func (h *Handler) ViewerState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ViewerResponse{
		State:    string(h.viewer.State()),
		SourceID: h.viewer.Current(),
	})
}

// Page handles GET /: the server-rendered gallery page.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	if err := h.store.LoadError(); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`<p class="error">Couldn't load projects. Try again later.</p>`))
		return
	}
	out, err := h.renderer.Page(h.title, h.store.Tags(), h.store.View())
	if err != nil {
		slog.Error("render page failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

// Partials handles GET /partials/gallery: the card region fragment for the
// current view parameters. Each response fully replaces the card region.
func (h *Handler) Partials(w http.ResponseWriter, r *http.Request) {
	if err := h.store.LoadError(); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`<p class="no-results">Could not load projects. Try again later.</p>`))
		return
	}
	view := h.applyViewParams(r)
	out, err := h.renderer.Cards(view)
	if err != nil {
		slog.Error("render cards failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

// StaticCSS and StaticJS serve the embedded gallery assets.
func (h *Handler) StaticCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write([]byte(render.GalleryCSS))
}

func (h *Handler) StaticJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	_, _ = w.Write([]byte(render.GalleryJS))
}
