package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/brighthorizon/showcase/internal/apperr"
	"github.com/brighthorizon/showcase/internal/models"
)

// Card is one rendered gallery card.
type Card struct {
	SourceID    string
	Title       string
	Tags        []string
	PreviewHTML template.HTML
	Unavailable bool
}

// cardsData feeds the card-list template.
type cardsData struct {
	Cards       []Card
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
}

// pageData feeds the gallery host page template.
type pageData struct {
	Title       string
	Tags        []string
	SortOrders  []models.SortOrder
	CardsHTML   template.HTML
	CurrentSort models.SortOrder
}

// Renderer projects derived views into HTML. Rendering the same view twice
// yields the same markup; the output always fully replaces the card region.
type Renderer struct {
	cards *template.Template
	page  *template.Template
}

// New parses the gallery templates.
func New() (*Renderer, error) {
	cards, err := template.New("cards").Parse(cardsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse cards template: %w", err)
	}
	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Renderer{cards: cards, page: page}, nil
}

// BuildCards renders each item's preview and assembles the card list.
func BuildCards(view models.View) ([]Card, error) {
	cards := make([]Card, 0, len(view.Items))
	for _, p := range view.Items {
		card := Card{
			SourceID:    p.SourceID,
			Title:       p.Title,
			Tags:        p.Tags,
			Unavailable: p.Unavailable,
		}
		if !p.Unavailable {
			html, err := Markdown(p.Preview)
			if err != nil {
				return nil, fmt.Errorf("render preview for %s: %w", p.SourceID, err)
			}
			card.PreviewHTML = html
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Cards renders the card region for a derived view: the full card list plus
// pagination state, or the no-results placeholder when the page is empty.
func (r *Renderer) Cards(view models.View) (string, error) {
	cards, err := BuildCards(view)
	if err != nil {
		return "", err
	}
	data := cardsData{
		Cards:       cards,
		CurrentPage: view.CurrentPage,
		TotalPages:  view.TotalPages,
		HasPrev:     view.CurrentPage > 1,
		HasNext:     view.CurrentPage < view.TotalPages,
	}
	var buf bytes.Buffer
	if err := r.cards.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute cards template: %w", err)
	}
	return buf.String(), nil
}

// Full renders a project's complete body. Placeholder entries have no body
// and fail with ErrUnavailable.
func (r *Renderer) Full(p models.Project) (string, error) {
	if p.Unavailable {
		return "", fmt.Errorf("project %s: %w", p.SourceID, apperr.ErrUnavailable)
	}
	html, err := Markdown(p.FullBody)
	if err != nil {
		return "", err
	}
	return string(html), nil
}

// Page renders the gallery host page with its controls and the initial
// card region.
func (r *Renderer) Page(title string, tags []string, view models.View) (string, error) {
	cardsHTML, err := r.Cards(view)
	if err != nil {
		return "", err
	}
	data := pageData{
		Title:      title,
		Tags:       tags,
		SortOrders: []models.SortOrder{models.SortNewest, models.SortOldest, models.SortAlphabetical},
		CardsHTML:  template.HTML(cardsHTML),
	}
	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}
	return buf.String(), nil
}
