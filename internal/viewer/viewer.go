// Package viewer manages the single full-content overlay: open, dismiss,
// and the animation handshake, with mutual exclusion between instances.
package viewer

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/brighthorizon/showcase/internal/gallery"
	"github.com/brighthorizon/showcase/internal/models"
)

// State is the overlay lifecycle state.
type State string

const (
	StateClosed  State = "closed"
	StateOpening State = "opening"
	StateOpen    State = "open"
	StateClosing State = "closing"
)

// Renderer turns a project into the overlay's content HTML.
type Renderer interface {
	Full(p models.Project) (string, error)
}

// Controller owns the overlay lifecycle. At most one instance is open at a
// time; opening a new document while one is showing closes the current
// instance first. A failed open leaves the controller Closed.
type Controller struct {
	mu     sync.Mutex
	store  *gallery.Store
	render Renderer
	logger *slog.Logger

	state   State
	current string
}

// New creates a closed controller over the given store and renderer.
func New(store *gallery.Store, render Renderer, logger *slog.Logger) *Controller {
	return &Controller{
		store:  store,
		render: render,
		logger: logger,
		state:  StateClosed,
	}
}

// Open looks up the project by source ID, renders its full body, and moves
// the controller to Open. Any instance already opening, open, or closing is
// replaced. Lookup or render failure leaves the controller Closed.
func (c *Controller) Open(sourceID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateClosed {
		c.logger.Debug("viewer: replacing current instance",
			slog.String("replaced", c.current),
			slog.String("requested", sourceID))
		c.closeLocked()
	}

	p, err := c.store.Get(sourceID)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", sourceID, err)
	}

	c.state = StateOpening
	content, err := c.render.Full(p)
	if err != nil {
		c.closeLocked()
		return "", fmt.Errorf("open %s: %w", sourceID, err)
	}

	c.state = StateOpen
	c.current = sourceID
	return content, nil
}

// Dismiss starts the exit transition. The overlay is removed only after
// AnimationDone; consumers must not assume synchronous removal. Dismissing
// a closed controller is a no-op.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateOpening, StateOpen:
		c.state = StateClosing
	}
}

// AnimationDone completes the exit transition, removing the instance.
func (c *Controller) AnimationDone() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateClosing {
		c.closeLocked()
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the source ID of the showing instance, or empty when no
// instance exists.
func (c *Controller) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) closeLocked() {
	c.state = StateClosed
	c.current = ""
}
