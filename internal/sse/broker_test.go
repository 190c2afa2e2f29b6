package sse

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}
	b.Unsubscribe(ch)
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsub")
	}
}

func TestPublishDelivery(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishViewerEvent(true, "https://example.com/a.md")

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: "+EventViewerOpened) {
			t.Errorf("missing event type in %q", s)
		}
		if !strings.Contains(s, `"source_id":"https://example.com/a.md"`) {
			t.Errorf("missing data in %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestPublishReload_Throttle(t *testing.T) {
	b := NewBroker(500 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// Rapid reloads collapse into one broadcast.
	b.PublishReload(nil)
	b.PublishReload(nil)
	b.PublishReload(errors.New("listing failed"))

	time.Sleep(50 * time.Millisecond)
	count := 0
loop:
	for {
		select {
		case msg := <-ch:
			if !strings.Contains(string(msg), EventGalleryReloaded) {
				t.Errorf("unexpected event: %q", msg)
			}
			count++
		default:
			break loop
		}
	}
	if count != 1 {
		t.Errorf("reload events = %d, want 1 (throttled)", count)
	}
}

func TestPublishReload_Failure(t *testing.T) {
	b := NewBroker(10 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishReload(errors.New("listing failed"))

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, EventGalleryLoadFailed) {
			t.Errorf("event = %q, want load_failed", s)
		}
		if !strings.Contains(s, "listing failed") {
			t.Errorf("missing error detail in %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestSSEHandler(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		b.ServeHTTP(w, req)
		close(done)
	}()

	// Give handler time to subscribe.
	time.Sleep(50 * time.Millisecond)
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client from handler")
	}

	b.PublishViewerEvent(false, "x.md")
	time.Sleep(50 * time.Millisecond)

	cancel()
	<-done

	body := w.Body.String()
	if !strings.Contains(body, "event: "+EventViewerClosed) {
		t.Errorf("handler body = %q", body)
	}
}

func TestCloseIdempotent(t *testing.T) {
	b := NewBroker(10 * time.Millisecond)
	b.Close()
	b.Close()
	if b.ClientCount() != 0 {
		t.Error("closed broker should report 0 clients")
	}
	// Operations after close are no-ops.
	b.PublishReload(nil)
	ch := b.Subscribe()
	if _, ok := <-ch; ok {
		t.Error("subscribe after close should return a closed channel")
	}
}
