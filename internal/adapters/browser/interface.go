package browser

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// Session is one isolated browsing context. Close must always be called.
type Session interface {
	// Fetch navigates to url, waits for network activity to settle and returns the rendered DOM
	Fetch(ctx context.Context, url string) (*goquery.Document, error)

	// Close releases the session and everything it started
	Close() error
}

// Launcher opens browsing sessions
type Launcher interface {
	NewSession(ctx context.Context) (Session, error)
}
