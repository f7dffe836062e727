package browser

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/selivandex/kdp-autostudio/internal/adapters/config"
)

// TestRodLauncher_Fetch drives a real Chromium and is opt-in
func TestRodLauncher_Fetch(t *testing.T) {
	if os.Getenv("KDP_BROWSER_TEST") == "" {
		t.Skip("set KDP_BROWSER_TEST=1 to run against a local Chromium")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div data-asin="B000TEST01"><h2><a><span>Rendered</span></a></h2></div></body></html>`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	launcher := NewRodLauncher(&config.ScraperConfig{Headless: true, IdleWait: 200 * time.Millisecond})
	session, err := launcher.NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			t.Logf("close: %v", err)
		}
	}()

	doc, err := session.Fetch(ctx, srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if got := doc.Find("[data-asin] h2 a span").Text(); got != "Rendered" {
		t.Errorf("expected rendered title, got %q", got)
	}
}
