package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/kdp-autostudio/internal/adapters/browser"
	"github.com/selivandex/kdp-autostudio/internal/adapters/config"
	"github.com/selivandex/kdp-autostudio/pkg/logger"
	"github.com/selivandex/kdp-autostudio/pkg/models"
)

// ErrCollection wraps any failure while driving a browsing session
var ErrCollection = errors.New("listing collection failed")

// Collector gathers competitor listings from the marketplace book search
type Collector struct {
	launcher    browser.Launcher
	baseURL     string
	settleDelay time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewCollector creates a collector using the given session launcher
func NewCollector(launcher browser.Launcher, cfg *config.ScraperConfig) *Collector {
	return &Collector{
		launcher:    launcher,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		settleDelay: cfg.SettleDelay,
		sleep:       sleepContext,
	}
}

// SearchURL returns the book search results URL for keyword
func (c *Collector) SearchURL(keyword string) string {
	params := url.Values{}
	params.Set("k", keyword)
	params.Set("i", "stripbooks")
	return fmt.Sprintf("%s/s?%s", c.baseURL, params.Encode())
}

// Collect returns up to maxResults competitor records for keyword.
// Failures are logged and whatever was gathered before the failure is returned.
func (c *Collector) Collect(ctx context.Context, keyword string, maxResults int) []models.CompetitorRecord {
	records, err := c.collect(ctx, keyword, maxResults)
	if err != nil {
		logger.Error("error scraping keyword",
			zap.String("keyword", keyword),
			zap.Int("collected", len(records)),
			zap.Error(err),
		)
	}
	if records == nil {
		records = []models.CompetitorRecord{}
	}
	return records
}

func (c *Collector) collect(ctx context.Context, keyword string, maxResults int) (records []models.CompetitorRecord, err error) {
	session, err := c.launcher.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCollection, err)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrCollection, r)
		}
		if closeErr := session.Close(); closeErr != nil {
			logger.Warn("failed to close browser session", zap.Error(closeErr))
		}
	}()

	searchURL := c.SearchURL(keyword)
	logger.Debug("fetching search results", zap.String("url", searchURL))

	doc, err := session.Fetch(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCollection, err)
	}

	// fixed pause before reading the page
	if err := c.sleep(ctx, c.settleDelay); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCollection, err)
	}

	return ExtractCompetitors(doc, keyword, maxResults), nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
