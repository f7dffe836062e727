package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"github.com/selivandex/kdp-autostudio/internal/adapters/config"
	"github.com/selivandex/kdp-autostudio/pkg/logger"
)

// RodLauncher starts a dedicated headless Chromium for every session
type RodLauncher struct {
	headless bool
	bin      string
	idleWait time.Duration
}

// NewRodLauncher creates a launcher from scraper configuration
func NewRodLauncher(cfg *config.ScraperConfig) *RodLauncher {
	return &RodLauncher{
		headless: cfg.Headless,
		bin:      cfg.BrowserBin,
		idleWait: cfg.IdleWait,
	}
}

// NewSession launches a browser and opens an incognito context in it
func (l *RodLauncher) NewSession(ctx context.Context) (Session, error) {
	lnch := launcher.New().Context(ctx).Headless(l.headless)
	if l.bin != "" {
		lnch = lnch.Bin(l.bin)
	}

	controlURL, err := lnch.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		lnch.Kill()
		lnch.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	incognito, err := browser.Incognito()
	if err != nil {
		_ = browser.Close()
		lnch.Kill()
		lnch.Cleanup()
		return nil, fmt.Errorf("failed to open incognito context: %w", err)
	}

	logger.Debug("browser session opened", zap.String("control_url", controlURL))

	return &rodSession{
		launcher:  lnch,
		browser:   browser,
		incognito: incognito,
		idleWait:  l.idleWait,
	}, nil
}

type rodSession struct {
	launcher  *launcher.Launcher
	browser   *rod.Browser
	incognito *rod.Browser
	pages     []*rod.Page
	idleWait  time.Duration
}

func (s *rodSession) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	page, err := s.incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	s.pages = append(s.pages, page)
	page = page.Context(ctx)

	waitIdle := page.WaitRequestIdle(s.idleWait, nil, nil, nil)
	if err := page.Navigate(url); err != nil {
		return nil, fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	waitIdle()

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("page load failed: %w", err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("failed to read page html: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page html: %w", err)
	}

	return doc, nil
}

func (s *rodSession) Close() error {
	var errs []error
	for _, page := range s.pages {
		if err := page.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.incognito.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := s.browser.Close(); err != nil {
		errs = append(errs, err)
	}
	s.launcher.Kill()
	s.launcher.Cleanup()

	logger.Debug("browser session closed", zap.Int("pages", len(s.pages)))

	return errors.Join(errs...)
}
