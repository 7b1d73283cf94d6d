package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/hamza4344/Web-Scraper/internal/models"
)

type ScraperConfig struct {
	UserAgent string
	Timeout   time.Duration
	Selectors SelectorStrategy
}

// Scraper loads pages in a headless browser so that script-rendered content
// is present before extraction. Each Fetch runs in its own browser session.
type Scraper struct {
	config ScraperConfig
}

func NewWithConfig(config ScraperConfig) *Scraper {
	if config.UserAgent == "" {
		config.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if len(config.Selectors) == 0 {
		config.Selectors = DefaultSelectors()
	}

	return &Scraper{config: config}
}

// Fetch navigates to the URL, waits for the DOM to be ready and extracts the
// main content region plus page metadata. Timeouts and navigation errors are
// returned to the caller, who treats them as "skip this URL".
func (s *Scraper) Fetch(ctx context.Context, pageURL string) (*models.Page, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(s.config.UserAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, s.config.Timeout)
	defer cancelRun()

	var rendered string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &rendered, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", pageURL, err)
	}

	extraction, err := s.config.Selectors.Extract(rendered)
	if err != nil {
		return nil, fmt.Errorf("failed to extract content from %s: %w", pageURL, err)
	}

	return &models.Page{
		URL:          pageURL,
		HTML:         extraction.HTML,
		Title:        extraction.Title,
		Description:  extraction.Description,
		SelectorUsed: extraction.SelectorUsed,
	}, nil
}
