package robots

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/temoto/robotstxt"
)

// maxRobotsSize bounds how much of a robots.txt file is read.
const maxRobotsSize = 512 * 1024

type CheckerConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// Checker fetches and evaluates a site's robots.txt for the generic agent.
// Any failure to obtain or parse the policy is treated as permission to
// scrape, so a flaky robots.txt never stalls the pipeline.
type Checker struct {
	config CheckerConfig
	client *http.Client
}

func NewWithConfig(config CheckerConfig) *Checker {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &Checker{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Allowed reports whether the generic user agent ("*") may fetch the given
// URL according to the host's robots.txt.
func (c *Checker) Allowed(ctx context.Context, rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		log.Printf("robots: cannot derive robots.txt URL from %q, assuming allowed", rawURL)
		return true
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)
	log.Printf("Checking robots.txt at: %s", robotsURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		log.Printf("robots: could not build request for %s, assuming allowed: %v", robotsURL, err)
		return true
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("Could not fetch robots.txt from %s. Assuming allowed. Error: %v", robotsURL, err)
		return true
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Could not fetch robots.txt from %s (status %d). Assuming allowed.", robotsURL, resp.StatusCode)
		return true
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsSize))
	if err != nil {
		log.Printf("robots: failed reading %s, assuming allowed: %v", robotsURL, err)
		return true
	}

	data, err := robotstxt.FromBytes(body)
	if err != nil {
		log.Printf("robots: failed parsing %s, assuming allowed: %v", robotsURL, err)
		return true
	}

	allowed := data.TestAgent(parsed.RequestURI(), "*")
	if !allowed {
		log.Printf("Scraping DISALLOWED by robots.txt for: %s", rawURL)
	}
	return allowed
}
