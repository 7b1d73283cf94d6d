package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPrefersEarlierSelectors(t *testing.T) {
	page := `<html>
		<head>
			<title>Test Article</title>
			<meta name="description" content="A page about testing.">
		</head>
		<body>
			<div class="content"><p>sidebar junk</p></div>
			<article><p>the real article body</p></article>
		</body>
	</html>`

	ex, err := DefaultSelectors().Extract(page)
	require.NoError(t, err)

	assert.Equal(t, "article", ex.SelectorUsed)
	assert.Contains(t, ex.HTML, "the real article body")
	assert.NotContains(t, ex.HTML, "sidebar junk")
	assert.Equal(t, "Test Article", ex.Title)
	assert.Equal(t, "A page about testing.", ex.Description)
}

func TestExtractFirstMatchWins(t *testing.T) {
	page := `<html><body>
		<article><p>first article</p></article>
		<article><p>second article</p></article>
	</body></html>`

	ex, err := DefaultSelectors().Extract(page)
	require.NoError(t, err)
	assert.Contains(t, ex.HTML, "first article")
	assert.NotContains(t, ex.HTML, "second article")
}

func TestExtractFallsBackToBody(t *testing.T) {
	page := `<html><head><title>Bare</title></head>
		<body><p>nothing semantic here</p></body></html>`

	ex, err := DefaultSelectors().Extract(page)
	require.NoError(t, err)
	assert.Equal(t, "body", ex.SelectorUsed)
	assert.Contains(t, ex.HTML, "nothing semantic here")
}

func TestExtractCustomStrategy(t *testing.T) {
	page := `<html><body>
		<article><p>generic body</p></article>
		<div class="docs-page"><p>docs body</p></div>
	</body></html>`

	strategy := SelectorStrategy{".docs-page"}
	ex, err := strategy.Extract(page)
	require.NoError(t, err)
	assert.Equal(t, ".docs-page", ex.SelectorUsed)
	assert.Contains(t, ex.HTML, "docs body")
}

func TestExtractMissingMetadata(t *testing.T) {
	ex, err := DefaultSelectors().Extract(`<html><body><main><p>hello there</p></main></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "No Title", ex.Title)
	assert.Empty(t, ex.Description)
}

func TestNewWithConfigDefaults(t *testing.T) {
	s := NewWithConfig(ScraperConfig{})
	assert.NotEmpty(t, s.config.UserAgent)
	assert.Equal(t, DefaultSelectors(), s.config.Selectors)
	assert.NotZero(t, s.config.Timeout)
}
