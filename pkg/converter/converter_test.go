package converter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStripsImagesKeepsLinks(t *testing.T) {
	c := New()

	html := `<div>
		<h2>Getting Started</h2>
		<p>Read the <a href="https://example.com/guide">full guide</a> for details.</p>
		<p>Jump to the <a href="#install">install section</a> below.</p>
		<img src="banner.png" alt="banner">
		<p>Images should leave no trace in the output text at all.</p>
	</div>`

	markdown, err := c.Convert(html)
	require.NoError(t, err)

	assert.Contains(t, markdown, "## Getting Started")
	assert.Contains(t, markdown, "[full guide](https://example.com/guide)")
	// Anchor links keep their text but lose the link markup
	assert.Contains(t, markdown, "install section")
	assert.NotContains(t, markdown, "#install")
	assert.NotContains(t, markdown, "banner.png")
}

func TestCleanMarkdownCollapsesRuns(t *testing.T) {
	in := "First paragraph here.\n\n\n\n\nSecond paragraph here.\n***bold*** and ____underline____ markers."
	out := CleanMarkdown(in)

	assert.NotContains(t, out, "\n\n\n")
	assert.NotContains(t, out, "***")
	assert.NotContains(t, out, "___")
	assert.Contains(t, out, "**bold**")
}

func TestCleanMarkdownDropsNoiseLines(t *testing.T) {
	lines := []string{
		"Menu | Home | About | Contact",
		"nav links go here",
		"Skip to main content",
		"ok",
		"| --- | --- |",
		"a | b | c | d | e | f | g",
		"This is a real sentence that should survive the cleanup.",
	}
	out := CleanMarkdown(strings.Join(lines, "\n"))

	assert.Equal(t, "This is a real sentence that should survive the cleanup.", out)
}

func TestCleanMarkdownEmpty(t *testing.T) {
	assert.Equal(t, "", CleanMarkdown(""))
	assert.Equal(t, "", CleanMarkdown("\n\n  \n"))
}
