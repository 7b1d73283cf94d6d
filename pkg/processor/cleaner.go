package processor

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	controlRe     = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F-\x9F]`)
	ellipsisRunRe = regexp.MustCompile(`\.{3,}`)
	dashRunRe     = regexp.MustCompile(`-{3,}`)
)

// CleanText normalizes a chunk's text before it is written out: whitespace is
// collapsed to single spaces, control characters are stripped and runaway
// punctuation runs are shortened.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = controlRe.ReplaceAllString(text, "")
	text = ellipsisRunRe.ReplaceAllString(text, "...")
	text = dashRunRe.ReplaceAllString(text, "---")

	return strings.TrimSpace(text)
}
