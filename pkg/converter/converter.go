package converter

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// Pre-compiled regexes to avoid recompilation per page
var (
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
	boldRunRe    = regexp.MustCompile(`\*{3,}`)
	italicRunRe  = regexp.MustCompile(`_{3,}`)
	dividerRe    = regexp.MustCompile(`^[\s|\-]+$`)
)

var navPrefixes = []string{"menu", "nav", "skip to", "home |", "| home"}

// Converter turns extracted HTML fragments into cleaned markdown. Images are
// dropped and in-page anchor links are reduced to their text, everything else
// keeps its emphasis and link markup.
type Converter struct {
	converter *md.Converter
}

func New() *Converter {
	converter := md.NewConverter("", true, nil)
	converter.Remove("img")

	// Keep the text of internal anchors but not the link itself.
	converter.AddRules(md.Rule{
		Filter: []string{"a"},
		Replacement: func(content string, selec *goquery.Selection, options *md.Options) *string {
			href := selec.AttrOr("href", "")
			if strings.HasPrefix(href, "#") {
				return md.String(content)
			}
			return nil
		},
	})

	return &Converter{converter: converter}
}

// Convert transforms an HTML fragment to markdown and applies structural
// cleanup.
func (c *Converter) Convert(html string) (string, error) {
	markdown, err := c.converter.ConvertString(html)
	if err != nil {
		return "", err
	}
	return CleanMarkdown(markdown), nil
}

// CleanMarkdown normalizes markdown scraped from the web: collapses blank-line
// runs, repairs malformed emphasis markers and drops lines that look like
// navigation or table noise rather than content.
func CleanMarkdown(markdown string) string {
	if markdown == "" {
		return ""
	}

	markdown = blankLinesRe.ReplaceAllString(markdown, "\n\n")
	markdown = boldRunRe.ReplaceAllString(markdown, "**")
	markdown = italicRunRe.ReplaceAllString(markdown, "__")

	var cleaned []string
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 3 {
			continue
		}
		if hasNavPrefix(line) {
			continue
		}
		if dividerRe.MatchString(line) {
			continue
		}
		if strings.Count(line, "|") > 5 {
			// More than five pipes is almost always a menu or table skeleton
			continue
		}
		cleaned = append(cleaned, line)
	}

	return strings.Join(cleaned, "\n")
}

func hasNavPrefix(line string) bool {
	lower := strings.ToLower(line)
	for _, prefix := range navPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
