package scraper

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SelectorStrategy is an ordered list of CSS selectors tried against the
// rendered page; the first selector with at least one match wins and its
// first match supplies the content. The order encodes "most likely to be the
// article body first" and can be swapped without touching the fetch logic.
type SelectorStrategy []string

func DefaultSelectors() SelectorStrategy {
	return SelectorStrategy{
		"article", "main", `[role="main"]`, "#main", "#content",
		".main", ".content", ".post", ".entry", ".article-content",
		".post-content", ".entry-content", ".page-content",
	}
}

// Extraction holds the content region and page metadata pulled from a
// rendered document.
type Extraction struct {
	HTML         string
	Title        string
	Description  string
	SelectorUsed string
}

// Extract applies the strategy to a rendered HTML document. When no selector
// matches, the whole body is used.
func (s SelectorStrategy) Extract(pageHTML string) (*Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, err
	}

	var content, selectorUsed string
	for _, selector := range s {
		matched := doc.Find(selector)
		if matched.Length() == 0 {
			continue
		}
		inner, err := matched.First().Html()
		if err != nil {
			continue
		}
		content = inner
		selectorUsed = selector
		log.Printf("Extracted content using selector: '%s'", selector)
		break
	}

	if content == "" {
		log.Printf("No main content found. Using body content")
		body, err := doc.Find("body").Html()
		if err != nil {
			return nil, err
		}
		content = body
		selectorUsed = "body"
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = "No Title"
	}

	description, _ := doc.Find(`meta[name="description"]`).First().Attr("content")

	return &Extraction{
		HTML:         content,
		Title:        title,
		Description:  description,
		SelectorUsed: selectorUsed,
	}, nil
}
