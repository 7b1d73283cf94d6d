package processor

import (
	"regexp"
	"strings"

	"github.com/hamza4344/Web-Scraper/internal/models"
)

var headerLineRe = regexp.MustCompile(`^(#{1,3})\s+(.*)$`)

// headerSection is a run of markdown belonging to one header context. The
// header line itself stays part of the content.
type headerSection struct {
	content  string
	metadata map[string]string
}

// splitByHeaders segments markdown at level 1-3 header boundaries. Each
// section carries the text of the headers it sits under as H1/H2/H3 metadata;
// opening a header clears the deeper levels. Headers inside fenced code
// blocks are treated as plain text. Text before the first header becomes a
// section with no header metadata.
func splitByHeaders(markdown string) []headerSection {
	var sections []headerSection

	current := make(map[string]string)
	var lines []string
	inFence := false

	flush := func() {
		content := strings.TrimSpace(strings.Join(lines, "\n"))
		lines = nil
		if content == "" {
			return
		}
		meta := make(map[string]string, len(current))
		for k, v := range current {
			meta[k] = v
		}
		sections = append(sections, headerSection{content: content, metadata: meta})
	}

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			lines = append(lines, line)
			continue
		}

		m := headerLineRe.FindStringSubmatch(trimmed)
		if m == nil || inFence {
			lines = append(lines, line)
			continue
		}

		flush()

		switch len(m[1]) {
		case 1:
			current = map[string]string{models.MetaH1: strings.TrimSpace(m[2])}
		case 2:
			delete(current, models.MetaH3)
			current[models.MetaH2] = strings.TrimSpace(m[2])
		case 3:
			current[models.MetaH3] = strings.TrimSpace(m[2])
		}
		lines = append(lines, line)
	}
	flush()

	return sections
}
