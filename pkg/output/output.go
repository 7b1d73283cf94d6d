package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/hamza4344/Web-Scraper/internal/models"
	"github.com/hamza4344/Web-Scraper/pkg/processor"
)

// minSavedLength drops entries whose cleaned content would add noise rather
// than retrievable text.
const minSavedLength = 50

// maxNameLen caps sanitized filenames.
const maxNameLen = 100

var (
	schemeRe = regexp.MustCompile(`^https?://`)
	unsafeRe = regexp.MustCompile(`[/\\:*?"<>|]`)
)

// Record is the JSON shape of one persisted chunk.
type Record struct {
	PageContent   string            `json:"page_content"`
	Metadata      map[string]string `json:"metadata"`
	ContentLength int               `json:"content_length"`
}

// SaveChunks writes chunks to a JSON array file, cleaning each chunk's text
// and skipping entries that end up too short. It returns how many records
// were written.
func SaveChunks(chunks []models.Chunk, filename string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	records := make([]Record, 0, len(chunks))
	for _, chunk := range chunks {
		cleaned := processor.CleanText(chunk.PageContent)
		if len(cleaned) <= minSavedLength {
			continue
		}
		records = append(records, Record{
			PageContent:   cleaned,
			Metadata:      chunk.Metadata,
			ContentLength: len(cleaned),
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode chunks: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return 0, fmt.Errorf("failed to save data to %s: %w", filename, err)
	}

	return len(records), nil
}

// SanitizeFilename turns a URL into a safe filename: the scheme is stripped,
// path and punctuation characters become underscores and the result is capped
// at 100 characters.
func SanitizeFilename(url string) string {
	sanitized := schemeRe.ReplaceAllString(url, "")
	sanitized = unsafeRe.ReplaceAllString(sanitized, "_")
	if len(sanitized) > maxNameLen {
		sanitized = sanitized[:maxNameLen]
	}
	return sanitized
}
