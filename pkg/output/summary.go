package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/hamza4344/Web-Scraper/internal/models"
)

// ContentStats summarizes chunk length distribution.
type ContentStats struct {
	AvgChunkLength  float64 `json:"avg_chunk_length"`
	MinChunkLength  int     `json:"min_chunk_length"`
	MaxChunkLength  int     `json:"max_chunk_length"`
	TotalCharacters int     `json:"total_characters"`
}

// Summary is the read-only aggregate written after a successful run.
type Summary struct {
	TotalDocuments      int          `json:"total_documents"`
	UniqueSources       int          `json:"unique_sources"`
	Sources             []string     `json:"sources"`
	ContentStats        ContentStats `json:"content_stats"`
	ReadyForRAG         bool         `json:"ready_for_rag"`
	EmbeddingCompatible bool         `json:"embedding_compatible"`
}

// NewSummary computes aggregate statistics over all chunks. An empty input is
// an error condition, not a crash.
func NewSummary(chunks []models.Chunk) (*Summary, error) {
	if len(chunks) == 0 {
		return nil, errors.New("no chunks available")
	}

	sourceSet := make(map[string]struct{})
	var total, min, max int
	min = math.MaxInt

	for _, chunk := range chunks {
		source := chunk.Metadata[models.MetaSource]
		if source == "" {
			source = "Unknown"
		}
		sourceSet[source] = struct{}{}

		n := len(chunk.PageContent)
		total += n
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}

	sources := make([]string, 0, len(sourceSet))
	for source := range sourceSet {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	avg := float64(total) / float64(len(chunks))

	return &Summary{
		TotalDocuments: len(chunks),
		UniqueSources:  len(sources),
		Sources:        sources,
		ContentStats: ContentStats{
			AvgChunkLength:  math.Round(avg*100) / 100,
			MinChunkLength:  min,
			MaxChunkLength:  max,
			TotalCharacters: total,
		},
		ReadyForRAG:         true,
		EmbeddingCompatible: true,
	}, nil
}

// Save writes the summary as indented JSON.
func (s *Summary) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save summary to %s: %w", path, err)
	}
	return nil
}
