package processor

import (
	"log"
	"regexp"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"

	"github.com/hamza4344/Web-Scraper/internal/models"
)

// emptyContentRe matches chunks made purely of whitespace and punctuation.
var emptyContentRe = regexp.MustCompile(`^[\s\W]*$`)

type ChunkerConfig struct {
	ChunkSize      int
	ChunkOverlap   int
	MinChunkLength int
}

// Chunker splits cleaned markdown into retrieval-ready chunks: first at
// header boundaries, then by size with overlap, preferring to break at
// paragraph, line and sentence boundaries before falling back to hard cuts.
type Chunker struct {
	config   ChunkerConfig
	splitter textsplitter.RecursiveCharacter
}

func NewWithConfig(config ChunkerConfig) *Chunker {
	if config.ChunkSize == 0 {
		config.ChunkSize = 1000
	}
	if config.ChunkOverlap == 0 {
		config.ChunkOverlap = 200
	}
	if config.MinChunkLength == 0 {
		config.MinChunkLength = 50
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(config.ChunkSize),
		textsplitter.WithChunkOverlap(config.ChunkOverlap),
		textsplitter.WithSeparators([]string{"\n\n", "\n", ". ", " ", ""}),
	)

	return &Chunker{
		config:   config,
		splitter: splitter,
	}
}

// Chunk produces the final filtered chunks for one page. Every chunk carries
// the base metadata; header-derived chunks additionally carry H1/H2/H3 and a
// section field.
func (c *Chunker) Chunk(markdown string, base map[string]string) []models.Chunk {
	var chunks []models.Chunk

	sections := splitByHeaders(markdown)
	if len(sections) > 0 {
		for _, section := range sections {
			parts, err := c.splitter.SplitText(section.content)
			if err != nil {
				log.Printf("chunker: size split failed for section, skipping: %v", err)
				continue
			}
			for _, part := range parts {
				if chunk, ok := c.buildChunk(part, base, section.metadata); ok {
					chunks = append(chunks, chunk)
				}
			}
		}
		return chunks
	}

	// No header structure at all: size-split the whole document.
	parts, err := c.splitter.SplitText(markdown)
	if err != nil {
		log.Printf("chunker: size split failed: %v", err)
		return nil
	}
	for _, part := range parts {
		if chunk, ok := c.buildChunk(part, base, nil); ok {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// buildChunk attaches metadata and applies the validity filter. Chunks at or
// below the minimum length, or with no word characters at all, are dropped.
func (c *Chunker) buildChunk(content string, base, headers map[string]string) (models.Chunk, bool) {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) <= c.config.MinChunkLength || emptyContentRe.MatchString(trimmed) {
		return models.Chunk{}, false
	}

	meta := make(map[string]string, len(base)+len(headers)+1)
	for k, v := range base {
		meta[k] = v
	}
	for k, v := range headers {
		meta[k] = v
	}

	if section := meta[models.MetaH1]; section != "" {
		meta[models.MetaSection] = section
	} else if section := meta[models.MetaH2]; section != "" {
		meta[models.MetaSection] = section
	}

	return models.Chunk{PageContent: trimmed, Metadata: meta}, true
}
