package types

import (
	"context"

	"github.com/hamza4344/Web-Scraper/internal/models"
)

// Core interfaces

// RobotsChecker decides whether a URL may be scraped at all.
type RobotsChecker interface {
	Allowed(ctx context.Context, url string) bool
}

// Fetcher loads a page in a browser and extracts its main content region.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*models.Page, error)
}

// Converter turns an HTML fragment into cleaned markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// Chunker splits cleaned markdown into retrieval-ready chunks, attaching the
// base metadata to every chunk it produces.
type Chunker interface {
	Chunk(markdown string, base map[string]string) []models.Chunk
}

// Embedder produces fixed-dimension, L2-normalized embedding vectors.
type Embedder interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// VectorStore is a bulk-built, directory-persisted similarity index.
type VectorStore interface {
	Build(ctx context.Context, chunks []models.Chunk) error
	Persist(dir string) error
	Load(dir string) error
	Query(ctx context.Context, text string, k int) []models.ScoredChunk
}
