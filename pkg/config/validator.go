package config

import (
	"fmt"
	"net/url"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Validate Scraper config
	if len(c.Scraper.URLs) == 0 {
		errors = append(errors, ValidationError{
			Field:   "scraper.urls",
			Message: "at least one URL is required",
		})
	}

	for _, raw := range c.Scraper.URLs {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Field:   "scraper.urls",
				Message: fmt.Sprintf("invalid URL: %s", raw),
			})
		}
	}

	if c.Scraper.PageTimeoutSecs < 1 {
		errors = append(errors, ValidationError{
			Field:   "scraper.page_timeout_seconds",
			Message: "page_timeout_seconds must be positive",
		})
	}

	if c.Scraper.RobotsTimeoutSecs < 1 {
		errors = append(errors, ValidationError{
			Field:   "scraper.robots_timeout_seconds",
			Message: "robots_timeout_seconds must be positive",
		})
	}

	// Validate Embedding config
	if c.Embedding.Model == "" {
		errors = append(errors, ValidationError{
			Field:   "embedding.model",
			Message: "embedding model is required",
		})
	}

	if _, err := url.Parse(c.Embedding.BaseURL); err != nil || c.Embedding.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "embedding.base_url",
			Message: "invalid Ollama base URL",
		})
	}

	// Validate Processor config
	if c.Processor.ChunkSize < 1 {
		errors = append(errors, ValidationError{
			Field:   "processor.chunk_size",
			Message: "chunk_size must be positive",
		})
	}

	if c.Processor.ChunkOverlap < 0 || c.Processor.ChunkOverlap >= c.Processor.ChunkSize {
		errors = append(errors, ValidationError{
			Field:   "processor.chunk_overlap",
			Message: "chunk_overlap must be non-negative and less than chunk_size",
		})
	}

	if c.Processor.MinChunkLength < 1 {
		errors = append(errors, ValidationError{
			Field:   "processor.min_chunk_length",
			Message: "min_chunk_length must be positive",
		})
	}

	// Validate paths
	if c.Store.Path == "" {
		errors = append(errors, ValidationError{
			Field:   "store.path",
			Message: "vector store path is required",
		})
	}

	if c.Output.Dir == "" {
		errors = append(errors, ValidationError{
			Field:   "output.dir",
			Message: "output directory is required",
		})
	}

	return errors
}
