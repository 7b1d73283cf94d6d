package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configData := `
scraper:
  urls:
    - "https://example.com/docs"
    - "https://example.com/blog"
  user_agent: "test-agent/1.0"
  page_timeout_seconds: 30
  robots_timeout_seconds: 5

embedding:
  model: "all-minilm"
  base_url: "http://localhost:11434"

processor:
  chunk_size: 500
  chunk_overlap: 100
  min_chunk_length: 40
  min_content_length: 80

store:
  path: "tmp/vectors"

output:
  dir: "tmp/processed"
`
	err := os.WriteFile(configPath, []byte(configData), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/docs", "https://example.com/blog"}, config.Scraper.URLs)
	assert.Equal(t, "test-agent/1.0", config.Scraper.UserAgent)
	assert.Equal(t, 30, config.Scraper.PageTimeoutSecs)
	assert.Equal(t, "all-minilm", config.Embedding.Model)
	assert.Equal(t, 500, config.Processor.ChunkSize)
	assert.Equal(t, 100, config.Processor.ChunkOverlap)
	assert.Equal(t, "tmp/vectors", config.Store.Path)
	assert.Equal(t, "tmp/processed", config.Output.Dir)
}

func TestLoadConfigDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// A minimal file should get every unset field filled in
	err := os.WriteFile(configPath, []byte("scraper:\n  urls:\n    - \"https://example.com/\"\n"), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, 1000, config.Processor.ChunkSize)
	assert.Equal(t, 200, config.Processor.ChunkOverlap)
	assert.Equal(t, 50, config.Processor.MinChunkLength)
	assert.Equal(t, 100, config.Processor.MinContentLength)
	assert.Equal(t, 60, config.Scraper.PageTimeoutSecs)
	assert.Equal(t, "nomic-embed-text", config.Embedding.Model)
	assert.Equal(t, "data/vector_store", config.Store.Path)
	assert.Equal(t, "data/processed", config.Output.Dir)
	assert.Empty(t, config.Validate())
}

func TestConfigValidation(t *testing.T) {
	config, err := getDefaultConfig()
	require.NoError(t, err)
	assert.Empty(t, config.Validate())

	config.Scraper.URLs = []string{"not a url"}
	config.Processor.ChunkOverlap = 2000
	config.Store.Path = ""

	errors := config.Validate()
	require.NotEmpty(t, errors)

	var fields []string
	for _, e := range errors {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "scraper.urls")
	assert.Contains(t, fields, "processor.chunk_overlap")
	assert.Contains(t, fields, "store.path")
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("OLLAMA_BASE_URL", "http://env-ollama:11434")
	t.Setenv("EMBEDDING_MODEL", "env-model")

	config := &Config{}
	mergeWithEnv(config)

	assert.Equal(t, "http://env-ollama:11434", config.Embedding.BaseURL)
	assert.Equal(t, "env-model", config.Embedding.Model)
}
