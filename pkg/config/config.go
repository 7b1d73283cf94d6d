package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Scraper struct {
		URLs              []string `yaml:"urls"`
		UserAgent         string   `yaml:"user_agent"`
		PageTimeoutSecs   int      `yaml:"page_timeout_seconds"`
		RobotsTimeoutSecs int      `yaml:"robots_timeout_seconds"`
		ContentSelectors  []string `yaml:"content_selectors"`
	} `yaml:"scraper"`

	Embedding struct {
		Model   string `yaml:"model"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"embedding"`

	Processor struct {
		ChunkSize        int `yaml:"chunk_size"`
		ChunkOverlap     int `yaml:"chunk_overlap"`
		MinChunkLength   int `yaml:"min_chunk_length"`
		MinContentLength int `yaml:"min_content_length"`
	} `yaml:"processor"`

	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`

	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

func LoadConfig(path string) (*Config, error) {
	// If no path provided, try default locations
	if path == "" {
		locations := []string{
			"config.yaml",
			"config.yml",
			filepath.Join(os.Getenv("HOME"), ".config/webrag/config.yaml"),
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return getDefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	mergeWithEnv(&config)
	applyDefaults(&config)

	return &config, nil
}

func getDefaultConfig() (*Config, error) {
	config := &Config{}
	applyDefaults(config)
	mergeWithEnv(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if len(config.Scraper.URLs) == 0 {
		config.Scraper.URLs = defaultURLs()
	}
	if config.Scraper.UserAgent == "" {
		config.Scraper.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	if config.Scraper.PageTimeoutSecs == 0 {
		config.Scraper.PageTimeoutSecs = 60
	}
	if config.Scraper.RobotsTimeoutSecs == 0 {
		config.Scraper.RobotsTimeoutSecs = 10
	}

	if config.Embedding.Model == "" {
		config.Embedding.Model = "nomic-embed-text"
	}
	if config.Embedding.BaseURL == "" {
		config.Embedding.BaseURL = "http://localhost:11434"
	}

	if config.Processor.ChunkSize == 0 {
		config.Processor.ChunkSize = 1000
	}
	if config.Processor.ChunkOverlap == 0 {
		config.Processor.ChunkOverlap = 200
	}
	if config.Processor.MinChunkLength == 0 {
		config.Processor.MinChunkLength = 50
	}
	if config.Processor.MinContentLength == 0 {
		config.Processor.MinContentLength = 100
	}

	if config.Store.Path == "" {
		config.Store.Path = "data/vector_store"
	}
	if config.Output.Dir == "" {
		config.Output.Dir = "data/processed"
	}
}

func mergeWithEnv(config *Config) {
	if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
		config.Embedding.BaseURL = baseURL
	}
	if model := os.Getenv("EMBEDDING_MODEL"); model != "" {
		config.Embedding.Model = model
	}
}

func defaultURLs() []string {
	return []string{
		"https://www.promptingguide.ai/",
		"https://lilianweng.github.io/posts/2023-06-23-agent/",
		"https://en.wikipedia.org/wiki/Large_language_model",
		"https://en.wikipedia.org/wiki/Web_scraping",
		"https://www.wired.com/category/science/",
		"https://docs.docker.com/get-started/",
		"https://www.freecodecamp.org/news/what-is-web-scraping/",
		"https://github.blog/2023-11-08-universe-2023-copilot-transforms-github-into-the-ai-powered-developer-platform/",
		"https://www.theverge.com/tech",
		"https://www.joelonsoftware.com/2000/08/09/the-joel-test-12-steps-to-better-code/",
	}
}
