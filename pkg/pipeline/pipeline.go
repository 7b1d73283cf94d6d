package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/hamza4344/Web-Scraper/internal/models"
	"github.com/hamza4344/Web-Scraper/internal/types"
	"github.com/hamza4344/Web-Scraper/pkg/config"
	"github.com/hamza4344/Web-Scraper/pkg/converter"
	"github.com/hamza4344/Web-Scraper/pkg/llm"
	"github.com/hamza4344/Web-Scraper/pkg/output"
	"github.com/hamza4344/Web-Scraper/pkg/processor"
	"github.com/hamza4344/Web-Scraper/pkg/robots"
	"github.com/hamza4344/Web-Scraper/pkg/scraper"
	"github.com/hamza4344/Web-Scraper/pkg/store"
)

// demoQueries is the fixed battery run against the freshly built store.
var demoQueries = []string{
	"What is web scraping?",
	"How do large language models work?",
	"What are coding best practices?",
	"Tell me about AI agents",
}

// Pipeline wires the components into the sequential scrape → chunk → index
// flow. Fields are exported so tests can substitute fakes.
type Pipeline struct {
	Config    *config.Config
	Robots    types.RobotsChecker
	Fetcher   types.Fetcher
	Converter types.Converter
	Chunker   types.Chunker
	Store     types.VectorStore
}

func New(cfg *config.Config) (*Pipeline, error) {
	embedder, err := llm.NewWithConfig(llm.EmbedderConfig{
		Model:   cfg.Embedding.Model,
		BaseURL: cfg.Embedding.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedder: %w", err)
	}

	return &Pipeline{
		Config: cfg,
		Robots: robots.NewWithConfig(robots.CheckerConfig{
			UserAgent: cfg.Scraper.UserAgent,
			Timeout:   time.Duration(cfg.Scraper.RobotsTimeoutSecs) * time.Second,
		}),
		Fetcher: scraper.NewWithConfig(scraper.ScraperConfig{
			UserAgent: cfg.Scraper.UserAgent,
			Timeout:   time.Duration(cfg.Scraper.PageTimeoutSecs) * time.Second,
			Selectors: scraper.SelectorStrategy(cfg.Scraper.ContentSelectors),
		}),
		Converter: converter.New(),
		Chunker: processor.NewWithConfig(processor.ChunkerConfig{
			ChunkSize:      cfg.Processor.ChunkSize,
			ChunkOverlap:   cfg.Processor.ChunkOverlap,
			MinChunkLength: cfg.Processor.MinChunkLength,
		}),
		Store: store.New(embedder),
	}, nil
}

// ProcessURL runs one URL through robots check, fetch, conversion and
// chunking. A robots denial returns no chunks and no error; everything else
// that prevents usable chunks is an error for the caller to log and count.
func (p *Pipeline) ProcessURL(ctx context.Context, url string) ([]models.Chunk, error) {
	if !p.Robots.Allowed(ctx, url) {
		return nil, nil
	}

	log.Printf("Scraping allowed. Loading content from: %s", url)

	page, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	markdown, err := p.Converter.Convert(page.HTML)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", url, err)
	}

	if len(strings.TrimSpace(markdown)) < p.Config.Processor.MinContentLength {
		return nil, fmt.Errorf("insufficient content after cleaning for %s", url)
	}

	base := map[string]string{
		models.MetaSource:       url,
		models.MetaTitle:        page.Title,
		models.MetaDescription:  page.Description,
		models.MetaSelectorUsed: page.SelectorUsed,
		models.MetaContentType:  "markdown",
	}

	chunks := p.Chunker.Chunk(markdown, base)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no valid chunks after filtering for %s", url)
	}

	log.Printf("Successfully processed %s: %d clean chunks created", url, len(chunks))
	return chunks, nil
}

// Run executes the full pipeline: scrape every configured URL, persist the
// per-URL and combined outputs, build and save the vector store, then run the
// demonstration queries.
func (p *Pipeline) Run(ctx context.Context) error {
	urls := p.Config.Scraper.URLs
	outDir := p.Config.Output.Dir

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	color.Cyan("Phase 1: Scraping %d URLs with robots.txt compliance", len(urls))

	bar := newProgressBar(len(urls), "Scraping URLs")
	var allChunks []models.Chunk
	var successful, failed int

	for i, url := range urls {
		log.Printf("[%d/%d] Processing: %s", i+1, len(urls), url)

		chunks, err := p.ProcessURL(ctx, url)
		switch {
		case err != nil:
			failed++
			color.Red("✗ Error processing %s: %v", url, err)
		case len(chunks) == 0:
			failed++
			color.Red("✗ Skipped (robots.txt): %s", url)
		default:
			filename := filepath.Join(outDir, output.SanitizeFilename(url)+"_chunks.json")
			saved, err := output.SaveChunks(chunks, filename)
			if err != nil || saved == 0 {
				failed++
				color.Red("✗ Failed: no valid chunks saved for %s", url)
				break
			}
			allChunks = append(allChunks, chunks...)
			successful++
			color.Green("✓ Success: %d chunks created", len(chunks))
		}
		bar.Add(1)
	}

	color.Cyan("\nPhase 1 complete: %d successful, %d failed, %d chunks total",
		successful, failed, len(allChunks))
	if successful > 0 {
		log.Printf("Average chunks per successful URL: %.1f", float64(len(allChunks))/float64(successful))
	}

	if len(allChunks) == 0 {
		return errors.New("no content was successfully scraped")
	}

	color.Cyan("\nPhase 2: Building vector store")

	if err := p.Store.Build(ctx, allChunks); err != nil {
		return fmt.Errorf("failed to create vector store: %w", err)
	}

	if err := p.Store.Persist(p.Config.Store.Path); err != nil {
		// Queries still work against the in-memory index; only reuse across
		// runs is lost.
		color.Red("✗ Failed to save vector store: %v", err)
	} else {
		color.Green("✓ Vector store saved to %s", p.Config.Store.Path)
	}

	summary, err := output.NewSummary(allChunks)
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}
	summaryPath := filepath.Join(outDir, "rag_summary.json")
	if err := summary.Save(summaryPath); err != nil {
		return err
	}
	color.Green("✓ RAG summary saved to %s", summaryPath)

	combinedPath := filepath.Join(outDir, "all_chunks_combined.json")
	if _, err := output.SaveChunks(allChunks, combinedPath); err != nil {
		return err
	}
	color.Green("✓ Combined dataset saved to %s", combinedPath)

	color.Cyan("\nPhase 3: Testing retrieval")
	p.runDemoQueries(ctx)

	color.Green("\n✓ RAG system ready: %d documents indexed from %d sources",
		summary.TotalDocuments, summary.UniqueSources)
	return nil
}

func (p *Pipeline) runDemoQueries(ctx context.Context) {
	for _, query := range demoQueries {
		log.Printf("Testing query: %q", query)

		results := p.Store.Query(ctx, query, 2)
		if len(results) == 0 {
			log.Printf("  No results found for: %q", query)
			continue
		}
		for i, doc := range results {
			log.Printf("  [%d] %s", i+1, doc.Metadata[models.MetaTitle])
			log.Printf("      Source: %s", doc.Metadata[models.MetaSource])
			log.Printf("      Preview: %s...", preview(doc.PageContent, 150))
		}
	}
}

func preview(text string, n int) string {
	text = strings.ReplaceAll(text, "\n", " ")
	if len(text) > n {
		text = text[:n]
	}
	return text
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("urls"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}
