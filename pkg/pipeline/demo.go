package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hamza4344/Web-Scraper/internal/models"
)

// Demo loads a previously persisted vector store and serves an interactive
// read-query-print loop until the user types an exit keyword.
func (p *Pipeline) Demo(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := p.Store.Load(p.Config.Store.Path); err != nil {
		fmt.Fprintln(out, "Could not load vector store. Run the scraper first.")
		return err
	}

	color.Cyan("RAG search demo (type 'quit' to exit)")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nEnter search query (or 'quit' to exit): ")
		if !scanner.Scan() {
			break
		}

		query := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(query) {
		case "quit", "exit", "q":
			return nil
		case "":
			continue
		}

		results := p.Store.Query(ctx, query, 3)
		fmt.Fprintf(out, "\nFound %d results for: %q\n", len(results), query)

		for i, doc := range results {
			fmt.Fprintf(out, "\n[%d] %s\n", i+1, doc.Metadata[models.MetaTitle])
			fmt.Fprintf(out, "Source: %s\n", doc.Metadata[models.MetaSource])
			fmt.Fprintf(out, "Content: %s...\n", preview(doc.PageContent, 300))
			fmt.Fprintln(out, strings.Repeat("-", 50))
		}
	}

	return scanner.Err()
}
