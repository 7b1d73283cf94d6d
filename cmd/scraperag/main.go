package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/hamza4344/Web-Scraper/pkg/config"
	"github.com/hamza4344/Web-Scraper/pkg/pipeline"
)

func main() {
	// Missing .env is fine; environment variables may be set directly
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to config file (default: config.yaml)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		color.Red("✗ Failed to load configuration: %v", err)
		os.Exit(1)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		color.Red("✗ Invalid configuration:")
		for _, e := range errs {
			color.Red("  - %s: %s", e.Field, e.Message)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := pipeline.New(cfg)
	if err != nil {
		color.Red("✗ Failed to initialize pipeline: %v", err)
		os.Exit(1)
	}

	if flag.Arg(0) == "demo" {
		if err := p.Demo(ctx, os.Stdin, os.Stdout); err != nil {
			os.Exit(1)
		}
		return
	}

	if err := p.Run(ctx); err != nil {
		color.Red("✗ Pipeline failed: %v", err)
		os.Exit(1)
	}

	color.Green("\n✓ All done. Processed content is in %s", cfg.Output.Dir)
	fmt.Println("Run with the \"demo\" argument to query the vector store interactively.")
}
