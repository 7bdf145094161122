// Copyright 2025 Pantry Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/pantrylabs/foodsearch"
	"github.com/pantrylabs/foodsearch/report"
	"github.com/pantrylabs/foodsearch/search"
)

func main() {
	app := &cli.App{
		Name:  "foodsearch",
		Usage: "Product catalog search across text, fuzzy and semantic backends",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: "Load environment variables from this file",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search the product catalog",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Report file path (defaults to a timestamped name)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum text search candidates",
						Value: search.DefaultLexicalLimit,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Semantic matches to request",
						Value: search.DefaultTopK,
					},
					&cli.BoolFlag{
						Name:  "no-save",
						Usage: "Print the results without writing a report file",
					},
				},
			},
			{
				Name:   "load",
				Usage:  "Load a product export into the catalog",
				Action: loadCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to the products JSON array",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "skip-vectors",
						Usage: "Skip writing category vectors to the semantic index",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(c.Args().First())
	if query == "" {
		return fmt.Errorf("search query cannot be empty")
	}

	ctx := context.Background()
	catalog, err := foodsearch.NewCatalog(ctx, foodsearch.FromEnv())
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close(ctx)

	searcher, err := catalog.NewSearcher(
		search.WithLexicalLimit(c.Int("limit")),
		search.WithTopK(c.Int("top-k")),
	)
	if err != nil {
		return err
	}

	result, err := searcher.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if !c.Bool("no-save") {
		saved, err := report.Save(result, c.String("output"))
		if err != nil {
			return err
		}
		fmt.Printf("Results saved to: %s\n", saved)
	}
	report.Print(os.Stdout, result)
	return nil
}

func loadCommand(c *cli.Context) error {
	input, err := os.Open(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer input.Close()

	ctx := context.Background()
	catalog, err := foodsearch.NewCatalog(ctx, foodsearch.FromEnv())
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close(ctx)

	pipeline, err := catalog.NewIngestionPipeline(c.Bool("skip-vectors"))
	if err != nil {
		return err
	}
	defer pipeline.Release()

	stats, err := pipeline.Run(ctx, input)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("Loaded %d of %d records (%d skipped), %d categories, %d vectors\n",
		stats.Inserted, stats.Decoded, stats.Skipped, stats.Categories, stats.Vectors)
	return nil
}

func setup(c *cli.Context) error {
	if envFile := c.String("env"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
