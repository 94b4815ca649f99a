// Copyright 2026 Poiesic Systems
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

	"github.com/poiesic/recallit"
	"github.com/poiesic/recallit/core"
	"github.com/poiesic/recallit/search"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "recallit",
		Usage: "Search conversations, commitments, and insights",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				Value:   "./recall_db",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run a query across all indexed content",
				ArgsUsage: "<query text>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum number of results to return",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "type",
						Usage: "Restrict results to one document type (conversation, commitment, insight, transcript)",
					},
					&cli.BoolFlag{
						Name:  "exact",
						Usage: "Disable fuzzy matching",
					},
					&cli.BoolFlag{
						Name:  "highlights",
						Usage: "Include match highlights in the output",
					},
				},
			},
			{
				Name:      "suggest",
				Usage:     "Show autocomplete suggestions for a partial query",
				ArgsUsage: "<partial query>",
				Action:    suggestCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max",
						Usage: "Maximum number of suggestions",
						Value: 10,
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show search statistics and index document counts",
				Action: statsCommand,
			},
			{
				Name:   "rebuild",
				Usage:  "Rebuild the in-memory search index from the store",
				Action: rebuildCommand,
			},
			{
				Name:   "clear-history",
				Usage:  "Delete all recorded search history",
				Action: clearHistoryCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openService opens the database and an initialized search service. The
// returned closer tears both down.
func openService(c *cli.Context) (*search.Service, func(), error) {
	db, err := recallit.NewDatabase(c.String("db"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	service, err := db.NewSearchService()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create search service: %w", err)
	}

	if err := service.Initialize(c.Context); err != nil {
		service.Close()
		db.Close()
		return nil, nil, fmt.Errorf("failed to initialize search service: %w", err)
	}

	closer := func() {
		service.Close()
		db.Close()
	}
	return service, closer, nil
}

func searchCommand(c *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("query text is required")
	}

	query := search.Query{
		Text: text,
		Options: search.Options{
			MaxResults:        c.Int("max-results"),
			FuzzyMatching:     !c.Bool("exact"),
			IncludeHighlights: c.Bool("highlights"),
		},
	}
	if typeName := c.String("type"); typeName != "" {
		docType := core.DocumentType(typeName)
		if err := core.ValidateDocumentType(docType); err != nil {
			return err
		}
		query.Filters.Types = []core.DocumentType{docType}
	}

	service, closer, err := openService(c)
	if err != nil {
		return err
	}
	defer closer()

	results, err := service.Search(context.Background(), query)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: [%s] %s (%.3f)\n", i+1, hit.Type, hit.Title, hit.RelevanceScore)
		if hit.ContentSnippet != "" {
			fmt.Printf("   %s\n", hit.ContentSnippet)
		}
		if len(hit.MatchedTerms) > 0 {
			fmt.Printf("   matched: %s\n", strings.Join(hit.MatchedTerms, ", "))
		}
		for _, highlight := range hit.Highlights {
			fmt.Printf("   highlight: %q [%d:%d]\n", highlight.Text, highlight.StartIndex, highlight.EndIndex)
		}
	}
	return nil
}

func suggestCommand(c *cli.Context) error {
	partial := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if partial == "" {
		return fmt.Errorf("partial query text is required")
	}

	service, closer, err := openService(c)
	if err != nil {
		return err
	}
	defer closer()

	suggestions, err := service.Suggestions(context.Background(), partial, c.Int("max"))
	if err != nil {
		return err
	}
	for _, suggestion := range suggestions {
		fmt.Println(suggestion)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	service, closer, err := openService(c)
	if err != nil {
		return err
	}
	defer closer()

	stats := service.Stats()
	fmt.Printf("Total searches:     %d\n", stats.TotalSearches)
	fmt.Printf("Average duration:   %.1fms\n", stats.AverageDurationMs)
	fmt.Printf("Degraded searches:  %d\n", stats.DegradedSearches)
	fmt.Printf("Last degraded:      %t\n", stats.LastSearchDegraded)
	fmt.Println("Indexed documents:")
	for docType, count := range stats.DocumentCounts {
		fmt.Printf("  %-14s %d\n", docType, count)
	}
	if len(stats.PopularQueries) > 0 {
		fmt.Println("Popular queries:")
		for _, query := range stats.PopularQueries {
			fmt.Printf("  %s\n", query)
		}
	}
	return nil
}

func rebuildCommand(c *cli.Context) error {
	service, closer, err := openService(c)
	if err != nil {
		return err
	}
	defer closer()

	// Initialize already built the first snapshot; rebuild once more so the
	// command reflects any store writes that raced the open.
	if err := service.RebuildIndex(context.Background()); err != nil {
		return err
	}
	for docType, count := range service.Stats().DocumentCounts {
		fmt.Printf("%-14s %d\n", docType, count)
	}
	return nil
}

func clearHistoryCommand(c *cli.Context) error {
	service, closer, err := openService(c)
	if err != nil {
		return err
	}
	defer closer()

	if err := service.ClearHistory(context.Background()); err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}
	fmt.Println("Search history cleared")
	return nil
}

func setupLogger(c *cli.Context) error {
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
