// Command reviewmine analyzes a file of product reviews and prints the
// resulting insight report. Runs can optionally be persisted to a SQLite
// database for later inspection with review-history.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/subosito/gotenv"

	"github.com/platoba/reviewmine/internal/logging"
	"github.com/platoba/reviewmine/internal/source"
	"github.com/platoba/reviewmine/pkg/reviews"
	"github.com/platoba/reviewmine/pkg/reviews/config"
	"github.com/platoba/reviewmine/pkg/reviews/report"
	"github.com/platoba/reviewmine/pkg/reviews/store"
	"github.com/platoba/reviewmine/pkg/reviews/store/sqlite"
)

func main() {
	_ = gotenv.Load() // no .env file is fine, OS environment still applies

	var (
		input      = flag.String("input", "", "Path to reviews file, JSON array or JSONL (required)")
		product    = flag.String("product", "", "Product label attached to persisted runs")
		format     = flag.String("format", "text", "Output format: text, markdown, html, json")
		lexicon    = flag.String("lexicon", os.Getenv("REVIEWMINE_LEXICON"), "Optional lexicon YAML")
		categories = flag.String("categories", os.Getenv("REVIEWMINE_CATEGORIES"), "Optional pain-point categories YAML")
		patterns   = flag.String("patterns", os.Getenv("REVIEWMINE_PATTERNS"), "Optional feature-request patterns YAML")
		stopwords  = flag.String("stopwords", os.Getenv("REVIEWMINE_STOPWORDS"), "Optional stop-word YAML")
		workers    = flag.Int("workers", 1, "Sentiment classification workers")
		dbPath     = flag.String("db", os.Getenv("REVIEWMINE_DB"), "Optional SQLite path to persist the run")
		verbose    = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.Init(level)

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: reviewmine -input reviews.jsonl [-format text|markdown|html|json]")
		os.Exit(2)
	}

	loader := config.Loader{
		LexiconPath:    *lexicon,
		CategoriesPath: *categories,
		PatternsPath:   *patterns,
		StopwordsPath:  *stopwords,
		Workers:        *workers,
	}
	opts, err := loader.Load()
	if err != nil {
		slog.Error("load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	items, err := source.Load(*input)
	if err != nil {
		slog.Error("load reviews", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Debug("reviews loaded", slog.Int("count", len(items)))

	insights := reviews.New(items, opts).Analyze()

	out, err := render(insights, *format)
	if err != nil {
		slog.Error("render insights", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(out)

	if *dbPath != "" {
		if err := persist(*dbPath, *product, insights); err != nil {
			slog.Error("persist run", slog.Any("error", err))
			os.Exit(1)
		}
	}
}

func render(in reviews.Insights, format string) (string, error) {
	switch format {
	case "text":
		return report.Render(in), nil
	case "markdown":
		return report.Markdown(in), nil
	case "html":
		return string(report.HTML(in)), nil
	case "json":
		data, err := json.MarshalIndent(in, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func persist(dbPath, product string, in reviews.Insights) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	run := store.Run{
		ID:        store.NewRunID(),
		Product:   product,
		CreatedAt: time.Now().UTC(),
		Insights:  in,
	}
	if err := db.SaveRun(ctx, run); err != nil {
		return err
	}
	slog.Info("run persisted", slog.String("id", run.ID), slog.String("db", dbPath))
	return nil
}
