// Command review-history lists and re-renders analysis runs persisted by
// reviewmine.
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
	"github.com/platoba/reviewmine/pkg/reviews/report"
	"github.com/platoba/reviewmine/pkg/reviews/store/sqlite"
)

func main() {
	_ = gotenv.Load()

	var (
		dbPath = flag.String("db", os.Getenv("REVIEWMINE_DB"), "SQLite run store path (required)")
		id     = flag.String("id", "", "Show one run by ID instead of listing")
		limit  = flag.Int("limit", 10, "Maximum runs to list")
		format = flag.String("format", "text", "Format for -id output: text, markdown, json")
	)
	flag.Parse()

	logging.Init(slog.LevelInfo)

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: review-history -db runs.db [-id RUN_ID]")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		slog.Error("open run store", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if *id != "" {
		run, err := db.GetRun(ctx, *id)
		if err != nil {
			slog.Error("get run", slog.String("id", *id), slog.Any("error", err))
			os.Exit(1)
		}
		switch *format {
		case "markdown":
			fmt.Println(report.Markdown(run.Insights))
		case "json":
			data, err := json.MarshalIndent(run, "", "  ")
			if err != nil {
				slog.Error("marshal run", slog.Any("error", err))
				os.Exit(1)
			}
			fmt.Println(string(data))
		default:
			fmt.Println(report.Render(run.Insights))
		}
		return
	}

	runs, err := db.ListRuns(ctx, *limit)
	if err != nil {
		slog.Error("list runs", slog.Any("error", err))
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return
	}

	for _, run := range runs {
		product := run.Product
		if product == "" {
			product = "(unlabeled)"
		}
		fmt.Printf("%s  %s  %-24s  reviews=%d  satisfaction=%v%%\n",
			run.ID,
			run.CreatedAt.Format(time.RFC3339),
			product,
			run.Insights.TotalReviews,
			run.Insights.SatisfactionRate())
	}
}
