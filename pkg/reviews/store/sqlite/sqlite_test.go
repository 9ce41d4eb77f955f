package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/platoba/reviewmine/pkg/reviews"
	"github.com/platoba/reviewmine/pkg/reviews/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	run := store.Run{
		ID:        store.NewRunID(),
		Product:   "backpack",
		CreatedAt: time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC),
		Insights: reviews.Insights{
			TotalReviews:          4,
			AvgRating:             3.75,
			RatingDistribution:    map[int]int{5: 2, 1: 2},
			SentimentDistribution: map[string]int{"positive": 2, "negative": 2, "neutral": 0},
			ListingSuggestions:    []string{"🟢 keep going"},
		},
	}
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Product != run.Product || !got.CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("got %+v, want %+v", got, run)
	}
	if got.Insights.TotalReviews != 4 || got.Insights.AvgRating != 3.75 {
		t.Errorf("insights = %+v", got.Insights)
	}
	if got.Insights.RatingDistribution[5] != 2 {
		t.Errorf("RatingDistribution = %v", got.Insights.RatingDistribution)
	}
}

func TestGetMissingRun(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.GetRun(context.Background(), "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := store.Run{
			ID:        store.NewRunID(),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := s.SaveRun(ctx, run); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.ListRuns(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i-1].CreatedAt.Before(runs[i].CreatedAt) {
			t.Errorf("runs not newest-first: %v before %v", runs[i-1].CreatedAt, runs[i].CreatedAt)
		}
	}
}

func TestListRunsLimit(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := s.SaveRun(ctx, store.Run{ID: store.NewRunID(), CreatedAt: time.Now().UTC()}); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, want 2", len(runs))
	}
}

func TestSaveRunOverwrites(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	run := store.Run{ID: "fixed", Product: "old", CreatedAt: time.Now().UTC()}
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatal(err)
	}
	run.Product = "new"
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetRun(ctx, "fixed")
	if err != nil {
		t.Fatal(err)
	}
	if got.Product != "new" {
		t.Errorf("Product = %q, want new", got.Product)
	}

	runs, err := s.ListRuns(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs after overwrite, want 1", len(runs))
	}
}

func TestReopenPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	run := store.Run{ID: store.NewRunID(), Product: "kettle", CreatedAt: time.Now().UTC()}
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	got, err := reopened.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Product != "kettle" {
		t.Errorf("Product = %q after reopen", got.Product)
	}
}
