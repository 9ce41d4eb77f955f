// Package trend rolls per-review sentiment up into month buckets.
package trend

import (
	"math"
	"sort"
	"time"

	"github.com/platoba/reviewmine/pkg/reviews/review"
	"github.com/platoba/reviewmine/pkg/reviews/sentiment"
)

// Point is one month's sentiment rollup.
type Point struct {
	Month       string  `json:"month"` // YYYY-MM
	PositivePct float64 `json:"positive_pct"`
	NegativePct float64 `json:"negative_pct"`
	Count       int     `json:"count"`
}

// Accepted review date layouts, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
}

type bucket struct {
	positive int
	negative int
	count    int
}

// Aggregate buckets reviews by the YYYY-MM of their date, sorted
// chronologically. Reviews with a missing or unparseable date are dropped
// from the trend only; they still count in every other aggregation.
func Aggregate(items []review.Item, sents []sentiment.Result) []Point {
	monthly := make(map[string]*bucket)

	for i, item := range items {
		month, ok := monthKey(item.Date)
		if !ok {
			continue
		}
		b := monthly[month]
		if b == nil {
			b = &bucket{}
			monthly[month] = b
		}
		switch sents[i].Label {
		case sentiment.LabelPositive:
			b.positive++
		case sentiment.LabelNegative:
			b.negative++
		}
		b.count++
	}

	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)

	points := make([]Point, 0, len(months))
	for _, month := range months {
		b := monthly[month]
		total := float64(b.count)
		points = append(points, Point{
			Month:       month,
			PositivePct: round1(float64(b.positive) / total * 100),
			NegativePct: round1(float64(b.negative) / total * 100),
			Count:       b.count,
		})
	}
	return points
}

func monthKey(date string) (string, bool) {
	if date == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
