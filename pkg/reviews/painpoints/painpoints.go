package painpoints

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/platoba/reviewmine/pkg/reviews/review"
	"github.com/platoba/reviewmine/pkg/reviews/sentiment"
)

// contextWindow is the number of characters kept around a phrase match
// when recording a sample quote.
const contextWindow = 40

// Category pairs a complaint category with the phrases that signal it.
// Order matters: extraction scans categories in declaration order and
// stops at the first phrase match per review.
type Category struct {
	Name    string   `yaml:"name" json:"name"`
	Phrases []string `yaml:"phrases" json:"phrases"`
}

// PainPoint is a recurring complaint category aggregated across reviews.
type PainPoint struct {
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Frequency    int      `json:"frequency"`
	SampleQuotes []string `json:"sample_quotes"`
	AvgRating    float64  `json:"avg_rating"`
	Severity     float64  `json:"severity"` // 0-1, frequency and rating impact combined
}

// SeverityLabel buckets the severity score for display.
func (p PainPoint) SeverityLabel() string {
	if p.Severity >= 0.7 {
		return "critical"
	}
	if p.Severity >= 0.4 {
		return "moderate"
	}
	return "minor"
}

// Extractor mines category-tagged complaints from non-positive reviews.
type Extractor struct {
	categories []Category
}

// NewExtractor creates an extractor over an ordered category table.
// A nil table falls back to the built-in categories.
func NewExtractor(categories []Category) *Extractor {
	if categories == nil {
		categories = DefaultCategories()
	}
	return &Extractor{categories: categories}
}

type hit struct {
	quote  string
	rating float64
}

// Extract scans every review whose sentiment score is not clearly positive
// (score <= 0.3) against the category table. The first matching phrase wins:
// a review contributes to at most one category even when it textually
// matches several. Results are sorted by severity, highest first.
func (e *Extractor) Extract(items []review.Item, sents []sentiment.Result) []PainPoint {
	hits := make(map[string][]hit, len(e.categories))

	for i, item := range items {
		if sents[i].Score > 0.3 {
			continue
		}

		textLower := strings.ToLower(item.Text)
		rating := item.RatingOr(3.0)

		for _, cat := range e.categories {
			matched := false
			for _, phrase := range cat.Phrases {
				idx := strings.Index(textLower, phrase)
				if idx < 0 {
					continue
				}
				hits[cat.Name] = append(hits[cat.Name], hit{
					quote:  quoteAround(item.Text, idx, len(phrase)),
					rating: rating,
				})
				matched = true
				break
			}
			if matched {
				break
			}
		}
	}

	total := len(items)
	if total == 0 {
		total = 1
	}

	points := make([]PainPoint, 0, len(hits))
	for _, cat := range e.categories {
		catHits := hits[cat.Name]
		if len(catHits) == 0 {
			continue
		}

		freq := len(catHits)
		var ratingSum float64
		for _, h := range catHits {
			ratingSum += h.rating
		}
		avgRating := ratingSum / float64(freq)

		// Frequency saturates once a third of the corpus mentions the
		// category; the rating term scales 5 stars to zero penalty and
		// 1 star to full penalty.
		severity := math.Min(1.0, float64(freq)/float64(total)*3) * (1 - (avgRating-1)/4)

		samples := make([]string, 0, 3)
		for _, h := range catHits {
			samples = append(samples, h.quote)
			if len(samples) == 3 {
				break
			}
		}

		points = append(points, PainPoint{
			Category:     cat.Name,
			Description:  fmt.Sprintf("%s issues (%d mentions)", titleCase(cat.Name), freq),
			Frequency:    freq,
			SampleQuotes: samples,
			AvgRating:    round(avgRating, 2),
			Severity:     round(severity, 3),
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Severity > points[j].Severity
	})
	return points
}

// quoteAround slices a context window of up to contextWindow characters on
// each side of a phrase match. Offsets come from the lowercased text but
// index the original; both share byte offsets for the characters the phrase
// tables contain. The window is measured in runes so CJK text never gets
// cut mid-character.
func quoteAround(text string, idx, phraseLen int) string {
	start := idx
	for n := 0; n < contextWindow && start > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(text[:start])
		start -= size
	}
	end := idx + phraseLen
	for n := 0; n < contextWindow && end < len(text); n++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	return strings.TrimSpace(text[start:end])
}

func titleCase(category string) string {
	words := strings.Fields(strings.ReplaceAll(category, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
