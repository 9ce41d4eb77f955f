package features

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/platoba/reviewmine/pkg/reviews/review"
)

const (
	maxRequests  = 15
	maxKeyLength = 100 // dedup key truncation, in runes
	maxQuotes    = 2
)

// Request is a mined "buyer wants X" statement aggregated across reviews
// that phrase it the same way.
type Request struct {
	Text         string   `json:"text"`
	Frequency    int      `json:"frequency"`
	SampleQuotes []string `json:"sample_quotes"`
	AvgRating    float64  `json:"avg_rating"`
}

// DefaultPatterns returns the built-in request patterns, English first,
// then the Chinese equivalents. Patterns without a capture group use the
// whole match as the request text.
func DefaultPatterns() []*regexp.Regexp {
	patterns, err := Compile(defaultPatternExprs)
	if err != nil {
		// The built-in expressions are compile-checked by tests.
		panic(err)
	}
	return patterns
}

var defaultPatternExprs = []string{
	`(?i)wish (?:it|they|this) (?:had|came with|included|offered)(.*?)(?:\.|$)`,
	`(?i)would be (?:nice|great|better|perfect) (?:if|to have)(.*?)(?:\.|$)`,
	`(?i)(?:should|could) (?:have|include|come with|add)(.*?)(?:\.|$)`,
	`(?i)(?:needs?|need) (?:a |an |to have |more )(.*?)(?:\.|$)`,
	`(?i)(?:missing|lacks?|no) (.*?)(?:\.|$)`,
	`(?:希望|期望|建议|要是).{2,30}(?:就好了|更好|不错)`,
	`如果(?:有|能).{2,20}(?:就|更)`,
}

// Compile turns pattern expressions (e.g. loaded from a YAML pack) into
// ready-to-use regexps.
func Compile(exprs []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile feature pattern %q: %w", expr, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

// Miner extracts feature requests by applying an ordered pattern list to
// raw review text. Sentiment plays no role here: requests show up in
// glowing reviews too.
type Miner struct {
	patterns []*regexp.Regexp
}

// NewMiner creates a miner. A nil pattern list falls back to the defaults.
func NewMiner(patterns []*regexp.Regexp) *Miner {
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	return &Miner{patterns: patterns}
}

type hit struct {
	quote  string
	rating float64
}

// Mine returns the top requests sorted by frequency, capped at 15.
// Matches are deduplicated by their normalized text (trimmed, trailing
// punctuation stripped, truncated to 100 runes, lowercased). Overlapping
// matches from different patterns on the same sentence stay in separate
// buckets even when they read the same.
func (m *Miner) Mine(items []review.Item) []Request {
	buckets := make(map[string][]hit)
	var order []string

	for _, item := range items {
		rating := item.RatingOr(3.0)
		for _, re := range m.patterns {
			for _, match := range re.FindAllStringSubmatch(item.Text, -1) {
				captured := match[0]
				if len(match) > 1 {
					captured = match[1]
				}
				cleaned := truncateRunes(strings.TrimRight(strings.TrimSpace(captured), ".!?"), maxKeyLength)
				if len([]rune(cleaned)) < 5 {
					continue
				}
				key := strings.TrimSpace(strings.ToLower(cleaned))
				if _, ok := buckets[key]; !ok {
					order = append(order, key)
				}
				buckets[key] = append(buckets[key], hit{
					quote:  truncateRunes(item.Text, 100),
					rating: rating,
				})
			}
		}
	}

	requests := make([]Request, 0, len(order))
	for _, key := range order {
		hits := buckets[key]
		freq := len(hits)
		var ratingSum float64
		quotes := make([]string, 0, maxQuotes)
		for _, h := range hits {
			ratingSum += h.rating
			if len(quotes) < maxQuotes {
				quotes = append(quotes, h.quote)
			}
		}
		requests = append(requests, Request{
			Text:         key,
			Frequency:    freq,
			SampleQuotes: quotes,
			AvgRating:    round(ratingSum/float64(freq), 2),
		})
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].Frequency > requests[j].Frequency
	})
	if len(requests) > maxRequests {
		requests = requests[:maxRequests]
	}
	return requests
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
