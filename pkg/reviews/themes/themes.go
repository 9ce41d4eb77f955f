// Package themes extracts recurring two-word phrases characteristic of one
// sentiment polarity across a review set.
package themes

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/platoba/reviewmine/pkg/reviews/review"
	"github.com/platoba/reviewmine/pkg/reviews/sentiment"
)

const (
	maxThemes      = 8
	minCount       = 2
	minPhraseChars = 7  // bigrams shorter than this are noise ("so far", "it is")
	scanLimit      = 20 // how many top bigrams to consider
)

var tokenPattern = regexp.MustCompile(`[a-zA-Z\x{4e00}-\x{9fff}]+`)

// Extract builds adjacent-token bigrams from reviews matching the requested
// polarity and returns up to eight that recur at least twice, most frequent
// first.
func Extract(items []review.Item, sents []sentiment.Result, positive bool) []string {
	counts := make(map[string]int)
	var order []string

	for i, item := range items {
		if positive && sents[i].Score <= 0.1 {
			continue
		}
		if !positive && sents[i].Score >= -0.1 {
			continue
		}

		tokens := tokenPattern.FindAllString(strings.ToLower(item.Text), -1)
		for j := 0; j+1 < len(tokens); j++ {
			bigram := tokens[j] + " " + tokens[j+1]
			if utf8.RuneCountInString(bigram) < minPhraseChars {
				continue
			}
			if _, ok := counts[bigram]; !ok {
				order = append(order, bigram)
			}
			counts[bigram]++
		}
	}

	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if len(ranked) > scanLimit {
		ranked = ranked[:scanLimit]
	}

	themes := make([]string, 0, maxThemes)
	for _, bigram := range ranked {
		if counts[bigram] >= minCount {
			themes = append(themes, bigram)
		}
		if len(themes) >= maxThemes {
			break
		}
	}
	return themes
}
