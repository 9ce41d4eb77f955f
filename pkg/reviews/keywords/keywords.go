package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/platoba/reviewmine/pkg/reviews/review"
	"github.com/platoba/reviewmine/pkg/reviews/sentiment"
)

const (
	maxKeywords    = 25
	perContextTake = 30 // top-N pulled from each polarity counter before merging
)

// Keyword contexts.
const (
	ContextPositive = "positive"
	ContextNegative = "negative"
	ContextMixed    = "mixed"
)

// Keyword is a content word used by reviewers, tagged with the sentiment
// context(s) it appeared in.
type Keyword struct {
	Keyword   string `json:"keyword"`
	Frequency int    `json:"frequency"`
	Context   string `json:"context"`
}

// Alphabetic or CJK runs of at least three characters.
var tokenPattern = regexp.MustCompile(`[a-zA-Z\x{4e00}-\x{9fff}]{3,}`)

// Extractor collects buyer vocabulary split by review polarity.
type Extractor struct {
	stopwords map[string]struct{}
}

// NewExtractor creates an extractor with the given stop-word list.
// A nil list falls back to the defaults.
func NewExtractor(stopwords []string) *Extractor {
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Extractor{stopwords: set}
}

// Extract returns the top buyer keywords sorted by frequency, capped at 25.
// Positive and negative reviews feed independent counters; neutral reviews
// contribute no tokens at all. A keyword seen in both counters gets its
// counts summed and its context set to "mixed".
func (e *Extractor) Extract(items []review.Item, sents []sentiment.Result) []Keyword {
	positive := newCounter()
	negative := newCounter()

	for i, item := range items {
		var target *counter
		switch {
		case sents[i].IsPositive():
			target = positive
		case sents[i].IsNegative():
			target = negative
		default:
			continue
		}
		for _, tok := range tokenPattern.FindAllString(strings.ToLower(item.Text), -1) {
			if _, stop := e.stopwords[tok]; stop {
				continue
			}
			target.add(tok)
		}
	}

	merged := make(map[string]*Keyword)
	var order []string

	for _, entry := range positive.mostCommon(perContextTake) {
		merged[entry.word] = &Keyword{Keyword: entry.word, Frequency: entry.count, Context: ContextPositive}
		order = append(order, entry.word)
	}
	for _, entry := range negative.mostCommon(perContextTake) {
		if kw, ok := merged[entry.word]; ok {
			kw.Frequency += entry.count
			kw.Context = ContextMixed
			continue
		}
		merged[entry.word] = &Keyword{Keyword: entry.word, Frequency: entry.count, Context: ContextNegative}
		order = append(order, entry.word)
	}

	result := make([]Keyword, 0, len(order))
	for _, word := range order {
		result = append(result, *merged[word])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Frequency > result[j].Frequency
	})
	if len(result) > maxKeywords {
		result = result[:maxKeywords]
	}
	return result
}

// counter is a frequency map that remembers first-seen order so ties
// resolve deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(word string) {
	if _, ok := c.counts[word]; !ok {
		c.order = append(c.order, word)
	}
	c.counts[word]++
}

type entry struct {
	word  string
	count int
}

func (c *counter) mostCommon(n int) []entry {
	entries := make([]entry, 0, len(c.order))
	for _, word := range c.order {
		entries = append(entries, entry{word: word, count: c.counts[word]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
