// Package reviews mines a corpus of free-text customer reviews for
// structured, actionable listing insight: sentiment breakdown, recurring
// complaint categories, mined feature requests, buyer vocabulary, thematic
// phrases, a corpus-authenticity score, a month-bucketed sentiment trend,
// and prioritized listing suggestions.
//
// The pipeline is a pure function of the review list it is given: no
// network, disk, or database access, and no failure modes. Malformed input
// degrades locally (see the individual stage packages).
package reviews

import (
	"math"
	"regexp"
	"sync"

	"github.com/platoba/reviewmine/pkg/reviews/features"
	"github.com/platoba/reviewmine/pkg/reviews/keywords"
	"github.com/platoba/reviewmine/pkg/reviews/painpoints"
	"github.com/platoba/reviewmine/pkg/reviews/quality"
	"github.com/platoba/reviewmine/pkg/reviews/review"
	"github.com/platoba/reviewmine/pkg/reviews/sentiment"
	"github.com/platoba/reviewmine/pkg/reviews/suggest"
	"github.com/platoba/reviewmine/pkg/reviews/themes"
	"github.com/platoba/reviewmine/pkg/reviews/trend"
)

// Options configures an Analyzer. Zero values select the built-in lexicon,
// category table, pattern list, and stop-word set, with sequential
// classification.
type Options struct {
	Lexicon    *sentiment.Lexicon
	Categories []painpoints.Category
	Patterns   []*regexp.Regexp // feature-request patterns, see features.Compile
	Stopwords  []string

	// Workers fans per-review classification out across a worker pool.
	// Values <= 1 run sequentially. Aggregation stages always run after
	// all classifications finish, so output is identical either way.
	Workers int
}

// Analyzer runs the full review analysis pipeline over a fixed review set.
type Analyzer struct {
	items      []review.Item
	classifier *sentiment.Classifier
	pains      *painpoints.Extractor
	miner      *features.Miner
	vocab      *keywords.Extractor
	workers    int
}

// New creates an Analyzer over the given reviews.
func New(items []review.Item, opts Options) *Analyzer {
	return &Analyzer{
		items:      items,
		classifier: sentiment.NewClassifier(opts.Lexicon),
		pains:      painpoints.NewExtractor(opts.Categories),
		miner:      features.NewMiner(opts.Patterns),
		vocab:      keywords.NewExtractor(opts.Stopwords),
		workers:    opts.Workers,
	}
}

// Insights is the aggregate analysis result, produced fresh on every
// Analyze call and never persisted by this package.
type Insights struct {
	TotalReviews          int                    `json:"total_reviews"`
	AvgRating             float64                `json:"avg_rating"`
	RatingDistribution    map[int]int            `json:"rating_distribution"`
	SentimentDistribution map[string]int         `json:"sentiment_distribution"`
	PainPoints            []painpoints.PainPoint `json:"pain_points"`
	FeatureRequests       []features.Request     `json:"feature_requests"`
	BuyerKeywords         []keywords.Keyword     `json:"buyer_keywords"`
	TopPositiveThemes     []string               `json:"top_positive_themes"`
	TopNegativeThemes     []string               `json:"top_negative_themes"`
	ReviewQualityScore    float64                `json:"review_quality_score"`
	ListingSuggestions    []string               `json:"listing_suggestions"`
	SentimentTrend        []trend.Point          `json:"sentiment_trend"`
}

// SatisfactionRate is the share of positive reviews, as a 1-decimal percent.
func (in Insights) SatisfactionRate() float64 {
	if in.TotalReviews == 0 {
		return 0
	}
	return round1(float64(in.SentimentDistribution[sentiment.LabelPositive]) / float64(in.TotalReviews) * 100)
}

// ComplaintRate is the share of negative reviews, as a 1-decimal percent.
func (in Insights) ComplaintRate() float64 {
	if in.TotalReviews == 0 {
		return 0
	}
	return round1(float64(in.SentimentDistribution[sentiment.LabelNegative]) / float64(in.TotalReviews) * 100)
}

// HasQualityIssues reports whether a severe "quality" pain point exists.
func (in Insights) HasQualityIssues() bool {
	for _, pp := range in.PainPoints {
		if pp.Category == "quality" && pp.Severity >= 0.5 {
			return true
		}
	}
	return false
}

// Analyze runs all stages in fixed order and assembles the result.
// It is deterministic: repeated calls on an unchanged Analyzer return
// value-equal results. An empty review set yields a fully populated but
// zeroed Insights, not an error.
func (a *Analyzer) Analyze() Insights {
	insights := emptyInsights()
	insights.TotalReviews = len(a.items)
	if len(a.items) == 0 {
		return insights
	}

	sents := a.classifyAll()
	for _, s := range sents {
		insights.SentimentDistribution[s.Label]++
	}

	var ratingSum float64
	rated := 0
	for _, item := range a.items {
		if !item.HasRating() {
			continue
		}
		rated++
		ratingSum += *item.Rating
		insights.RatingDistribution[review.ClampBucket(*item.Rating)]++
	}
	if rated > 0 {
		insights.AvgRating = round2(ratingSum / float64(rated))
	}

	insights.PainPoints = a.pains.Extract(a.items, sents)
	insights.FeatureRequests = a.miner.Mine(a.items)
	insights.BuyerKeywords = a.vocab.Extract(a.items, sents)
	insights.TopPositiveThemes = themes.Extract(a.items, sents, true)
	insights.TopNegativeThemes = themes.Extract(a.items, sents, false)
	insights.ReviewQualityScore = quality.Score(a.items, sents)
	insights.SentimentTrend = trend.Aggregate(a.items, sents)

	insights.ListingSuggestions = suggest.Generate(suggest.Input{
		PainPoints:       insights.PainPoints,
		PositiveThemes:   insights.TopPositiveThemes,
		BuyerKeywords:    insights.BuyerKeywords,
		FeatureRequests:  insights.FeatureRequests,
		SatisfactionRate: insights.SatisfactionRate(),
		AvgRating:        insights.AvgRating,
	})

	return insights
}

// classifyAll maps every review to its sentiment result. With workers
// configured, classification fans out across a pool; results land in an
// index-addressed slice so output order never depends on scheduling.
func (a *Analyzer) classifyAll() []sentiment.Result {
	sents := make([]sentiment.Result, len(a.items))
	if a.workers <= 1 || len(a.items) < 2 {
		for i, item := range a.items {
			sents[i] = a.classifier.Classify(item.Text)
		}
		return sents
	}

	workers := a.workers
	if workers > len(a.items) {
		workers = len(a.items)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				sents[i] = a.classifier.Classify(a.items[i].Text)
			}
		}()
	}
	for i := range a.items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return sents
}

func emptyInsights() Insights {
	return Insights{
		RatingDistribution: make(map[int]int),
		SentimentDistribution: map[string]int{
			sentiment.LabelPositive: 0,
			sentiment.LabelNegative: 0,
			sentiment.LabelNeutral:  0,
		},
		PainPoints:         []painpoints.PainPoint{},
		FeatureRequests:    []features.Request{},
		BuyerKeywords:      []keywords.Keyword{},
		TopPositiveThemes:  []string{},
		TopNegativeThemes:  []string{},
		ListingSuggestions: []string{},
		SentimentTrend:     []trend.Point{},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
