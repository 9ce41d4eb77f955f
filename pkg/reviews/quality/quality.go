// Package quality estimates whether a review corpus shows natural signs of
// genuineness versus manipulation.
package quality

import (
	"math"

	"github.com/platoba/reviewmine/pkg/reviews/review"
	"github.com/platoba/reviewmine/pkg/reviews/sentiment"
)

// Score averages up to four independent 0-1 sub-scores and scales the
// result to 0-100. Sub-scores that cannot be computed (no ratings, single
// review) are skipped rather than zeroed. An empty corpus scores 0; a
// non-empty corpus with no computable sub-score defaults to the unknown
// midpoint of 50.
func Score(items []review.Item, sents []sentiment.Result) float64 {
	if len(items) == 0 {
		return 0
	}

	var scores []float64

	// Natural corpora vary in review length; bot farms tend to be uniform.
	if len(items) > 1 {
		var sum float64
		for _, item := range items {
			sum += float64(len(item.Text))
		}
		mean := sum / float64(len(items))
		var variance float64
		for _, item := range items {
			d := float64(len(item.Text)) - mean
			variance += d * d
		}
		variance /= float64(len(items))
		scores = append(scores, math.Min(1.0, math.Sqrt(variance)/100))
	}

	verified := 0
	for _, item := range items {
		if item.Verified {
			verified++
		}
	}
	scores = append(scores, float64(verified)/float64(len(items)))

	// All-5-star or all-1-star corpora are suspicious.
	buckets := make(map[int]struct{})
	rated := 0
	for _, item := range items {
		if item.HasRating() {
			rated++
			buckets[int(*item.Rating)] = struct{}{}
		}
	}
	if rated > 0 {
		scores = append(scores, math.Min(1.0, float64(len(buckets))/4))
	}

	// Sentiment should roughly track the star rating.
	consistent := 0
	checked := 0
	for i, item := range items {
		if !item.HasRating() {
			continue
		}
		checked++
		rating := *item.Rating
		switch {
		case rating >= 4 && sents[i].IsPositive():
			consistent++
		case rating <= 2 && sents[i].IsNegative():
			consistent++
		case rating > 2 && rating < 4 && sents[i].Label == sentiment.LabelNeutral:
			consistent++
		}
	}
	if checked > 0 {
		scores = append(scores, float64(consistent)/float64(checked))
	}

	if len(scores) == 0 {
		return 50.0
	}

	var total float64
	for _, s := range scores {
		total += s
	}
	return math.Round(total/float64(len(scores))*1000) / 10
}
