package review

// Item is a single customer review as supplied by the caller.
// Items are never mutated by the analysis pipeline.
type Item struct {
	Text         string   `json:"text"`
	Rating       *float64 `json:"rating,omitempty"` // 1-5 stars, optional
	Date         string   `json:"date,omitempty"`   // ISO-8601, optional
	Verified     bool     `json:"verified"`
	HelpfulVotes int      `json:"helpful_votes"`
	Title        string   `json:"title,omitempty"`
	Author       string   `json:"author,omitempty"`
	Platform     string   `json:"platform,omitempty"`
}

// HasRating reports whether the review carries a star rating.
func (it Item) HasRating() bool {
	return it.Rating != nil
}

// RatingOr returns the star rating, or def when the review has none.
func (it Item) RatingOr(def float64) float64 {
	if it.Rating == nil {
		return def
	}
	return *it.Rating
}

// ClampBucket maps a rating to its 1..5 histogram bucket.
// Out-of-range ratings clamp to the nearest bound.
func ClampBucket(rating float64) int {
	bucket := int(rating)
	if bucket < 1 {
		bucket = 1
	}
	if bucket > 5 {
		bucket = 5
	}
	return bucket
}

// Rated returns a float pointer for literal ratings in callers and tests.
func Rated(r float64) *float64 {
	return &r
}
