package sentiment

import (
	"math"
	"regexp"
	"strings"
)

// Polarity labels produced by the classifier.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Result is the per-review polarity outcome. One Result is computed per
// review and consumed by every aggregation stage downstream.
type Result struct {
	Score         float64  `json:"score"` // -1.0 to 1.0
	Label         string   `json:"label"`
	PositiveWords []string `json:"positive_words"`
	NegativeWords []string `json:"negative_words"`
	Confidence    float64  `json:"confidence"`
}

// IsPositive reports whether the score clears the positive threshold.
func (r Result) IsPositive() bool {
	return r.Score > 0.1
}

// IsNegative reports whether the score clears the negative threshold.
func (r Result) IsNegative() bool {
	return r.Score < -0.1
}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Classifier scores review text against an injected lexicon.
// Classify is a pure function: no I/O, no failure modes.
type Classifier struct {
	lex *Lexicon
}

// NewClassifier creates a classifier. A nil lexicon falls back to the default.
func NewClassifier(lex *Lexicon) *Classifier {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Classifier{lex: lex}
}

// Classify tokenizes the text and scores it word by word. A lexicon hit
// preceded by a negator flips polarity (recorded with a "not " prefix);
// a hit preceded by an intensifier counts twice. With no sentiment words
// at all the result is neutral with low confidence.
func (c *Classifier) Classify(text string) Result {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	var posFound, negFound []string
	for i, word := range words {
		negated := false
		intensified := false
		if i > 0 {
			if _, ok := c.lex.negators[words[i-1]]; ok {
				negated = true
			}
			if _, ok := c.lex.intensifiers[words[i-1]]; ok {
				intensified = true
			}
		}

		if _, ok := c.lex.positive[word]; ok {
			if negated {
				negFound = append(negFound, "not "+word)
			} else if intensified {
				posFound = append(posFound, word, word)
			} else {
				posFound = append(posFound, word)
			}
			continue
		}
		if _, ok := c.lex.negative[word]; ok {
			if negated {
				posFound = append(posFound, "not "+word)
			} else if intensified {
				negFound = append(negFound, word, word)
			} else {
				negFound = append(negFound, word)
			}
		}
	}

	posCount := len(posFound)
	negCount := len(negFound)
	total := posCount + negCount
	if total == 0 {
		return Result{
			Score:         0,
			Label:         LabelNeutral,
			PositiveWords: []string{},
			NegativeWords: []string{},
			Confidence:    0.2,
		}
	}

	score := float64(posCount-negCount) / float64(total)
	confidence := math.Min(1.0, float64(total)/5) // more matched words, higher confidence

	label := LabelNeutral
	if score > 0.1 {
		label = LabelPositive
	} else if score < -0.1 {
		label = LabelNegative
	}

	return Result{
		Score:         round(score, 3),
		Label:         label,
		PositiveWords: uniqueWords(posFound),
		NegativeWords: uniqueWords(negFound),
		Confidence:    round(confidence, 2),
	}
}

// uniqueWords deduplicates while keeping first-seen order so that
// repeated runs over the same text yield identical results.
func uniqueWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
