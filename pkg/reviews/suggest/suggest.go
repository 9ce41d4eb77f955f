// Package suggest turns assembled review insight into listing-improvement
// recommendations.
package suggest

import (
	"fmt"
	"strings"

	"github.com/platoba/reviewmine/pkg/reviews/features"
	"github.com/platoba/reviewmine/pkg/reviews/keywords"
	"github.com/platoba/reviewmine/pkg/reviews/painpoints"
)

// Input carries the slice of assembled insight the generator reads.
type Input struct {
	PainPoints       []painpoints.PainPoint
	PositiveThemes   []string
	BuyerKeywords    []keywords.Keyword
	FeatureRequests  []features.Request
	SatisfactionRate float64
	AvgRating        float64
}

// Generate emits suggestions in a fixed order: pain points, positive
// themes, buyer language, top feature request, satisfaction branch, and a
// low-rating branch. The output is not re-sorted.
func Generate(in Input) []string {
	suggestions := make([]string, 0, 8)

	count := 0
	for _, pp := range in.PainPoints {
		if count == 3 {
			break
		}
		count++
		switch {
		case pp.Severity >= 0.5:
			suggestions = append(suggestions, fmt.Sprintf(
				"⚠️ Address '%s' concerns in your listing — %d buyers mentioned this issue. "+
					"Add clear specifications to set expectations.",
				pp.Category, pp.Frequency))
		case pp.Severity >= 0.3:
			suggestions = append(suggestions, fmt.Sprintf(
				"📝 Consider mentioning '%s' specs clearly — some buyers had concerns.",
				pp.Category))
		}
	}

	for i, theme := range in.PositiveThemes {
		if i == 3 {
			break
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"✅ Highlight '%s' in your listing — buyers frequently praise this.", theme))
	}

	var posKeywords []string
	for _, kw := range in.BuyerKeywords {
		if kw.Context == keywords.ContextPositive && kw.Frequency >= 3 {
			posKeywords = append(posKeywords, kw.Keyword)
		}
	}
	if len(posKeywords) > 0 {
		if len(posKeywords) > 5 {
			posKeywords = posKeywords[:5]
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"🔑 Use buyer language in your listing: %s", strings.Join(posKeywords, ", ")))
	}

	if len(in.FeatureRequests) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"💡 Buyers want: '%s' — consider adding this to product or listing.",
			in.FeatureRequests[0].Text))
	}

	if in.SatisfactionRate < 60 {
		suggestions = append(suggestions, fmt.Sprintf(
			"🔴 Low satisfaction (%.1f%%) — review product quality before investing in marketing.",
			in.SatisfactionRate))
	} else if in.SatisfactionRate >= 85 {
		suggestions = append(suggestions, fmt.Sprintf(
			"🟢 High satisfaction (%.1f%%) — leverage positive reviews in listing social proof.",
			in.SatisfactionRate))
	}

	if in.AvgRating < 3.5 {
		suggestions = append(suggestions,
			"📉 Below-average ratings — focus on quality improvements before scaling.")
	}

	return suggestions
}
