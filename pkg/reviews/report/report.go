// Package report renders ReviewInsights for humans: a fixed-order text
// report, a markdown variant, and HTML for bot or web delivery.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/platoba/reviewmine/pkg/reviews"
	"github.com/platoba/reviewmine/pkg/reviews/keywords"
)

// Render formats insights as a plain-text report with a fixed section
// order: header, rating histogram, sentiment distribution, pain points,
// feature requests, buyer keywords, listing suggestions.
func Render(in reviews.Insights) string {
	var lines []string
	rule := strings.Repeat("=", 60)

	lines = append(lines,
		rule,
		"📊 REVIEW ANALYSIS REPORT",
		rule,
		"",
		fmt.Sprintf("Total Reviews: %d", in.TotalReviews),
		fmt.Sprintf("Average Rating: %s (%v/5.0)", strings.Repeat("⭐", starCount(in.AvgRating)), in.AvgRating),
		fmt.Sprintf("Satisfaction Rate: %.1f%%", in.SatisfactionRate()),
		fmt.Sprintf("Complaint Rate: %.1f%%", in.ComplaintRate()),
		fmt.Sprintf("Review Quality Score: %v/100", in.ReviewQualityScore),
		"",
	)

	lines = append(lines, "📈 Rating Distribution:")
	for stars := 5; stars >= 1; stars-- {
		count := in.RatingDistribution[stars]
		bar := strings.Repeat("█", count*2)
		lines = append(lines, fmt.Sprintf("  %s: %s (%d)", strings.Repeat("⭐", stars), bar, count))
	}
	lines = append(lines, "")

	lines = append(lines, "😊 Sentiment Distribution:")
	total := in.TotalReviews
	if total == 0 {
		total = 1
	}
	for _, label := range []string{"positive", "negative", "neutral"} {
		count := in.SentimentDistribution[label]
		pct := math.Round(float64(count)/float64(total)*1000) / 10
		lines = append(lines, fmt.Sprintf("  %s: %d (%v%%)", label, count, pct))
	}
	lines = append(lines, "")

	if len(in.PainPoints) > 0 {
		lines = append(lines, "🔴 Pain Points:")
		for _, pp := range in.PainPoints {
			lines = append(lines, fmt.Sprintf("  %s %s [severity: %s]",
				severityIcon(pp.Severity), pp.Description, pp.SeverityLabel()))
			for i, q := range pp.SampleQuotes {
				if i == 2 {
					break
				}
				lines = append(lines, fmt.Sprintf("    %q", q))
			}
		}
		lines = append(lines, "")
	}

	if len(in.FeatureRequests) > 0 {
		lines = append(lines, "💡 Feature Requests:")
		for i, fr := range in.FeatureRequests {
			if i == 5 {
				break
			}
			lines = append(lines, fmt.Sprintf("  • %s (×%d)", fr.Text, fr.Frequency))
		}
		lines = append(lines, "")
	}

	if len(in.BuyerKeywords) > 0 {
		lines = append(lines, "🔑 Buyer Keywords:")
		for i, kw := range in.BuyerKeywords {
			if i == 10 {
				break
			}
			lines = append(lines, fmt.Sprintf("  %s %s (×%d)", contextIcon(kw.Context), kw.Keyword, kw.Frequency))
		}
		lines = append(lines, "")
	}

	if len(in.ListingSuggestions) > 0 {
		lines = append(lines, "📋 Listing Optimization Suggestions:")
		for _, s := range in.ListingSuggestions {
			lines = append(lines, "  "+s)
		}
		lines = append(lines, "")
	}

	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}

// Markdown renders the same sections as Render in markdown.
func Markdown(in reviews.Insights) string {
	var b strings.Builder

	b.WriteString("# Review Analysis Report\n\n")
	fmt.Fprintf(&b, "- **Total reviews:** %d\n", in.TotalReviews)
	fmt.Fprintf(&b, "- **Average rating:** %v/5.0\n", in.AvgRating)
	fmt.Fprintf(&b, "- **Satisfaction rate:** %.1f%%\n", in.SatisfactionRate())
	fmt.Fprintf(&b, "- **Complaint rate:** %.1f%%\n", in.ComplaintRate())
	fmt.Fprintf(&b, "- **Review quality score:** %v/100\n\n", in.ReviewQualityScore)

	b.WriteString("## Rating Distribution\n\n")
	for stars := 5; stars >= 1; stars-- {
		fmt.Fprintf(&b, "- %d★: %d\n", stars, in.RatingDistribution[stars])
	}
	b.WriteString("\n## Sentiment\n\n")
	for _, label := range []string{"positive", "negative", "neutral"} {
		fmt.Fprintf(&b, "- %s: %d\n", label, in.SentimentDistribution[label])
	}

	if len(in.PainPoints) > 0 {
		b.WriteString("\n## Pain Points\n\n")
		for _, pp := range in.PainPoints {
			fmt.Fprintf(&b, "- **%s** (severity %v, %s)\n", pp.Description, pp.Severity, pp.SeverityLabel())
		}
	}

	if len(in.FeatureRequests) > 0 {
		b.WriteString("\n## Feature Requests\n\n")
		for _, fr := range in.FeatureRequests {
			fmt.Fprintf(&b, "- %s (×%d)\n", fr.Text, fr.Frequency)
		}
	}

	if len(in.BuyerKeywords) > 0 {
		b.WriteString("\n## Buyer Keywords\n\n")
		for i, kw := range in.BuyerKeywords {
			if i == 10 {
				break
			}
			fmt.Fprintf(&b, "- %s (×%d, %s)\n", kw.Keyword, kw.Frequency, kw.Context)
		}
	}

	if len(in.ListingSuggestions) > 0 {
		b.WriteString("\n## Listing Optimization Suggestions\n\n")
		for _, s := range in.ListingSuggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	return b.String()
}

// HTML renders the markdown report to HTML.
func HTML(in reviews.Insights) []byte {
	return blackfriday.Run([]byte(Markdown(in)))
}

// starCount clamps the average rating into a 0..5 star count. Ratings
// arrive unvalidated, so the average can sit outside the scale.
func starCount(avg float64) int {
	stars := int(avg)
	if stars < 0 {
		return 0
	}
	if stars > 5 {
		return 5
	}
	return stars
}

func severityIcon(severity float64) string {
	if severity >= 0.7 {
		return "🔴"
	}
	if severity >= 0.4 {
		return "🟡"
	}
	return "🟢"
}

func contextIcon(context string) string {
	switch context {
	case keywords.ContextPositive:
		return "🟢"
	case keywords.ContextNegative:
		return "🔴"
	default:
		return "🟡"
	}
}
