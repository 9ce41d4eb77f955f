// Package source loads review records from JSON and JSONL files and
// normalizes them into review items. Records are dict-shaped: missing
// fields take zero values, and review text scraped with markup is reduced
// to plain text before analysis.
package source

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/platoba/reviewmine/pkg/reviews/review"
)

// Record is the wire shape of one review.
type Record struct {
	Text         string   `json:"text"`
	Rating       *float64 `json:"rating"`
	Date         string   `json:"date"`
	Verified     bool     `json:"verified"`
	HelpfulVotes int      `json:"helpful_votes"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Platform     string   `json:"platform"`
}

// Load reads reviews from a file holding either a JSON array of records or
// JSONL (one record per line). Malformed JSONL lines are skipped with a
// warning; a file yielding no valid records is an error.
func Load(path string) ([]review.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var records []Record
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal([]byte(trimmed), &records); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		for i, line := range strings.Split(trimmed, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			var rec Record
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				slog.Warn("skipping malformed review record",
					slog.String("file", path),
					slog.Int("line", i+1),
					slog.Any("error", err))
				continue
			}
			records = append(records, rec)
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no valid review records in %s", path)
	}

	items := make([]review.Item, 0, len(records))
	for _, rec := range records {
		items = append(items, rec.Item())
	}
	return items, nil
}

// Item converts a wire record into a review item, applying defaults and
// stripping markup from the text.
func (r Record) Item() review.Item {
	platform := r.Platform
	if platform == "" {
		platform = "unknown"
	}
	return review.Item{
		Text:         StripHTML(r.Text),
		Rating:       r.Rating,
		Date:         r.Date,
		Verified:     r.Verified,
		HelpfulVotes: r.HelpfulVotes,
		Title:        r.Title,
		Author:       r.Author,
		Platform:     platform,
	}
}

// StripHTML reduces scraped markup to its visible text. Text that does not
// parse as HTML is returned unchanged.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
