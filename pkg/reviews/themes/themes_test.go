package themes

import (
	"fmt"
	"strings"
	"testing"

	"github.com/platoba/reviewmine/pkg/reviews/review"
	"github.com/platoba/reviewmine/pkg/reviews/sentiment"
)

func TestExtractRecurringPositiveBigram(t *testing.T) {
	items := []review.Item{
		{Text: "battery life rocks"},
		{Text: "battery life impressed me"},
	}
	sents := []sentiment.Result{{Score: 0.5}, {Score: 0.5}}

	themes := Extract(items, sents, true)
	found := false
	for _, th := range themes {
		if th == "battery life" {
			found = true
		}
	}
	if !found {
		t.Errorf("themes = %v, want to contain \"battery life\"", themes)
	}
}

func TestExtractPolarityFilter(t *testing.T) {
	items := []review.Item{
		{Text: "battery life rocks"},
		{Text: "battery life rocks"},
	}
	sents := []sentiment.Result{{Score: 0.5}, {Score: 0.5}}

	if themes := Extract(items, sents, false); len(themes) != 0 {
		t.Errorf("negative themes from positive-only reviews = %v, want none", themes)
	}
}

func TestExtractNeutralExcludedFromBothPolarities(t *testing.T) {
	items := []review.Item{
		{Text: "battery life fine"},
		{Text: "battery life fine"},
	}
	sents := []sentiment.Result{{Score: 0}, {Score: 0}}

	if themes := Extract(items, sents, true); len(themes) != 0 {
		t.Errorf("positive themes = %v, want none for neutral reviews", themes)
	}
	if themes := Extract(items, sents, false); len(themes) != 0 {
		t.Errorf("negative themes = %v, want none for neutral reviews", themes)
	}
}

func TestExtractSingletonBigramsExcluded(t *testing.T) {
	items := []review.Item{{Text: "battery life rocks"}}
	sents := []sentiment.Result{{Score: 0.5}}

	if themes := Extract(items, sents, true); len(themes) != 0 {
		t.Errorf("themes = %v, want none for once-seen bigrams", themes)
	}
}

func TestExtractShortBigramsExcluded(t *testing.T) {
	// "so far" is six runes with the space, under the seven-rune floor.
	items := []review.Item{
		{Text: "so far"},
		{Text: "so far"},
		{Text: "so far"},
	}
	sents := []sentiment.Result{{Score: -0.5}, {Score: -0.5}, {Score: -0.5}}

	if themes := Extract(items, sents, false); len(themes) != 0 {
		t.Errorf("themes = %v, want short bigrams filtered", themes)
	}
}

func TestExtractNegativeThemes(t *testing.T) {
	items := []review.Item{
		{Text: "cheap plastic everywhere"},
		{Text: "cheap plastic again"},
	}
	sents := []sentiment.Result{{Score: -0.5}, {Score: -0.5}}

	themes := Extract(items, sents, false)
	found := false
	for _, th := range themes {
		if th == "cheap plastic" {
			found = true
		}
	}
	if !found {
		t.Errorf("themes = %v, want to contain \"cheap plastic\"", themes)
	}
}

func TestExtractCapAtEight(t *testing.T) {
	// Twelve distinct recurring bigrams; only eight survive.
	var items []review.Item
	var sents []sentiment.Result
	for i := 0; i < 12; i++ {
		suffix := string(rune('a' + i))
		text := fmt.Sprintf("material%s finish%s", suffix, suffix)
		items = append(items, review.Item{Text: text}, review.Item{Text: text})
		sents = append(sents, sentiment.Result{Score: 0.5}, sentiment.Result{Score: 0.5})
	}

	themes := Extract(items, sents, true)
	if len(themes) != 8 {
		t.Errorf("got %d themes, want cap of 8", len(themes))
	}
}

func TestExtractLowercased(t *testing.T) {
	items := []review.Item{
		{Text: "Battery Life rocks"},
		{Text: "BATTERY LIFE rocks"},
	}
	sents := []sentiment.Result{{Score: 0.5}, {Score: 0.5}}

	for _, th := range Extract(items, sents, true) {
		if th != strings.ToLower(th) {
			t.Errorf("theme %q not lowercased", th)
		}
	}
}
