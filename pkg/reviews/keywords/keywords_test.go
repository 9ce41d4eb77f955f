package keywords

import (
	"testing"

	"github.com/platoba/reviewmine/pkg/reviews/review"
	"github.com/platoba/reviewmine/pkg/reviews/sentiment"
)

func TestExtractPositiveContext(t *testing.T) {
	items := []review.Item{{Text: "sturdy zipper excellent stitching"}}
	sents := []sentiment.Result{{Score: 0.6}}

	kws := NewExtractor(nil).Extract(items, sents)
	if len(kws) == 0 {
		t.Fatal("got no keywords")
	}
	for _, kw := range kws {
		if kw.Context != ContextPositive {
			t.Errorf("%q: Context = %q, want positive", kw.Keyword, kw.Context)
		}
	}
}

func TestExtractNeutralReviewsIgnored(t *testing.T) {
	items := []review.Item{{Text: "battery shipment warehouse"}}
	sents := []sentiment.Result{{Score: 0}}

	if kws := NewExtractor(nil).Extract(items, sents); len(kws) != 0 {
		t.Errorf("got %d keywords from a neutral review, want 0", len(kws))
	}
}

func TestExtractMixedContext(t *testing.T) {
	items := []review.Item{
		{Text: "zipper zipper sturdy"},
		{Text: "zipper broke"},
	}
	sents := []sentiment.Result{{Score: 0.5}, {Score: -0.5}}

	kws := NewExtractor(nil).Extract(items, sents)

	var zipper *Keyword
	for i := range kws {
		if kws[i].Keyword == "zipper" {
			zipper = &kws[i]
		}
	}
	if zipper == nil {
		t.Fatalf("keywords = %+v, want \"zipper\"", kws)
	}
	if zipper.Context != ContextMixed {
		t.Errorf("zipper Context = %q, want mixed", zipper.Context)
	}
	if zipper.Frequency != 3 {
		t.Errorf("zipper Frequency = %d, want summed 3", zipper.Frequency)
	}
}

func TestExtractDropsStopwordsAndShortTokens(t *testing.T) {
	items := []review.Item{{Text: "the zipper is ok"}}
	sents := []sentiment.Result{{Score: 0.5}}

	kws := NewExtractor(nil).Extract(items, sents)
	if len(kws) != 1 || kws[0].Keyword != "zipper" {
		t.Errorf("keywords = %+v, want only \"zipper\"", kws)
	}
}

func TestExtractSortedByFrequency(t *testing.T) {
	items := []review.Item{{Text: "zipper zipper zipper strap strap buckle"}}
	sents := []sentiment.Result{{Score: 0.5}}

	kws := NewExtractor(nil).Extract(items, sents)
	if len(kws) != 3 {
		t.Fatalf("got %d keywords, want 3", len(kws))
	}
	if kws[0].Keyword != "zipper" || kws[1].Keyword != "strap" || kws[2].Keyword != "buckle" {
		t.Errorf("order = %q %q %q", kws[0].Keyword, kws[1].Keyword, kws[2].Keyword)
	}
}

func TestExtractLowercasesTokens(t *testing.T) {
	items := []review.Item{{Text: "Zipper ZIPPER zipper"}}
	sents := []sentiment.Result{{Score: 0.5}}

	kws := NewExtractor(nil).Extract(items, sents)
	if len(kws) != 1 || kws[0].Frequency != 3 {
		t.Errorf("keywords = %+v, want single \"zipper\" with frequency 3", kws)
	}
}

func TestExtractChineseTokens(t *testing.T) {
	items := []review.Item{{Text: "做工很好 推荐购买"}}
	sents := []sentiment.Result{{Score: 0.8}}

	kws := NewExtractor(nil).Extract(items, sents)
	if len(kws) == 0 {
		t.Fatal("got no keywords from CJK text")
	}
	found := false
	for _, kw := range kws {
		if kw.Keyword == "做工很好" {
			found = true
		}
	}
	if !found {
		t.Errorf("keywords = %+v, want to contain the CJK run", kws)
	}
}

func TestCustomStopwords(t *testing.T) {
	items := []review.Item{{Text: "zipper strap"}}
	sents := []sentiment.Result{{Score: 0.5}}

	kws := NewExtractor([]string{"zipper"}).Extract(items, sents)
	if len(kws) != 1 || kws[0].Keyword != "strap" {
		t.Errorf("keywords = %+v, want only \"strap\"", kws)
	}
}

func TestExtractCapAtTwentyFive(t *testing.T) {
	// 30 distinct positive words and 30 distinct negative words feed the
	// merge; the final list still tops out at 25.
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango", "uniform",
		"victor", "whiskey", "xray", "yankee", "zulu", "amber", "bronze",
		"copper", "denim",
	}
	pos := ""
	neg := ""
	for i, w := range words {
		if i%2 == 0 {
			pos += w + "pos "
		} else {
			neg += w + "neg "
		}
		pos += w + "shared "
		neg += w + "shared "
	}
	items := []review.Item{{Text: pos}, {Text: neg}}
	sents := []sentiment.Result{{Score: 0.5}, {Score: -0.5}}

	kws := NewExtractor(nil).Extract(items, sents)
	if len(kws) != maxKeywords {
		t.Errorf("got %d keywords, want cap of %d", len(kws), maxKeywords)
	}
}
