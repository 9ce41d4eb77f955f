package config

import (
	"fmt"

	"github.com/platoba/reviewmine/pkg/reviews"
)

// Loader assembles analyzer options from configuration file paths.
// Empty paths select the built-in defaults for that artifact.
type Loader struct {
	LexiconPath    string
	CategoriesPath string
	PatternsPath   string
	StopwordsPath  string
	Workers        int
}

// Load reads whichever files are configured and returns ready-to-use
// analyzer options.
func (l *Loader) Load() (reviews.Options, error) {
	opts := reviews.Options{Workers: l.Workers}

	if l.LexiconPath != "" {
		lex, err := LoadLexicon(l.LexiconPath)
		if err != nil {
			return reviews.Options{}, fmt.Errorf("load lexicon: %w", err)
		}
		opts.Lexicon = lex
	}

	if l.CategoriesPath != "" {
		cats, err := LoadCategories(l.CategoriesPath)
		if err != nil {
			return reviews.Options{}, fmt.Errorf("load categories: %w", err)
		}
		opts.Categories = cats
	}

	if l.PatternsPath != "" {
		patterns, err := LoadPatterns(l.PatternsPath)
		if err != nil {
			return reviews.Options{}, fmt.Errorf("load patterns: %w", err)
		}
		opts.Patterns = patterns
	}

	if l.StopwordsPath != "" {
		stops, err := LoadStopwords(l.StopwordsPath)
		if err != nil {
			return reviews.Options{}, fmt.Errorf("load stopwords: %w", err)
		}
		opts.Stopwords = stops
	}

	return opts, nil
}
