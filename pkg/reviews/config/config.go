// Package config loads the injectable analysis artifacts — sentiment
// lexicon, pain-point category table, feature-request patterns, and
// stop-word list — from YAML files, enabling per-locale swaps without
// global mutable state.
package config

import (
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/platoba/reviewmine/pkg/reviews/features"
	"github.com/platoba/reviewmine/pkg/reviews/painpoints"
	"github.com/platoba/reviewmine/pkg/reviews/sentiment"
)

// LexiconFile is the YAML shape of a sentiment lexicon pack.
//
// Expected format:
//
//	positive: [love, amazing, ...]
//	negative: [terrible, awful, ...]
//	intensifiers: [very, extremely, ...]
//	negators: [not, never, ...]
type LexiconFile struct {
	Positive     []string `yaml:"positive"`
	Negative     []string `yaml:"negative"`
	Intensifiers []string `yaml:"intensifiers"`
	Negators     []string `yaml:"negators"`
}

// LoadLexicon loads a sentiment lexicon from a YAML file.
func LoadLexicon(path string) (*sentiment.Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file LexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return sentiment.NewLexicon(file.Positive, file.Negative, file.Intensifiers, file.Negators), nil
}

// CategoriesFile is the YAML shape of a pain-point category table.
// List order is dispatch order.
type CategoriesFile struct {
	Categories []painpoints.Category `yaml:"categories"`
}

// LoadCategories loads an ordered category table from a YAML file.
func LoadCategories(path string) ([]painpoints.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file CategoriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return file.Categories, nil
}

// PatternsFile is the YAML shape of a feature-request pattern pack.
type PatternsFile struct {
	Patterns []string `yaml:"patterns"`
}

// LoadPatterns loads and compiles feature-request patterns from a YAML file.
func LoadPatterns(path string) ([]*regexp.Regexp, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file PatternsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return features.Compile(file.Patterns)
}

// StopwordsFile is the YAML shape of a stop-word list.
type StopwordsFile struct {
	Terms []string `yaml:"terms"`
}

// LoadStopwords loads stop-words from a YAML file.
func LoadStopwords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file StopwordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return file.Terms, nil
}
