package keywords

// DefaultStopwords returns the built-in stop-word list. These are function
// words that carry no buyer-vocabulary signal.
func DefaultStopwords() []string {
	return []string{
		"the", "a", "an", "is", "are", "was", "were", "it", "this",
		"that", "with", "for", "and", "but", "or", "not", "very",
		"have", "has", "had", "been", "will", "would", "could",
		"should", "just", "like", "get", "got", "one", "use", "used",
		"really", "also", "much", "well", "than", "can", "does",
		"did", "its", "they", "them", "their", "these", "those",
		"some", "all", "any", "each", "from", "more", "most",
		"other", "out", "over", "only", "own", "same", "too",
	}
}
