package sentiment

// Lexicon holds the word sets driving rule-based polarity scoring.
// Lexicons are immutable configuration: build one up front (or load it
// from YAML via the config package) and share it across classifiers.
type Lexicon struct {
	positive     map[string]struct{}
	negative     map[string]struct{}
	intensifiers map[string]struct{}
	negators     map[string]struct{}
}

// NewLexicon builds a lexicon from plain word lists.
func NewLexicon(positive, negative, intensifiers, negators []string) *Lexicon {
	return &Lexicon{
		positive:     toSet(positive),
		negative:     toSet(negative),
		intensifiers: toSet(intensifiers),
		negators:     toSet(negators),
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// DefaultLexicon returns the built-in English + Chinese lexicon.
func DefaultLexicon() *Lexicon {
	return NewLexicon(defaultPositive, defaultNegative, defaultIntensifiers, defaultNegators)
}

var defaultPositive = []string{
	"love", "amazing", "excellent", "perfect", "great", "fantastic",
	"awesome", "wonderful", "best", "outstanding", "superb", "brilliant",
	"incredible", "impressive", "beautiful", "sturdy", "durable", "quality",
	"recommend", "happy", "pleased", "satisfied", "solid", "reliable",
	"comfortable", "convenient", "easy", "fast", "smooth", "elegant",
	"premium", "worth", "value", "must-have", "favorite", "flawless",
	"好", "棒", "赞", "优秀", "满意", "推荐", "完美", "喜欢", "值",
	"方便", "舒服", "耐用", "划算", "实用", "好看",
}

var defaultNegative = []string{
	"terrible", "awful", "horrible", "worst", "bad", "poor", "cheap",
	"broken", "defective", "disappointing", "useless", "waste", "flimsy",
	"fragile", "leak", "crack", "missing", "wrong", "damaged", "fake",
	"scam", "overpriced", "slow", "difficult", "confusing", "uncomfortable",
	"noisy", "smell", "stain", "rust", "peel", "scratch", "return",
	"refund", "regret", "frustrated", "annoyed", "complaint",
	"差", "烂", "垃圾", "失望", "退货", "退款", "假", "坏", "碎",
	"难用", "不值", "后悔", "投诉", "漏", "裂", "味道大",
}

var defaultIntensifiers = []string{
	"very", "extremely", "absolutely", "totally", "completely", "highly",
	"incredibly", "really", "truly", "super", "quite", "rather",
	"特别", "非常", "极其", "太", "超级",
}

var defaultNegators = []string{
	"not", "no", "never", "don't", "doesn't", "didn't", "won't",
	"wouldn't", "can't", "cannot", "isn't", "aren't", "wasn't",
	"weren't", "hardly", "barely", "scarcely", "neither", "nor",
	"不", "没", "没有", "别", "未",
}
