package painpoints

// DefaultCategories returns the built-in complaint category table.
// The slice order is the dispatch order used by Extract.
func DefaultCategories() []Category {
	return []Category{
		{Name: "quality", Phrases: []string{
			"broke", "broken", "crack", "cracked", "defective", "flimsy",
			"cheap", "thin", "weak", "fragile", "fell apart", "poor quality",
		}},
		{Name: "sizing", Phrases: []string{
			"too small", "too big", "too large", "too tight", "too loose",
			"doesn't fit", "size", "sizing", "runs small", "runs large",
		}},
		{Name: "durability", Phrases: []string{
			"wore out", "faded", "peeled", "rust", "rusted", "stain",
			"discolor", "tear", "tore", "worn", "deteriorat",
		}},
		{Name: "delivery", Phrases: []string{
			"late", "delayed", "slow shipping", "wrong item", "missing",
			"damaged in shipping", "packaging", "arrived broken",
		}},
		{Name: "value", Phrases: []string{
			"overpriced", "not worth", "waste of money", "expensive",
			"better options", "cheaper", "rip off", "ripoff",
		}},
		{Name: "usability", Phrases: []string{
			"hard to use", "difficult", "confusing", "complicated",
			"instructions", "manual", "setup", "install",
		}},
		{Name: "appearance", Phrases: []string{
			"looks different", "color", "doesn't look like", "photo",
			"picture", "misleading", "not as shown", "ugly",
		}},
		{Name: "functionality", Phrases: []string{
			"doesn't work", "stopped working", "malfunction",
			"failed", "won't turn on", "battery", "charge",
		}},
		{Name: "smell", Phrases: []string{
			"smell", "odor", "chemical", "toxic", "stink", "off-gassing",
		}},
		{Name: "safety", Phrases: []string{
			"sharp", "cut", "burn", "hazard", "unsafe", "dangerous",
			"choking", "allergic", "reaction", "irritat",
		}},
	}
}
