package verse

import "fmt"

// MatchMode selects how a query is matched against lyric lines.
type MatchMode int

const (
	// Exact matches on case-insensitive substring containment.
	Exact MatchMode = iota

	// Fuzzy matches on string similarity blended with word overlap.
	Fuzzy

	// Semantic matches on embedding similarity.
	Semantic
)

// String returns the mode's wire name.
func (m MatchMode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Fuzzy:
		return "fuzzy"
	case Semantic:
		return "semantic"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMode converts a mode name into a MatchMode.
func ParseMode(s string) (MatchMode, error) {
	switch s {
	case "exact":
		return Exact, nil
	case "fuzzy":
		return Fuzzy, nil
	case "semantic":
		return Semantic, nil
	default:
		return Semantic, fmt.Errorf("unknown match mode %q", s)
	}
}
