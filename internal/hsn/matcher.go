package hsn

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/gstsuite/invoice-analyzer/internal/entity"
)

// MatchThreshold is the minimum normalized similarity for a fuzzy match.
const MatchThreshold = 0.82

var reNonAlnum = regexp.MustCompile(`[^a-z0-9 ]+`)

// Matcher resolves free-text item descriptions against the HSN reference
// table. Matching is deterministic for a fixed reference set: candidates
// are kept sorted and ties break on HSN code.
type Matcher struct {
	entries []entity.HSNEntry
	exact   map[string]int // normalized item name -> index into entries
	params  *levenshtein.Params
}

func NewMatcher(entries []entity.HSNEntry) *Matcher {
	sorted := make([]entity.HSNEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].ItemName != sorted[j].ItemName {
			return sorted[i].ItemName < sorted[j].ItemName
		}
		return sorted[i].HSNCode < sorted[j].HSNCode
	})

	exact := make(map[string]int, len(sorted))
	for i, e := range sorted {
		key := normalizeName(e.ItemName)
		if _, seen := exact[key]; !seen {
			exact[key] = i
		}
	}
	return &Matcher{
		entries: sorted,
		exact:   exact,
		params:  levenshtein.NewParams(),
	}
}

// Resolve returns the best reference entry for a description, or ok=false
// when nothing clears the similarity threshold.
func (m *Matcher) Resolve(description string) (entity.HSNEntry, bool) {
	key := normalizeName(description)
	if key == "" {
		return entity.HSNEntry{}, false
	}

	if i, ok := m.exact[key]; ok {
		return m.entries[i], true
	}

	best := -1
	bestScore := 0.0
	for i, e := range m.entries {
		score := levenshtein.Similarity(key, normalizeName(e.ItemName), m.params)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best < 0 || bestScore < MatchThreshold {
		return entity.HSNEntry{}, false
	}
	return m.entries[best], true
}

// Categories returns the distinct categories in reference order.
func (m *Matcher) Categories() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, e := range m.entries {
		if _, ok := seen[e.Category]; !ok {
			seen[e.Category] = struct{}{}
			out = append(out, e.Category)
		}
	}
	sort.Strings(out)
	return out
}

// ItemsInCategory returns the entries for one category, sorted by item name.
func (m *Matcher) ItemsInCategory(category string) []entity.HSNEntry {
	var out []entity.HSNEntry
	for _, e := range m.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reNonAlnum.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	return s
}
