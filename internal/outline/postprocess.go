package outline

import (
	"sort"
	"strings"
)

// finalize applies the output post-processing chain: dedup by text
// (first occurrence wins), removal of entries subsumed by the title,
// (page, level) ordering, and the one-based to zero-based page shift.
func finalize(title string, entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Text] {
			continue
		}
		seen[e.Text] = true
		if title != "" && strings.Contains(title, e.Text) {
			// Title fragments leak into the outline when the
			// title spans multiple styled blocks.
			continue
		}
		out = append(out, e)
	}

	// Level compares as a plain string, so "H10" would sort before
	// "H2". Fan-out past nine levels does not happen in practice.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Page != out[j].Page {
			return out[i].Page < out[j].Page
		}
		return out[i].Level < out[j].Level
	})

	for i := range out {
		out[i].Page--
	}
	return out
}
