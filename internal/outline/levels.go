package outline

import (
	"sort"
	"strconv"
)

// AssignLevels maps each distinct accepted heading style to a level
// label. Styles sort by (size desc, bold desc): the most prominent
// style becomes H1, the next H2, and so on. The order is total over
// the small set of styles actually observed; no absolute size table
// is assumed.
func AssignLevels(styles []Style) map[Style]string {
	sorted := make([]Style, len(styles))
	copy(sorted, styles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MoreProminent(sorted[j])
	})

	levels := make(map[Style]string, len(sorted))
	for i, st := range sorted {
		levels[st] = "H" + strconv.Itoa(i+1)
	}
	return levels
}
