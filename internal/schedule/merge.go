package schedule

import "sort"

// Merge flattens busy periods from multiple calendar sources into one
// sorted, non-overlapping list.
//
// Periods are sorted by start (stable, so ties keep source order) and folded
// in a single scan. A new merged run starts only when the current run ends
// strictly before the next period starts; back-to-back periods where one
// ends exactly when the next begins therefore collapse into a single run.
// When runs merge, summaries are joined with " / "; a run without a summary
// adopts the incoming one.
//
// Empty input yields an empty result.
func Merge(sources [][]BusyPeriod) []BusyPeriod {
	var all []BusyPeriod
	for _, periods := range sources {
		all = append(all, periods...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Start.Before(all[j].Start)
	})

	var merged []BusyPeriod
	for _, p := range all {
		if len(merged) == 0 || merged[len(merged)-1].End.Before(p.Start) {
			merged = append(merged, p)
			continue
		}

		cur := &merged[len(merged)-1]
		if p.End.After(cur.End) {
			cur.End = p.End
		}
		switch {
		case cur.Summary != "" && p.Summary != "":
			cur.Summary = cur.Summary + " / " + p.Summary
		case p.Summary != "":
			cur.Summary = p.Summary
		}
	}

	return merged
}
