package transactions

import (
	"sort"
	"time"
)

// Merge reconciles the stored list with an incoming one. Entries are keyed
// by id and an incoming entry with a known id replaces the stored one
// wholesale; there is no per-field reconciliation. The result is ordered
// most recent first.
func Merge(current []Transaction, incoming []any) []Transaction {
	sanitized := Sanitize(incoming)

	byID := make(map[string]Transaction, len(current)+len(sanitized))
	order := make([]string, 0, len(current)+len(sanitized))

	for _, t := range current {
		if _, seen := byID[t.ID]; !seen {
			order = append(order, t.ID)
		}
		byID[t.ID] = t
	}
	for _, t := range sanitized {
		if _, seen := byID[t.ID]; !seen {
			order = append(order, t.ID)
		}
		byID[t.ID] = t
	}

	merged := make([]Transaction, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}
	SortByDateDesc(merged)
	return merged
}

// SortByDateDesc orders transactions newest first. Equal dates fall back
// to id ascending so the ordering is fully deterministic.
func SortByDateDesc(list []Transaction) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Date != b.Date {
			return dateAfter(a.Date, b.Date)
		}
		return a.ID < b.ID
	})
}

// dateAfter reports whether a is more recent than b. RFC3339 values compare
// as timestamps; anything unparsable falls back to lexical comparison,
// which is still a total deterministic order.
func dateAfter(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339, a)
	tb, errB := time.Parse(time.RFC3339, b)
	if errA == nil && errB == nil && !ta.Equal(tb) {
		return ta.After(tb)
	}
	return a > b
}
