// Package stats computes the dashboard's derived numbers from an
// already-fetched record set, and shapes the reporting service's
// pre-aggregated summary for display. All functions are pure.
package stats

import (
	"sort"

	"github.com/historial/historial-client/internal/types"
)

// Snapshot holds the dashboard counters: total records plus one counter per
// activity kind.
type Snapshot struct {
	Total    int
	Fallas   int
	Rutinas  int
	Trabajos int
}

// Compute derives a Snapshot from records in one O(n) pass.
func Compute(records []types.Activity) Snapshot {
	s := Snapshot{Total: len(records)}
	for _, r := range records {
		switch r.Kind {
		case types.KindFalla:
			s.Fallas++
		case types.KindRutina:
			s.Rutinas++
		case types.KindTrabajoTaller:
			s.Trabajos++
		}
	}
	return s
}

// CountByKind returns the per-kind counts as a mapping. Kinds with no
// records are absent from the result.
func CountByKind(records []types.Activity) map[types.Kind]int {
	out := make(map[types.Kind]int)
	for _, r := range records {
		out[r.Kind]++
	}
	return out
}

// Recent returns the first n records in server order (the backend lists
// newest first). The input slice is not modified.
func Recent(records []types.Activity, n int) []types.Activity {
	if n < 0 {
		n = 0
	}
	if n > len(records) {
		n = len(records)
	}
	out := make([]types.Activity, n)
	copy(out, records[:n])
	return out
}

// EquipmentCount is one row of the equipment ranking.
type EquipmentCount struct {
	Equipment string
	Count     int64
}

// EquipmentRanking orders the summary's by-equipment grouping for display:
// descending count, ties broken by ascending equipment name. The other
// groupings stay unordered mappings.
func EquipmentRanking(summary types.ReportSummary) []EquipmentCount {
	out := make([]EquipmentCount, 0, len(summary.ByEquipment))
	for equipment, count := range summary.ByEquipment {
		out = append(out, EquipmentCount{Equipment: equipment, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Equipment < out[j].Equipment
	})
	return out
}
