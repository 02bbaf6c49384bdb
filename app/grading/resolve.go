package grading

import (
	"math"
	"sort"

	"github.com/dghimirey/edVance/app/models"
)

// GradeNotAvailable is returned when no scale entry matches a percentage.
// A misconfigured scale must not break report generation.
const GradeNotAvailable = "N/A"

// GradeNotEntered marks a subject with no recorded mark yet.
const GradeNotEntered = "—"

// SortEntries orders scale entries by min_percentage descending, the order
// the resolver scans in. Stable so equal floors keep their stored order.
func SortEntries(entries []*models.GradingScaleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MinPercentage > entries[j].MinPercentage
	})
}

// ResolveGrade finds the grade label for a percentage. Entries are scanned
// in descending order of min_percentage and the first band satisfying
// min <= pct <= max wins, so when bands overlap the one with the highest
// floor takes precedence. Percentages outside [0,100] are not rejected;
// they simply fail to match unless a band covers them.
func ResolveGrade(entries []*models.GradingScaleEntry, pct float64) string {
	ordered := make([]*models.GradingScaleEntry, len(entries))
	copy(ordered, entries)
	SortEntries(ordered)

	for _, e := range ordered {
		if pct >= e.MinPercentage && pct <= e.MaxPercentage {
			return e.Grade
		}
	}
	return GradeNotAvailable
}

// Round2 rounds to two decimal places, half away from zero. Subject-level
// and overall percentages must share this so displayed totals line up.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
