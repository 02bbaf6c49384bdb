package dashboard

import (
	"math"

	"github.com/dghimirey/edVance/app/models"
)

// Pure reductions over fetched rows. Kept free of database access so the
// aggregation rules stay testable on their own.

// CountRoles builds a histogram of role values, preserving the order each
// role was first seen. Empty role strings count under "unassigned".
func CountRoles(roles []string) []models.RoleCount {
	index := make(map[string]int)
	var counts []models.RoleCount
	for _, role := range roles {
		if role == "" {
			role = "unassigned"
		}
		if i, ok := index[role]; ok {
			counts[i].Count++
			continue
		}
		index[role] = len(counts)
		counts = append(counts, models.RoleCount{Role: role, Count: 1})
	}
	return counts
}

// AttendanceRate reduces attendance statuses to a whole-percent rate.
// Present and late both count as attended. No records means the rate is
// unknown, not zero, so it comes back nil.
func AttendanceRate(statuses []models.AttendanceStatus) *float64 {
	if len(statuses) == 0 {
		return nil
	}
	attended := 0
	for _, s := range statuses {
		if s == models.Present || s == models.Late {
			attended++
		}
	}
	rate := math.Round(float64(attended) / float64(len(statuses)) * 100)
	return &rate
}
