package grading

import (
	"testing"

	"github.com/dghimirey/edVance/app/models"
)

func entry(grade string, min, max float64) *models.GradingScaleEntry {
	return &models.GradingScaleEntry{Grade: grade, MinPercentage: min, MaxPercentage: max}
}

func defaultScale() []*models.GradingScaleEntry {
	return []*models.GradingScaleEntry{
		entry("A+", 90, 100),
		entry("A", 80, 89.99),
		entry("B", 70, 79.99),
		entry("C", 60, 69.99),
		entry("D", 40, 59.99),
		entry("F", 0, 39.99),
	}
}

func TestResolveGrade(t *testing.T) {
	tests := []struct {
		name    string
		entries []*models.GradingScaleEntry
		pct     float64
		want    string
	}{
		{"top band upper bound", defaultScale(), 100, "A+"},
		{"top band lower bound", defaultScale(), 90, "A+"},
		{"mid band", defaultScale(), 85, "A"},
		{"bottom band", defaultScale(), 0, "F"},
		{"gap between bands", defaultScale(), 79.995, GradeNotAvailable},
		{"above all bands", defaultScale(), 104.5, GradeNotAvailable},
		{"below all bands", defaultScale(), -1, GradeNotAvailable},
		{"empty scale", nil, 50, GradeNotAvailable},
		{
			// Overlapping bands: the entry with the highest floor wins.
			"overlap favors highest floor",
			[]*models.GradingScaleEntry{entry("B", 0, 100), entry("A", 80, 100)},
			85,
			"A",
		},
		{
			// Input order must not matter; the resolver sorts before scanning.
			"unsorted input",
			[]*models.GradingScaleEntry{entry("F", 0, 39.99), entry("A+", 90, 100), entry("A", 80, 89.99)},
			92,
			"A+",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveGrade(tt.entries, tt.pct); got != tt.want {
				t.Errorf("ResolveGrade(%v) = %q, want %q", tt.pct, got, tt.want)
			}
		})
	}
}

func TestResolveGradeDoesNotMutateInput(t *testing.T) {
	entries := []*models.GradingScaleEntry{entry("F", 0, 39.99), entry("A", 80, 100)}
	ResolveGrade(entries, 50)
	if entries[0].Grade != "F" || entries[1].Grade != "A" {
		t.Fatalf("input slice reordered: %v %v", entries[0].Grade, entries[1].Grade)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{85.0, 85.0},
		{84.666666, 84.67},
		{84.664999, 84.66},
		{84.125, 84.13},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
