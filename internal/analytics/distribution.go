// Package analytics derives statistics from a mood collection snapshot.
// Every function is pure: no storage access, no shared state, safe to call
// repeatedly on any subset or ordering of entries.
package analytics

import (
	"math"
	"sort"

	"moodd/internal/models"
)

// Distribution counts entries per analytic level and returns the buckets
// sorted descending by count. Ties keep the fixed level order. Percentages
// are rounded against the full entry total, never dividing by zero.
func Distribution(moods []models.MoodEntry) []models.MoodDistribution {
	counts := make(map[string]int, len(models.AnalyticLevels))
	for i := range moods {
		if level, ok := models.AnalyticLevel(moods[i].Level); ok {
			counts[level]++
		}
	}

	total := max(len(moods), 1)

	out := make([]models.MoodDistribution, 0, len(models.AnalyticLevels))
	for _, level := range models.AnalyticLevels {
		count := counts[level]
		out = append(out, models.MoodDistribution{
			Level:      level,
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
