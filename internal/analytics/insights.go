package analytics

import (
	"fmt"

	"moodd/internal/models"
)

// minInsightEntries is the floor below which no insight carries signal.
const minInsightEntries = 3

const (
	bucketMorning   = "morning"
	bucketAfternoon = "afternoon"
	bucketEvening   = "evening"
	bucketNight     = "night"
)

// AnalyzeMoodPatterns produces up to three heuristic insights: the dominant
// mood, the habitual logging time of day, and an average-positivity verdict.
// Order is fixed: frequency, time, pattern.
func AnalyzeMoodPatterns(moods []models.MoodEntry) []models.Insight {
	if len(moods) < minInsightEntries {
		return []models.Insight{}
	}

	insights := []models.Insight{dominantVibe(moods)}

	if timeInsight, ok := timeRitual(moods); ok {
		insights = append(insights, timeInsight)
	}
	if patternInsight, ok := positivity(moods); ok {
		insights = append(insights, patternInsight)
	}
	return insights
}

// dominantVibe reports the most frequent raw level value.
func dominantVibe(moods []models.MoodEntry) models.Insight {
	counts := make(map[string]int)
	for i := range moods {
		counts[moods[i].Level]++
	}

	var top string
	var topCount int
	for level, count := range counts {
		if count > topCount || (count == topCount && level < top) {
			top = level
			topCount = count
		}
	}

	return models.Insight{
		Title:       "Dominant Vibe",
		Description: fmt.Sprintf("You logged %q %d times, more than any other mood.", top, topCount),
		Type:        models.InsightFrequency,
	}
}

// timeRitual buckets entries by local hour and reports the busiest bucket
// when it holds at least two entries.
func timeRitual(moods []models.MoodEntry) (models.Insight, bool) {
	counts := make(map[string]int)
	for i := range moods {
		counts[hourBucket(moods[i].Time().Local().Hour())]++
	}

	var top string
	var topCount int
	for bucket, count := range counts {
		if count > topCount {
			top = bucket
			topCount = count
		}
	}
	if topCount < 2 {
		return models.Insight{}, false
	}

	return models.Insight{
		Title:       "Time Ritual",
		Description: fmt.Sprintf("You check in most often in the %s (%d times).", top, topCount),
		Type:        models.InsightTime,
	}, true
}

func hourBucket(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return bucketMorning
	case hour >= 12 && hour < 17:
		return bucketAfternoon
	case hour >= 17 && hour < 21:
		return bucketEvening
	default:
		return bucketNight
	}
}

// positivity averages the level scores of scorable entries and emits a
// verdict only at the extremes.
func positivity(moods []models.MoodEntry) (models.Insight, bool) {
	sum, n := 0, 0
	for i := range moods {
		if score, ok := models.LevelScore(moods[i].Level); ok {
			sum += score
			n++
		}
	}
	if n == 0 {
		return models.Insight{}, false
	}

	avg := float64(sum) / float64(n)
	switch {
	case avg >= 4:
		return models.Insight{
			Title:       "Positivity Peak",
			Description: "Your recent moods have been riding high. Keep doing what works.",
			Type:        models.InsightPattern,
		}, true
	case avg <= 2.5:
		return models.Insight{
			Title:       "Heavy Period",
			Description: "The last stretch has been rough. Be gentle with yourself.",
			Type:        models.InsightPattern,
		}, true
	}
	return models.Insight{}, false
}
