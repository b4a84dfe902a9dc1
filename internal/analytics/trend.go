package analytics

import (
	"time"

	"moodd/internal/models"
)

// maxTrendBars caps how many day buckets a trend chart renders.
const maxTrendBars = 14

// TrendActivity buckets entries per local calendar day from the range start
// up to now inclusive, then keeps only the last maxTrendBars days so wide
// ranges still chart readably, anchored on today.
func TrendActivity(moods []models.MoodEntry, rng models.TrendRange, now time.Time) []models.DayActivity {
	now = now.Local()

	var start time.Time
	switch rng {
	case models.Range7D:
		start = now.AddDate(0, 0, -6)
	case models.Range1M:
		start = now.AddDate(0, -1, 0)
	case models.Range1Y:
		start = now.AddDate(0, 0, -365)
	default: // all
		start = now.AddDate(0, 0, -13)
	}

	counts := make(map[string]int)
	for i := range moods {
		counts[models.DayKey(moods[i].Time())]++
	}

	var days []models.DayActivity
	for day := start; !day.After(now); day = day.AddDate(0, 0, 1) {
		key := models.DayKey(day)
		days = append(days, models.DayActivity{Date: key, Count: counts[key]})
	}

	if len(days) > maxTrendBars {
		days = days[len(days)-maxTrendBars:]
	}
	return days
}
