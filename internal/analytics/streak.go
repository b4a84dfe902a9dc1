package analytics

import (
	"time"

	"moodd/internal/models"
)

// Streak counts consecutive local calendar days with at least one entry,
// ending at today or yesterday. A newest entry older than yesterday breaks
// the streak to zero.
func Streak(moods []models.MoodEntry, now time.Time) int {
	if len(moods) == 0 {
		return 0
	}

	days := make(map[string]struct{})
	for i := range moods {
		days[models.DayKey(moods[i].Time())] = struct{}{}
	}

	now = now.Local()
	today := models.DayKey(now)
	yesterday := models.DayKey(now.AddDate(0, 0, -1))

	var cursor time.Time
	if _, ok := days[today]; ok {
		cursor = now
	} else if _, ok := days[yesterday]; ok {
		cursor = now.AddDate(0, 0, -1)
	} else {
		return 0
	}

	streak := 0
	for {
		if _, ok := days[models.DayKey(cursor)]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
