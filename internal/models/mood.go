package models

import "time"

// The five levels the analytics subsystem scores against.
const (
	LevelGreat   = "great"
	LevelGood    = "good"
	LevelNeutral = "neutral"
	LevelDown    = "down"
	LevelUnhappy = "unhappy"
)

// AnalyticLevels is the fixed enumeration order used by distribution output.
var AnalyticLevels = []string{LevelGreat, LevelGood, LevelNeutral, LevelDown, LevelUnhappy}

// SelectableLevels lists every mood variant a client may log. Its length is
// also the hard cap on distinct entries per calendar day.
var SelectableLevels = []string{
	"awesome", "great", "good", "neutral", "down", "unhappy", "awful",
	"loved", "blessed", "joyful", "angry", "scared", "confused", "hot",
	"hugging", "woozy",
}

// DailyCap limits how many distinct entries may exist on one calendar day.
var DailyCap = len(SelectableLevels)

// analyticLevelOf maps the wide selectable taxonomy onto the five analytic
// levels. Levels outside the table stay out of scoring and distribution.
var analyticLevelOf = map[string]string{
	LevelGreat:   LevelGreat,
	LevelGood:    LevelGood,
	LevelNeutral: LevelNeutral,
	LevelDown:    LevelDown,
	LevelUnhappy: LevelUnhappy,
	"awesome":    LevelGreat,
	"loved":      LevelGreat,
	"blessed":    LevelGreat,
	"joyful":     LevelGreat,
	"hugging":    LevelGood,
	"confused":   LevelNeutral,
	"hot":        LevelNeutral,
	"woozy":      LevelNeutral,
	"scared":     LevelDown,
	"angry":      LevelUnhappy,
	"awful":      LevelUnhappy,
}

var levelScore = map[string]int{
	LevelGreat:   5,
	LevelGood:    4,
	LevelNeutral: 3,
	LevelDown:    2,
	LevelUnhappy: 1,
}

// AnalyticLevel resolves a logged level to its analytic bucket.
func AnalyticLevel(level string) (string, bool) {
	l, ok := analyticLevelOf[level]
	return l, ok
}

// LevelScore returns the positivity score of a logged level.
func LevelScore(level string) (int, bool) {
	l, ok := analyticLevelOf[level]
	if !ok {
		return 0, false
	}
	return levelScore[l], true
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type MoodEntry struct {
	ID          string        `json:"id"`
	Level       string        `json:"level"`
	IconName    string        `json:"iconName"`
	Label       string        `json:"label"`
	Timestamp   int64         `json:"timestamp"`
	ChatHistory []ChatMessage `json:"chatHistory,omitempty"`
	ChatSummary string        `json:"chatSummary,omitempty"`
}

// Time returns the creation instant of the entry.
func (e *MoodEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// DayKey collapses an instant to its local calendar day. Dedup, the daily
// cap, streaks and trend buckets all share this boundary.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// MoodPatch carries a partial update; nil fields are left untouched.
type MoodPatch struct {
	Level       *string        `json:"level,omitempty"`
	IconName    *string        `json:"iconName,omitempty"`
	ChatHistory *[]ChatMessage `json:"chatHistory,omitempty"`
	ChatSummary *string        `json:"chatSummary,omitempty"`
}

type UserSettings struct {
	APIKey       string `json:"apiKey"`
	PrimaryColor string `json:"primaryColor,omitempty"`
}

const (
	InsightPattern   = "pattern"
	InsightFrequency = "frequency"
	InsightTime      = "time"
)

// Insight is derived on every analytics pass and never stored.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type MoodDistribution struct {
	Level      string `json:"level"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type DayActivity struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type TrendRange string

const (
	Range7D  TrendRange = "7d"
	Range1M  TrendRange = "1m"
	Range1Y  TrendRange = "1y"
	RangeAll TrendRange = "all"
)
