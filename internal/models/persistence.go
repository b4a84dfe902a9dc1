package models

// MoodFileV2 is the current on-disk format for the mood collection. V1 files
// were a bare JSON array of entries and unmarshal via the legacy fallback in
// the file store.
type MoodFileV2 struct {
	Version int         `json:"version"`
	Moods   []MoodEntry `json:"moods"`
}

// SettingsFile is the on-disk format for the settings singleton. Missing
// fields stay at their zero value, so adding fields remains backward
// compatible.
type SettingsFile struct {
	Version  int          `json:"version"`
	Settings UserSettings `json:"settings"`
}

const PersistenceVersion = 2
