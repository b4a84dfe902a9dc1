package interfaces

import "moodd/internal/models"

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	Close()
}

// StoreInterface is the durable home of the two journal records. Reads
// return empty values when nothing has been written yet; genuine I/O
// failures come back as errors and the caller decides how far to degrade.
type StoreInterface interface {
	LoadMoods() ([]models.MoodEntry, error)
	SaveMoods(moods []models.MoodEntry) error
	LoadSettings() (models.UserSettings, bool, error)
	SaveSettings(settings models.UserSettings) error
	ClearAll() error
}

type SchedulerInterface interface {
	Init()
	Stop()
	Backup() error
}
