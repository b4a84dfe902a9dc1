package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"moodd/internal/models"
	"moodd/internal/storage/interfaces"
)

// ErrDailyCapReached signals that no more distinct moods may be logged today.
// The entry is not created and nothing is written.
var ErrDailyCapReached = errors.New("daily mood cap reached")

type JournalServiceInterface interface {
	Load() error
	Loading() bool
	Moods() []models.MoodEntry
	Settings() models.UserSettings
	EntryCount() int
	Revision() uint64
	AddMood(level, iconName, label string) (models.MoodEntry, error)
	UpdateMood(id string, patch models.MoodPatch) error
	DeleteMood(id string) error
	ClearAll() error
	UpdateAPIKey(key string) error
	UpdatePrimaryColor(color string) error
}

// JournalService owns the canonical mood collection and the settings
// singleton. Every mutation hits the durable store first and only then the
// in-memory state, so a crash between the two leaves the store authoritative
// on next load.
type JournalService struct {
	store      interfaces.StoreInterface
	journal    *models.Journal
	settingsMu sync.RWMutex
	settings   models.UserSettings
	loading    atomic.Bool
	revision   atomic.Uint64
}

func NewJournalService(store interfaces.StoreInterface) JournalServiceInterface {
	js := &JournalService{
		store:   store,
		journal: models.NewJournal(),
	}
	js.loading.Store(true)
	return js
}

// Load fetches moods and settings in parallel and populates in-memory state.
// Partial failures still leave the service usable with empty defaults; the
// error reports what went wrong so the caller can log it.
func (js *JournalService) Load() error {
	var (
		moods    []models.MoodEntry
		settings models.UserSettings
		found    bool
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		moods, err = js.store.LoadMoods()
		return err
	})
	g.Go(func() error {
		var err error
		settings, found, err = js.store.LoadSettings()
		return err
	})
	err := g.Wait()

	if moods == nil {
		moods = []models.MoodEntry{}
	}
	js.journal.Replace(moods)

	js.settingsMu.Lock()
	if found {
		js.settings = settings
	} else {
		js.settings = models.UserSettings{}
	}
	js.settingsMu.Unlock()

	js.revision.Inc()
	js.loading.Store(false)

	if err != nil {
		return fmt.Errorf("journal load: %w", err)
	}
	return nil
}

func (js *JournalService) Loading() bool {
	return js.loading.Load()
}

func (js *JournalService) Moods() []models.MoodEntry {
	return js.journal.Snapshot()
}

func (js *JournalService) Settings() models.UserSettings {
	js.settingsMu.RLock()
	defer js.settingsMu.RUnlock()
	return js.settings
}

func (js *JournalService) EntryCount() int {
	return js.journal.Len()
}

// Revision increments on every successful mutation; response caches key on it.
func (js *JournalService) Revision() uint64 {
	return js.revision.Load()
}

// AddMood logs a mood for today. Re-selecting a label already logged today
// returns the existing entry untouched. A day holding the full set of
// distinct moods refuses with ErrDailyCapReached.
func (js *JournalService) AddMood(level, iconName, label string) (models.MoodEntry, error) {
	now := time.Now()

	if existing, ok := js.journal.FindOnDay(label, now); ok {
		return existing, nil
	}

	if js.journal.CountOnDay(now) >= models.DailyCap {
		return models.MoodEntry{}, ErrDailyCapReached
	}

	entry := models.MoodEntry{
		ID:        ulid.Make().String(),
		Level:     level,
		IconName:  iconName,
		Label:     label,
		Timestamp: now.UnixMilli(),
	}

	next := append([]models.MoodEntry{entry}, js.journal.Snapshot()...)
	if err := js.store.SaveMoods(next); err != nil {
		return models.MoodEntry{}, fmt.Errorf("persist mood: %w", err)
	}

	js.journal.Replace(next)
	js.revision.Inc()
	return entry, nil
}

// UpdateMood merges a partial update into the entry with the given id.
// Unknown ids are a no-op, never an implicit create.
func (js *JournalService) UpdateMood(id string, patch models.MoodPatch) error {
	next := js.journal.Snapshot()
	staged := &models.Journal{Entries: next}
	if !staged.Apply(id, patch) {
		return nil
	}

	if err := js.store.SaveMoods(next); err != nil {
		return fmt.Errorf("persist mood update: %w", err)
	}

	js.journal.Replace(next)
	js.revision.Inc()
	return nil
}

// DeleteMood removes the entry with the given id from both stores. Unknown
// ids are a no-op.
func (js *JournalService) DeleteMood(id string) error {
	next := js.journal.Snapshot()
	found := false
	for i := range next {
		if next[i].ID == id {
			next = append(next[:i], next[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := js.store.SaveMoods(next); err != nil {
		return fmt.Errorf("persist mood delete: %w", err)
	}

	js.journal.Replace(next)
	js.revision.Inc()
	return nil
}

// ClearAll wipes both durable records and resets in-memory state.
func (js *JournalService) ClearAll() error {
	if err := js.store.ClearAll(); err != nil {
		return fmt.Errorf("clear journal: %w", err)
	}

	js.journal.Replace([]models.MoodEntry{})

	js.settingsMu.Lock()
	js.settings = models.UserSettings{}
	js.settingsMu.Unlock()

	js.revision.Inc()
	return nil
}

func (js *JournalService) UpdateAPIKey(key string) error {
	return js.updateSettings(func(s *models.UserSettings) {
		s.APIKey = key
	})
}

func (js *JournalService) UpdatePrimaryColor(color string) error {
	return js.updateSettings(func(s *models.UserSettings) {
		s.PrimaryColor = color
	})
}

// updateSettings is a read-modify-write on the settings singleton that
// preserves the untouched field.
func (js *JournalService) updateSettings(mutate func(*models.UserSettings)) error {
	js.settingsMu.Lock()
	defer js.settingsMu.Unlock()

	next := js.settings
	mutate(&next)

	if err := js.store.SaveSettings(next); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}

	js.settings = next
	js.revision.Inc()
	return nil
}
