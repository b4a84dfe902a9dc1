package testutil

import (
	"sync"
	"time"

	"moodd/internal/models"
	"moodd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu                sync.Mutex
	Requests          int
	CacheHits         int
	CacheMisses       int
	PersistenceObs    int
	ChatFallbackCalls int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceObs++
}

func (m *MockMetrics) IncChatFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatFallbackCalls++
}

// MockStore is an in-memory storage.StoreInterface with error injection.
type MockStore struct {
	mu          sync.Mutex
	Moods       []models.MoodEntry
	Settings    models.UserSettings
	HasSettings bool

	SaveMoodsCalls    int
	SaveSettingsCalls int
	ClearCalls        int

	LoadMoodsErr    error
	SaveMoodsErr    error
	LoadSettingsErr error
	SaveSettingsErr error
	ClearErr        error
}

func (m *MockStore) LoadMoods() ([]models.MoodEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadMoodsErr != nil {
		return []models.MoodEntry{}, m.LoadMoodsErr
	}
	cp := make([]models.MoodEntry, len(m.Moods))
	copy(cp, m.Moods)
	return cp, nil
}

func (m *MockStore) SaveMoods(moods []models.MoodEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveMoodsCalls++
	if m.SaveMoodsErr != nil {
		return m.SaveMoodsErr
	}
	cp := make([]models.MoodEntry, len(moods))
	copy(cp, moods)
	m.Moods = cp
	return nil
}

func (m *MockStore) LoadSettings() (models.UserSettings, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadSettingsErr != nil {
		return models.UserSettings{}, false, m.LoadSettingsErr
	}
	return m.Settings, m.HasSettings, nil
}

func (m *MockStore) SaveSettings(settings models.UserSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveSettingsCalls++
	if m.SaveSettingsErr != nil {
		return m.SaveSettingsErr
	}
	m.Settings = settings
	m.HasSettings = true
	return nil
}

func (m *MockStore) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Moods = nil
	m.Settings = models.UserSettings{}
	m.HasSettings = false
	return nil
}
