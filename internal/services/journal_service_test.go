package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodd/internal/models"
)

// --- local mock store (scoped to service tests) ---

type mockStore struct {
	moods       []models.MoodEntry
	settings    models.UserSettings
	hasSettings bool

	saveMoodsCalls  int
	loadMoodsErr    error
	saveMoodsErr    error
	saveSettingsErr error
	clearErr        error
}

func (m *mockStore) LoadMoods() ([]models.MoodEntry, error) {
	if m.loadMoodsErr != nil {
		return []models.MoodEntry{}, m.loadMoodsErr
	}
	cp := make([]models.MoodEntry, len(m.moods))
	copy(cp, m.moods)
	return cp, nil
}

func (m *mockStore) SaveMoods(moods []models.MoodEntry) error {
	m.saveMoodsCalls++
	if m.saveMoodsErr != nil {
		return m.saveMoodsErr
	}
	cp := make([]models.MoodEntry, len(moods))
	copy(cp, moods)
	m.moods = cp
	return nil
}

func (m *mockStore) LoadSettings() (models.UserSettings, bool, error) {
	return m.settings, m.hasSettings, nil
}

func (m *mockStore) SaveSettings(settings models.UserSettings) error {
	if m.saveSettingsErr != nil {
		return m.saveSettingsErr
	}
	m.settings = settings
	m.hasSettings = true
	return nil
}

func (m *mockStore) ClearAll() error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.moods = nil
	m.settings = models.UserSettings{}
	m.hasSettings = false
	return nil
}

func newLoadedService(t *testing.T, store *mockStore) JournalServiceInterface {
	t.Helper()
	js := NewJournalService(store)
	require.NoError(t, js.Load())
	return js
}

// --- Load ---

func TestLoad_PopulatesState(t *testing.T) {
	store := &mockStore{
		moods:       []models.MoodEntry{{ID: "a", Level: "good", Label: "Good", Timestamp: time.Now().UnixMilli()}},
		settings:    models.UserSettings{APIKey: "k1", PrimaryColor: "#334455"},
		hasSettings: true,
	}
	js := NewJournalService(store)
	assert.True(t, js.Loading())

	require.NoError(t, js.Load())
	assert.False(t, js.Loading())
	assert.Len(t, js.Moods(), 1)
	assert.Equal(t, "k1", js.Settings().APIKey)
}

func TestLoad_StoreErrorDegradesToEmpty(t *testing.T) {
	store := &mockStore{loadMoodsErr: errors.New("disk gone")}
	js := NewJournalService(store)

	err := js.Load()
	assert.Error(t, err)
	assert.False(t, js.Loading())
	assert.Empty(t, js.Moods())
}

// --- AddMood ---

func TestAddMood_CreatesAndPersists(t *testing.T) {
	store := &mockStore{}
	js := newLoadedService(t, store)

	entry, err := js.AddMood("good", "smile", "Good")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "good", entry.Level)
	assert.Equal(t, "smile", entry.IconName)
	require.Len(t, store.moods, 1)
	assert.Equal(t, entry.ID, store.moods[0].ID)
}

func TestAddMood_SameDaySameLabelIsIdempotent(t *testing.T) {
	store := &mockStore{}
	js := newLoadedService(t, store)

	first, err := js.AddMood("good", "smile", "Good")
	require.NoError(t, err)
	saves := store.saveMoodsCalls

	second, err := js.AddMood("good", "smile", "Good")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, saves, store.saveMoodsCalls, "re-selection must not write")
	assert.Len(t, store.moods, 1)
}

func TestAddMood_PrependsNewest(t *testing.T) {
	store := &mockStore{}
	js := newLoadedService(t, store)

	_, err := js.AddMood("good", "smile", "Good")
	require.NoError(t, err)
	newest, err := js.AddMood("great", "star", "Great")
	require.NoError(t, err)

	moods := js.Moods()
	require.Len(t, moods, 2)
	assert.Equal(t, newest.ID, moods[0].ID)
}

func TestAddMood_DailyCapRefused(t *testing.T) {
	now := time.Now()
	var seed []models.MoodEntry
	for _, label := range models.SelectableLevels {
		seed = append(seed, models.MoodEntry{
			ID:        label,
			Level:     label,
			Label:     label,
			Timestamp: now.UnixMilli(),
		})
	}
	store := &mockStore{moods: seed}
	js := newLoadedService(t, store)

	_, err := js.AddMood("good", "smile", "One More")
	require.ErrorIs(t, err, ErrDailyCapReached)
	assert.Len(t, js.Moods(), models.DailyCap)
	assert.Equal(t, 0, store.saveMoodsCalls)
}

func TestAddMood_StoreFailureLeavesMemoryUntouched(t *testing.T) {
	store := &mockStore{saveMoodsErr: errors.New("disk full")}
	js := newLoadedService(t, store)

	_, err := js.AddMood("good", "smile", "Good")
	assert.Error(t, err)
	assert.Empty(t, js.Moods())
}

// --- UpdateMood / DeleteMood ---

func TestUpdateMood_MergesPatch(t *testing.T) {
	store := &mockStore{}
	js := newLoadedService(t, store)
	entry, err := js.AddMood("good", "smile", "Good")
	require.NoError(t, err)

	history := []models.ChatMessage{
		{Role: models.RoleUser, Text: "hi"},
		{Role: models.RoleModel, Text: "hello there"},
	}
	summary := "a warm chat"
	require.NoError(t, js.UpdateMood(entry.ID, models.MoodPatch{ChatHistory: &history, ChatSummary: &summary}))

	moods := js.Moods()
	require.Len(t, moods, 1)
	assert.Equal(t, history, moods[0].ChatHistory)
	assert.Equal(t, summary, moods[0].ChatSummary)
	assert.Equal(t, history, store.moods[0].ChatHistory)
}

func TestUpdateMood_MissingIDIsNoop(t *testing.T) {
	store := &mockStore{}
	js := newLoadedService(t, store)

	require.NoError(t, js.UpdateMood("ghost", models.MoodPatch{}))
	assert.Equal(t, 0, store.saveMoodsCalls)
}

func TestDeleteMood_RemovesFromBothStores(t *testing.T) {
	store := &mockStore{}
	js := newLoadedService(t, store)
	entry, err := js.AddMood("good", "smile", "Good")
	require.NoError(t, err)

	require.NoError(t, js.DeleteMood(entry.ID))
	assert.Empty(t, js.Moods())
	assert.Empty(t, store.moods)
}

func TestDeleteMood_MissingIDIsNoop(t *testing.T) {
	store := &mockStore{}
	js := newLoadedService(t, store)

	saves := store.saveMoodsCalls
	require.NoError(t, js.DeleteMood("ghost"))
	assert.Equal(t, saves, store.saveMoodsCalls)
}

// --- ClearAll / settings ---

func TestClearAll_WipesEverything(t *testing.T) {
	store := &mockStore{}
	js := newLoadedService(t, store)
	_, err := js.AddMood("good", "smile", "Good")
	require.NoError(t, err)
	require.NoError(t, js.UpdateAPIKey("k1"))

	require.NoError(t, js.ClearAll())
	assert.Empty(t, js.Moods())
	assert.Equal(t, models.UserSettings{}, js.Settings())
	assert.False(t, store.hasSettings)
}

func TestUpdateAPIKey_PreservesColor(t *testing.T) {
	store := &mockStore{}
	js := newLoadedService(t, store)

	require.NoError(t, js.UpdatePrimaryColor("#112233"))
	require.NoError(t, js.UpdateAPIKey("k2"))

	got := js.Settings()
	assert.Equal(t, "k2", got.APIKey)
	assert.Equal(t, "#112233", got.PrimaryColor)
	assert.Equal(t, got, store.settings)
}

func TestUpdateSettings_StoreFailureLeavesMemoryUntouched(t *testing.T) {
	store := &mockStore{}
	js := newLoadedService(t, store)
	require.NoError(t, js.UpdateAPIKey("k1"))

	store.saveSettingsErr = errors.New("disk full")
	assert.Error(t, js.UpdateAPIKey("k2"))
	assert.Equal(t, "k1", js.Settings().APIKey)
}

// --- Revision ---

func TestRevision_BumpsOnMutation(t *testing.T) {
	store := &mockStore{}
	js := newLoadedService(t, store)

	before := js.Revision()
	_, err := js.AddMood("good", "smile", "Good")
	require.NoError(t, err)
	assert.Greater(t, js.Revision(), before)
}

func TestRevision_StableOnReads(t *testing.T) {
	store := &mockStore{}
	js := newLoadedService(t, store)

	before := js.Revision()
	js.Moods()
	js.Settings()
	assert.Equal(t, before, js.Revision())
}
