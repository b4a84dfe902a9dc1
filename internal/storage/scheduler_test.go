package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodd/internal/models"
	"moodd/internal/services"
	"moodd/internal/structures"
	"moodd/internal/testutil"
)

func newTestScheduler(t *testing.T, keep int) (*Scheduler, string, *testutil.MockMetrics) {
	t.Helper()
	dir := t.TempDir()

	conf := &structures.Config{}
	conf.Persistence.Dir = dir
	conf.Persistence.BackupInterval = time.Hour
	conf.Persistence.BackupKeep = keep

	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(compressor.Close)

	store := &testutil.MockStore{
		Moods: []models.MoodEntry{
			{ID: "01JB", Level: "good", Label: "Good", Timestamp: time.Now().UnixMilli()},
		},
	}
	service := services.NewJournalService(store)
	require.NoError(t, service.Load())

	metrics := &testutil.MockMetrics{}
	sched := NewScheduler(conf, &testutil.MockLogger{}, service, compressor, metrics).(*Scheduler)
	return sched, dir, metrics
}

func TestScheduler_BackupWritesSnapshot(t *testing.T) {
	sched, dir, metrics := newTestScheduler(t, 5)

	require.NoError(t, sched.Backup())

	entries, err := os.ReadDir(filepath.Join(dir, backupDir))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, metrics.PersistenceObs)

	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	defer compressor.Close()

	data, err := os.ReadFile(filepath.Join(dir, backupDir, entries[0].Name()))
	require.NoError(t, err)
	raw, err := compressor.Decompress(data)
	require.NoError(t, err)

	var envelope models.MoodFileV2
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, models.PersistenceVersion, envelope.Version)
	require.Len(t, envelope.Moods, 1)
	assert.Equal(t, "01JB", envelope.Moods[0].ID)
}

func TestScheduler_PruneKeepsNewest(t *testing.T) {
	sched, dir, _ := newTestScheduler(t, 2)

	backups := filepath.Join(dir, backupDir)
	require.NoError(t, os.MkdirAll(backups, 0o755))
	for _, name := range []string{
		"journal-20260101-000000.dat",
		"journal-20260102-000000.dat",
		"journal-20260103-000000.dat",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(backups, name), []byte("x"), 0o644))
	}

	require.NoError(t, sched.Backup())

	entries, err := os.ReadDir(backups)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "journal-20260103-000000.dat", entries[0].Name())
}

func TestScheduler_ZeroKeepDisablesPruning(t *testing.T) {
	sched, dir, _ := newTestScheduler(t, 0)

	require.NoError(t, sched.Backup())
	require.NoError(t, sched.Backup())

	entries, err := os.ReadDir(filepath.Join(dir, backupDir))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}
