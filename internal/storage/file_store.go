package storage

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"moodd/internal/models"
	"moodd/internal/providers"
	"moodd/internal/storage/interfaces"
	"moodd/internal/structures"
)

const (
	moodsFile    = "moods.dat"
	settingsFile = "settings.dat"
)

// FileStore keeps the mood collection and the settings singleton as two
// independent compressed JSON files. The two records are never written
// transactionally; each save replaces exactly one file.
type FileStore struct {
	dir        string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (interfaces.StoreInterface, error) {
	if err := os.MkdirAll(conf.Persistence.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create persistence dir: %w", err)
	}
	return &FileStore{
		dir:        conf.Persistence.Dir,
		compressor: compressor,
		logger:     logger,
	}, nil
}

func (fs *FileStore) LoadMoods() ([]models.MoodEntry, error) {
	data, err := fs.readFile(moodsFile)
	if err != nil || data == nil {
		return []models.MoodEntry{}, err
	}

	var envelope models.MoodFileV2
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Version > 0 {
		if envelope.Moods == nil {
			envelope.Moods = []models.MoodEntry{}
		}
		return envelope.Moods, nil
	}

	// Legacy format: bare array of entries.
	fs.logger.Warnf(providers.TypeApp, "Inconsistent mood file found, try to migrate from old data format")
	var moods []models.MoodEntry
	if err := json.Unmarshal(data, &moods); err != nil {
		fs.logger.Warnf(providers.TypeApp, "Migration failed")
		return []models.MoodEntry{}, err
	}
	fs.logger.Warnf(providers.TypeApp, "Migration from legacy format successful")
	return moods, nil
}

func (fs *FileStore) SaveMoods(moods []models.MoodEntry) error {
	envelope := models.MoodFileV2{
		Version: models.PersistenceVersion,
		Moods:   moods,
	}
	return fs.writeFile(moodsFile, envelope)
}

func (fs *FileStore) LoadSettings() (models.UserSettings, bool, error) {
	data, err := fs.readFile(settingsFile)
	if err != nil || data == nil {
		return models.UserSettings{}, false, err
	}

	var envelope models.SettingsFile
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Version > 0 {
		return envelope.Settings, true, nil
	}

	// Legacy format: bare settings object.
	var settings models.UserSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.UserSettings{}, false, err
	}
	return settings, true, nil
}

func (fs *FileStore) SaveSettings(settings models.UserSettings) error {
	envelope := models.SettingsFile{
		Version:  models.PersistenceVersion,
		Settings: settings,
	}
	return fs.writeFile(settingsFile, envelope)
}

func (fs *FileStore) ClearAll() error {
	var firstErr error
	for _, name := range []string{moodsFile, settingsFile} {
		if err := os.Remove(filepath.Join(fs.dir, name)); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// readFile returns nil data without error when the file does not exist.
func (fs *FileStore) readFile(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(fs.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return fs.compressor.Decompress(data)
}

func (fs *FileStore) writeFile(name string, payload any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	data, err := fs.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	fileName := filepath.Join(fs.dir, name)
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
