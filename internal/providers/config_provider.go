package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"moodd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "MOODD_LOG_LEVEL")
	viper.BindEnv("persistence.backupInterval", "MOODD_BACKUP_INTERVAL")
	viper.BindEnv("dialogue.model", "MOODD_DIALOGUE_MODEL")
	viper.BindEnv("dialogue.baseUrl", "MOODD_DIALOGUE_BASE_URL")
	viper.BindEnv("cache.enabled", "MOODD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "MOODD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "MoodJournalDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
