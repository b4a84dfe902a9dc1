package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"moodd/internal/structures"
)

func validConfig() *structures.Config {
	conf := &structures.Config{}
	conf.WebServer.Host = "localhost"
	conf.WebServer.Port = 8475
	conf.Persistence.Dir = "/var/lib/moodd"
	conf.Persistence.BackupInterval = 6 * time.Hour
	conf.Persistence.BackupKeep = 7
	conf.Dialogue.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	conf.Dialogue.Model = "gemini-2.0-flash"
	conf.Dialogue.Timeout = 20 * time.Second
	conf.Logger.Level = "info"
	conf.Logger.Mode = 420
	conf.Logger.Dir = "/var/log/moodd"
	return conf
}

func TestCnfValidator_Valid(t *testing.T) {
	assert.NoError(t, NewCnfValidator(validConfig()).Validate())
}

func TestCnfValidator_MissingHost(t *testing.T) {
	conf := validConfig()
	conf.WebServer.Host = ""
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_BadPort(t *testing.T) {
	conf := validConfig()
	conf.WebServer.Port = 0
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_BadLogLevel(t *testing.T) {
	conf := validConfig()
	conf.Logger.Level = "loud"
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_BadDialogueURL(t *testing.T) {
	conf := validConfig()
	conf.Dialogue.BaseURL = "not a url"
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_MissingPersistenceDir(t *testing.T) {
	conf := validConfig()
	conf.Persistence.Dir = ""
	assert.Error(t, NewCnfValidator(conf).Validate())
}
