package providers

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"moodd/internal/models"
	"moodd/internal/structures"
)

// --- minimal mock for JournalServiceInterface ---

type metricsTestService struct{}

func (m *metricsTestService) Load() error                  { return nil }
func (m *metricsTestService) Loading() bool                { return false }
func (m *metricsTestService) Moods() []models.MoodEntry    { return nil }
func (m *metricsTestService) Settings() models.UserSettings {
	return models.UserSettings{}
}
func (m *metricsTestService) EntryCount() int  { return 3 }
func (m *metricsTestService) Revision() uint64 { return 0 }
func (m *metricsTestService) AddMood(_, _, _ string) (models.MoodEntry, error) {
	return models.MoodEntry{}, nil
}
func (m *metricsTestService) UpdateMood(_ string, _ models.MoodPatch) error { return nil }
func (m *metricsTestService) DeleteMood(_ string) error                     { return nil }
func (m *metricsTestService) ClearAll() error                               { return nil }
func (m *metricsTestService) UpdateAPIKey(_ string) error                   { return nil }
func (m *metricsTestService) UpdatePrimaryColor(_ string) error             { return nil }

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf, &metricsTestService{})
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/moods", 200)
	m.ObserveRequestDuration("/moods", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(time.Millisecond)
	m.IncChatFallbacks()
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestService{})
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestService{})

	// These should not panic
	m.IncRequestsTotal("/moods", 200)
	m.IncRequestsTotal("/moods", 409)
	m.ObserveRequestDuration("/moods", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(100 * time.Millisecond)
	m.IncChatFallbacks()
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
