package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodd/internal/controllers"
	"moodd/internal/models"
	"moodd/internal/providers"
	"moodd/internal/structures"
)

// --- minimal mocks for routes test ---

type routeTestLogger struct{}

func (m *routeTestLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *routeTestLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *routeTestLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Close()                                                  {}

type routeTestCache struct{}

func (m *routeTestCache) Get(_ string) ([]byte, bool) { return nil, false }
func (m *routeTestCache) Set(_ string, _ []byte)      {}

type routeTestService struct{}

func (m *routeTestService) Load() error                   { return nil }
func (m *routeTestService) Loading() bool                 { return false }
func (m *routeTestService) Moods() []models.MoodEntry     { return nil }
func (m *routeTestService) Settings() models.UserSettings { return models.UserSettings{} }
func (m *routeTestService) EntryCount() int               { return 0 }
func (m *routeTestService) Revision() uint64              { return 0 }
func (m *routeTestService) AddMood(_, _, _ string) (models.MoodEntry, error) {
	return models.MoodEntry{}, nil
}
func (m *routeTestService) UpdateMood(_ string, _ models.MoodPatch) error { return nil }
func (m *routeTestService) DeleteMood(_ string) error                     { return nil }
func (m *routeTestService) ClearAll() error                               { return nil }
func (m *routeTestService) UpdateAPIKey(_ string) error                   { return nil }
func (m *routeTestService) UpdatePrimaryColor(_ string) error             { return nil }

type routeTestGateway struct{}

func (m *routeTestGateway) ChatResponse(_ context.Context, _, _ string, _ []models.ChatMessage, _ string) string {
	return "hello"
}

func newRouteTestRouter() providers.RouterProviderInterface {
	svc := &routeTestService{}
	logger := &routeTestLogger{}
	ac := controllers.NewApiController(logger, svc, &routeTestCache{})
	cc := controllers.NewChatController(logger, svc, &routeTestGateway{})
	return InitRoutes(ac, cc, &structures.Config{})
}

func TestInitRoutes_RegistersAllRoutes(t *testing.T) {
	routes := newRouteTestRouter().GetRoutes()

	require.Len(t, routes, 13)

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	assert.Contains(t, urls, "/moods")
	assert.Contains(t, urls, "/mood/add")
	assert.Contains(t, urls, "/mood/update")
	assert.Contains(t, urls, "/mood/delete")
	assert.Contains(t, urls, "/clear")
	assert.Contains(t, urls, "/settings")
	assert.Contains(t, urls, "/settings/apikey")
	assert.Contains(t, urls, "/settings/color")
	assert.Contains(t, urls, "/analytics/distribution")
	assert.Contains(t, urls, "/analytics/trend")
	assert.Contains(t, urls, "/analytics/insights")
	assert.Contains(t, urls, "/analytics/streak")
	assert.Contains(t, urls, "/chat")
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	routes := newRouteTestRouter().GetRoutes()

	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.Url, r.Handler)
	}

	// GET /moods with POST should fail
	req := httptest.NewRequest(http.MethodPost, "/moods", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// POST /mood/add with GET should fail
	req = httptest.NewRequest(http.MethodGet, "/mood/add", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// PUT /mood/update with POST should fail
	req = httptest.NewRequest(http.MethodPost, "/mood/update", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
