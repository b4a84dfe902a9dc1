package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"moodd/internal/analytics"
	"moodd/internal/models"
	"moodd/internal/providers"
	"moodd/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.JournalServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.JournalServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// serveFromCacheOrCompute answers derived analytics from the response cache.
// Keys embed the journal revision, so any mutation invalidates by keying
// past the stale entries.
func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	cacheKey = fmt.Sprintf("%s:r%d", cacheKey, ac.service.Revision())

	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// --- journal endpoints ---

func (ac *ApiController) GetMoods(w http.ResponseWriter, r *http.Request) {
	moods := ac.service.Moods()
	if limit := cast.ToInt(r.URL.Query().Get("limit")); limit > 0 && limit < len(moods) {
		moods = moods[:limit]
	}
	writeJSON(w, http.StatusOK, moods)
}

type addMoodRequest struct {
	Level    string `json:"level"`
	IconName string `json:"iconName"`
	Label    string `json:"label"`
}

func (ac *ApiController) AddMood(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload addMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if payload.Level == "" || payload.Label == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	entry, err := ac.service.AddMood(payload.Level, payload.IconName, payload.Label)
	if err != nil {
		if errors.Is(err, services.ErrDailyCapReached) {
			http.Error(w, "Daily mood limit reached", http.StatusConflict)
			return
		}
		ac.logger.Errorf(providers.TypeApp, "AddMood failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

type updateMoodRequest struct {
	ID string `json:"id"`
	models.MoodPatch
}

func (ac *ApiController) UpdateMood(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload updateMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if payload.ID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := ac.service.UpdateMood(payload.ID, payload.MoodPatch); err != nil {
		ac.logger.Errorf(providers.TypeApp, "UpdateMood failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) DeleteMood(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := ac.service.DeleteMood(id); err != nil {
		ac.logger.Errorf(providers.TypeApp, "DeleteMood failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := ac.service.ClearAll(); err != nil {
		ac.logger.Errorf(providers.TypeApp, "ClearAll failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- settings endpoints ---

func (ac *ApiController) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Settings())
}

func (ac *ApiController) UpdateAPIKey(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := ac.service.UpdateAPIKey(payload.APIKey); err != nil {
		ac.logger.Errorf(providers.TypeApp, "UpdateAPIKey failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) UpdatePrimaryColor(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload struct {
		PrimaryColor string `json:"primaryColor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := ac.service.UpdatePrimaryColor(payload.PrimaryColor); err != nil {
		ac.logger.Errorf(providers.TypeApp, "UpdatePrimaryColor failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- analytics endpoints ---

func (ac *ApiController) GetDistribution(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "dist", func() (any, error) {
		return analytics.Distribution(ac.service.Moods()), nil
	})
}

func (ac *ApiController) GetTrend(w http.ResponseWriter, r *http.Request) {
	rng := models.TrendRange(r.URL.Query().Get("range"))
	switch rng {
	case models.Range7D, models.Range1M, models.Range1Y:
	default:
		rng = models.RangeAll
	}

	ac.serveFromCacheOrCompute(w, "trend:"+string(rng), func() (any, error) {
		return analytics.TrendActivity(ac.service.Moods(), rng, time.Now()), nil
	})
}

func (ac *ApiController) GetInsights(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "insights", func() (any, error) {
		return analytics.AnalyzeMoodPatterns(ac.service.Moods()), nil
	})
}

type streakResponse struct {
	Streak int `json:"streak"`
}

func (ac *ApiController) GetStreak(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "streak", func() (any, error) {
		return streakResponse{Streak: analytics.Streak(ac.service.Moods(), time.Now())}, nil
	})
}
