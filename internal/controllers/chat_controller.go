package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"moodd/internal/dialogue"
	"moodd/internal/models"
	"moodd/internal/providers"
	"moodd/internal/services"
)

type ChatController struct {
	logger  providers.Logger
	service services.JournalServiceInterface
	gateway dialogue.GatewayInterface
}

func NewChatController(logger providers.Logger, service services.JournalServiceInterface, gateway dialogue.GatewayInterface) *ChatController {
	return &ChatController{
		logger:  logger,
		service: service,
		gateway: gateway,
	}
}

type chatRequest struct {
	MoodID    string               `json:"moodId,omitempty"`
	MoodLabel string               `json:"moodLabel"`
	History   []models.ChatMessage `json:"history,omitempty"`
	Message   string               `json:"message,omitempty"`
}

type chatResponse struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
}

// Chat forwards one conversation turn to the companion gateway and, when the
// request names a mood entry, writes the merged transcript back through the
// repository so the saved history and the reply never diverge.
func (cc *ChatController) Chat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if payload.MoodLabel == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	apiKey := cc.service.Settings().APIKey
	text := cc.gateway.ChatResponse(r.Context(), apiKey, payload.MoodLabel, payload.History, payload.Message)
	clean, suggestions := dialogue.ParseSuggestions(text)

	if payload.MoodID != "" {
		history := payload.History
		if payload.Message != "" {
			history = append(history, models.ChatMessage{Role: models.RoleUser, Text: payload.Message})
		}
		history = append(history, models.ChatMessage{Role: models.RoleModel, Text: clean})

		patch := models.MoodPatch{ChatHistory: &history}
		if err := cc.service.UpdateMood(payload.MoodID, patch); err != nil {
			// Reply still goes out; the transcript just missed this turn.
			cc.logger.Errorf(providers.TypeApp, "Chat history write-back failed: %s", err)
		}
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: clean, Suggestions: suggestions})
}
