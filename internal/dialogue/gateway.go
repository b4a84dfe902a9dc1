// Package dialogue wraps the hosted companion model behind a gateway that
// never fails: any transport or response problem degrades to a canned reply
// so the caller always has something to show.
package dialogue

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"moodd/internal/models"
	"moodd/internal/providers"
	"moodd/internal/structures"
)

// minReplyChars guards against empty or truncated model output.
const minReplyChars = 5

const defaultGreeting = "Hello, I could use some company right now."

type GatewayInterface interface {
	ChatResponse(ctx context.Context, apiKey, moodLabel string, history []models.ChatMessage, userInput string) string
}

type Gateway struct {
	conf    *structures.Config
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	client  *http.Client
}

func NewGateway(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) GatewayInterface {
	return &Gateway{
		conf:    conf,
		logger:  logger,
		metrics: metrics,
		client:  &http.Client{Timeout: conf.Dialogue.Timeout},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func systemInstruction(moodLabel string) string {
	return fmt.Sprintf(
		"You are a warm, concise companion for someone who is feeling %s right now. "+
			"Reply in at most three short sentences. After your reply, on a new line, "+
			"write exactly %q followed by exactly 3 follow-up prompts separated by the | character.",
		moodLabel, SuggestionMarker)
}

// ChatResponse sends the conversation to the companion model and returns its
// reply. On any failure it returns a deterministic fallback keyed by mood
// label, so the result always carries the suggestion marker.
func (g *Gateway) ChatResponse(ctx context.Context, apiKey, moodLabel string, history []models.ChatMessage, userInput string) string {
	if apiKey == "" {
		g.logger.Warnf(providers.TypeApp, "Dialogue request without API key, serving fallback")
		g.metrics.IncChatFallbacks()
		return Fallback(moodLabel)
	}

	reply, err := g.send(ctx, apiKey, moodLabel, history, userInput)
	if err != nil {
		g.logger.Errorf(providers.TypeApp, "Dialogue request failed: %s", err)
		g.metrics.IncChatFallbacks()
		return Fallback(moodLabel)
	}
	if len(strings.TrimSpace(reply)) < minReplyChars {
		g.logger.Warnf(providers.TypeApp, "Dialogue reply too short, serving fallback")
		g.metrics.IncChatFallbacks()
		return Fallback(moodLabel)
	}
	return reply
}

func (g *Gateway) send(ctx context.Context, apiKey, moodLabel string, history []models.ChatMessage, userInput string) (string, error) {
	contents, live := buildTranscript(moodLabel, history, userInput)
	contents = append(contents, content{Role: models.RoleUser, Parts: []part{{Text: live}}})

	payload := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction(moodLabel)}}},
		Contents:          contents,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimSuffix(g.conf.Dialogue.BaseURL, "/"), g.conf.Dialogue.Model, apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("model endpoint returned status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("model endpoint returned no candidates")
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// buildTranscript adapts the stored history to the wire contract: the
// conversation must open with a user turn, and the final message is either
// the explicit input, a trailing user turn popped off the history, or a
// default greeting.
func buildTranscript(moodLabel string, history []models.ChatMessage, userInput string) ([]content, string) {
	turns := make([]models.ChatMessage, len(history))
	copy(turns, history)

	if len(turns) > 0 && turns[0].Role == models.RoleModel {
		opener := models.ChatMessage{
			Role: models.RoleUser,
			Text: fmt.Sprintf("I am feeling %s.", moodLabel),
		}
		turns = append([]models.ChatMessage{opener}, turns...)
	}

	live := userInput
	if live == "" {
		if n := len(turns); n > 0 && turns[n-1].Role == models.RoleUser {
			live = turns[n-1].Text
			turns = turns[:n-1]
		} else {
			live = defaultGreeting
		}
	}

	contents := make([]content, 0, len(turns))
	for _, t := range turns {
		contents = append(contents, content{Role: t.Role, Parts: []part{{Text: t.Text}}})
	}
	return contents, live
}
