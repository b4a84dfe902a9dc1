package dialogue

import "strings"

// Canned replies served when the model is unreachable or misbehaves. Each
// one carries the suggestion marker so downstream parsing never branches on
// the failure path.
var fallbacks = map[string]string{
	"great": "That energy is wonderful to see. Hold on to whatever sparked it today.\n" +
		SuggestionMarker + " What made today stand out? | Who would you share this with? | How can you carry this into tomorrow?",
	"good": "Glad to hear things are going well. Steady days like this deserve some credit too.\n" +
		SuggestionMarker + " What went smoothly today? | What are you looking forward to? | What small win should you celebrate?",
	"neutral": "An even keel is nothing to dismiss. Sometimes ordinary is exactly enough.\n" +
		SuggestionMarker + " What would make today feel brighter? | What is on your mind right now? | What would you like to do next?",
	"down": "I'm sorry today feels heavy. You showed up here, and that counts for something.\n" +
		SuggestionMarker + " What is weighing on you most? | What has helped you before? | Who could you reach out to today?",
	"unhappy": "That sounds really hard. Your feelings are valid, and they won't last forever.\n" +
		SuggestionMarker + " What happened that hurt? | What do you need right now? | What is one tiny kind thing you could do for yourself?",
	"angry": "Anger usually points at something that matters to you. It's okay to feel it fully.\n" +
		SuggestionMarker + " What set this off? | What would help you cool down? | What boundary might need defending?",
	"scared": "Fear is exhausting to carry alone. You're safe here, take it one breath at a time.\n" +
		SuggestionMarker + " What feels most uncertain? | What is within your control? | What has gotten you through fear before?",
}

var genericFallback = "Thank you for checking in. Whatever you're feeling right now is okay to feel.\n" +
	SuggestionMarker + " How has your day been so far? | What is taking up your headspace? | What would feel good right now?"

// Fallback returns the canned reply for a mood label, or a generic one.
func Fallback(moodLabel string) string {
	if text, ok := fallbacks[strings.ToLower(strings.TrimSpace(moodLabel))]; ok {
		return text
	}
	return genericFallback
}
