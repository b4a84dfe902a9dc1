package dialogue

import "strings"

// SuggestionMarker separates free-form reply text from the pipe-delimited
// follow-up prompts. Fallback replies carry it too, so parsing is uniform
// across the success and failure paths.
const SuggestionMarker = "[SUGGESTIONS]:"

// ParseSuggestions splits a reply on the suggestion marker. Without a marker
// the whole text is the clean reply and no suggestions are returned. Empty
// fragments left over from sloppy model formatting around the pipes are
// dropped.
func ParseSuggestions(text string) (string, []string) {
	clean, rest, found := strings.Cut(text, SuggestionMarker)
	clean = strings.TrimSpace(clean)
	if !found {
		return clean, []string{}
	}

	suggestions := []string{}
	for _, s := range strings.Split(rest, "|") {
		s = strings.TrimSpace(s)
		if s != "" {
			suggestions = append(suggestions, s)
		}
	}
	return clean, suggestions
}
