package router

import "strings"

// Classify maps text to exactly one Intent. Empty text falls through to RouterFallbackIntent.
func (r *KeywordRouter) Classify(text string) Intent {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return RouterFallbackIntent
	}

	for _, rl := range r.rules {
		if rl.match(lowered) {
			return rl.intent
		}
	}

	return RouterFallbackIntent
}
