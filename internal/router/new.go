package router

import (
	"strings"
)

// Router is the interface for message classification.
type Router interface {
	Classify(text string) Intent
}

// KeywordRouter classifies text by prefix and substring rules, first match wins.
type KeywordRouter struct {
	rules []rule
}

var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter with the menu rules.
func New() *KeywordRouter {
	backLabel := strings.ToLower(LabelBackToMenu)

	return &KeywordRouter{
		rules: []rule{
			{
				intent: IntentStart,
				match: func(lowered string) bool {
					return strings.HasPrefix(lowered, CommandStart) || lowered == backLabel
				},
			},
			{intent: IntentSubmitRequest, match: containsPhrase(PhraseSubmitRequest)},
			{intent: IntentDiagnosticsInfo, match: containsPhrase(PhraseDiagnostics)},
			{intent: IntentSupport, match: containsPhrase(PhraseSupport)},
		},
	}
}

func containsPhrase(phrase string) func(string) bool {
	return func(lowered string) bool {
		return strings.Contains(lowered, phrase)
	}
}
