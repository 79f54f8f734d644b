package router

// Menu button labels. The same strings are shown on the reply keyboard.
const (
	LabelSubmitRequest = "📝 Подати заявку"
	LabelDiagnostics   = "🔧 Діагностика (опис)"
	LabelSupport       = "🆘 Підтримка"
	LabelBackToMenu    = "⬅️ Назад до меню"
)

// Trigger phrases, lower case. Matching is by substring.
const (
	CommandStart = "/start"

	PhraseSubmitRequest = "подати заявку"
	PhraseDiagnostics   = "діагностика (опис)"
	PhraseSupport       = "підтримка"
)

const RouterFallbackIntent = IntentForwardToAdmin
