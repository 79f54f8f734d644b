package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// EscapeHTML escapes <, > and & so user text can be embedded in an HTML parse_mode message.
func EscapeHTML(text string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, text)
}
