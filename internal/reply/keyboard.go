package reply

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"service-desk-bot/internal/router"
)

// MainMenu builds the reply keyboard shown with every user-facing reply.
func MainMenu() *tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(router.LabelSubmitRequest)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(router.LabelDiagnostics)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(router.LabelSupport)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(router.LabelBackToMenu)),
	)
	return &keyboard
}
