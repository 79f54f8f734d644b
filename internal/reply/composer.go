package reply

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"service-desk-bot/internal/model"
	"service-desk-bot/internal/router"
	"service-desk-bot/pkg/telegram"
)

// Input is what the composer needs to know about one inbound message.
type Input struct {
	Intent router.Intent
	Text   string
	Sender model.Sender
}

// Composer turns a classified message into outbound replies.
type Composer struct {
	adminChatID int64
}

// New creates a Composer. adminChatID 0 disables admin forwarding.
func New(adminChatID int64) *Composer {
	return &Composer{adminChatID: adminChatID}
}

// Compose returns the replies in send order. The admin notification, when any, comes first.
func (c *Composer) Compose(in Input) []model.Reply {
	chatID := in.Sender.ChatID

	switch in.Intent {
	case router.IntentStart, router.IntentBackToMenu:
		return []model.Reply{menuReply(chatID, TextWelcome)}
	case router.IntentSubmitRequest:
		return []model.Reply{menuReply(chatID, TextSubmitRequest)}
	case router.IntentDiagnosticsInfo:
		return []model.Reply{menuReply(chatID, TextDiagnostics)}
	case router.IntentSupport:
		return []model.Reply{menuReply(chatID, TextSupport)}
	}

	var replies []model.Reply
	if c.adminChatID != 0 {
		replies = append(replies, model.Reply{
			ChatID:    c.adminChatID,
			Text:      AdminNotification(in.Sender, in.Text),
			ParseMode: tgbotapi.ModeHTML,
		})
	}
	return append(replies, menuReply(chatID, TextAcknowledgment))
}

// AdminNotification formats a forwarded message. User-controlled fields are HTML-escaped.
func AdminNotification(sender model.Sender, text string) string {
	username := placeholderMissing
	if sender.Username != "" {
		username = "@" + telegram.EscapeHTML(sender.Username)
	}

	name := placeholderMissing
	if displayName := sender.DisplayName(); displayName != "" {
		name = telegram.EscapeHTML(displayName)
	}

	return fmt.Sprintf(adminNotificationFormat, username, name, sender.ChatID, telegram.EscapeHTML(text))
}

func menuReply(chatID int64, text string) model.Reply {
	return model.Reply{
		ChatID:    chatID,
		Text:      text,
		ParseMode: tgbotapi.ModeHTML,
		Keyboard:  MainMenu(),
	}
}
