package messenger

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"service-desk-bot/internal/metrics"
	"service-desk-bot/internal/model"
	pkgTelegram "service-desk-bot/pkg/telegram"
)

func (m *implMessenger) Typing(ctx context.Context, chatID int64) {
	err := m.bot.SendChatAction(ctx, chatID, tgbotapi.ChatTyping)
	metrics.RecordOutbound(pkgTelegram.MethodSendChatAction, err)
	if err != nil {
		m.l.Warnf(ctx, "internal.messenger.Typing: chat_id=%d: %v", chatID, err)
	}
}

func (m *implMessenger) Send(ctx context.Context, reply model.Reply) {
	err := m.bot.SendMessage(ctx, pkgTelegram.SendMessageRequest{
		ChatID:                reply.ChatID,
		Text:                  reply.Text,
		ParseMode:             reply.ParseMode,
		DisableWebPagePreview: true,
		ReplyMarkup:           reply.Keyboard,
	})
	metrics.RecordOutbound(pkgTelegram.MethodSendMessage, err)
	if err != nil {
		m.l.Warnf(ctx, "internal.messenger.Send: chat_id=%d: %v", reply.ChatID, err)
		return
	}
	m.l.Debugf(ctx, "internal.messenger.Send: delivered to chat_id=%d", reply.ChatID)
}
