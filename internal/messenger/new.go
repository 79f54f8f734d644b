package messenger

import (
	"context"

	"service-desk-bot/internal/model"
	pkgLog "service-desk-bot/pkg/log"
	pkgTelegram "service-desk-bot/pkg/telegram"
)

// Messenger delivers replies at most once and never reports failures to the caller.
type Messenger interface {
	// Typing shows the "typing" chat action. Best effort.
	Typing(ctx context.Context, chatID int64)
	// Send makes exactly one sendMessage attempt for reply.
	Send(ctx context.Context, reply model.Reply)
}

type implMessenger struct {
	l   pkgLog.Logger
	bot *pkgTelegram.Bot
}

// New creates a Messenger on top of the Bot API client.
func New(l pkgLog.Logger, bot *pkgTelegram.Bot) Messenger {
	return &implMessenger{
		l:   l,
		bot: bot,
	}
}
