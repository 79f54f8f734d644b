package webhook

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"service-desk-bot/internal/messenger"
	"service-desk-bot/internal/model"
	"service-desk-bot/internal/reply"
	pkgLog "service-desk-bot/pkg/log"
	pkgTelegram "service-desk-bot/pkg/telegram"
)

// Registrar points Telegram at this service on startup and detaches it on shutdown.
type Registrar struct {
	l      pkgLog.Logger
	bot    *pkgTelegram.Bot
	msg    messenger.Messenger
	config RegistrarConfig
}

func NewRegistrar(l pkgLog.Logger, bot *pkgTelegram.Bot, msg messenger.Messenger, cfg RegistrarConfig) *Registrar {
	return &Registrar{
		l:      l,
		bot:    bot,
		msg:    msg,
		config: cfg,
	}
}

// Register clears any previous webhook, sets the new one and notifies the admin.
// Every step is attempted once. Failures are logged and never stop the service.
func (r *Registrar) Register(ctx context.Context) {
	if err := r.bot.DeleteWebhook(ctx, r.config.DropPendingUpdates); err != nil {
		r.l.Warnf(ctx, "internal.webhook.Register: %v", err)
	}

	err := r.bot.SetWebhook(ctx, pkgTelegram.SetWebhookRequest{
		URL:         r.config.URL,
		SecretToken: r.config.Secret,
	})
	if err != nil {
		r.l.Errorf(ctx, "internal.webhook.Register: %v", err)
	} else {
		r.l.Infof(ctx, "Telegram webhook registered at %s", redact(r.config.URL))
	}

	if r.config.AdminChatID != 0 {
		r.msg.Send(ctx, model.Reply{
			ChatID:    r.config.AdminChatID,
			Text:      reply.TextBotStarted,
			ParseMode: tgbotapi.ModeHTML,
		})
	}
}

// Unregister removes the webhook. Pending updates are kept.
func (r *Registrar) Unregister(ctx context.Context) {
	if err := r.bot.DeleteWebhook(ctx, false); err != nil {
		r.l.Warnf(ctx, "internal.webhook.Unregister: %v", err)
		return
	}
	r.l.Info(ctx, "Telegram webhook removed")
}

// redact hides the bot token in the last path segment of a webhook URL.
func redact(url string) string {
	i := strings.LastIndex(url, "/")
	if i < 0 || i == len(url)-1 {
		return url
	}
	return url[:i+1] + "***"
}
