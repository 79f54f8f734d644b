package telegram

import (
	"github.com/gin-gonic/gin"

	"service-desk-bot/internal/support"
	"service-desk-bot/internal/webhook"
	pkgLog "service-desk-bot/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	uc support.UseCase,
	security *webhook.SecurityValidator,
) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		security: security,
	}
}
