package telegram

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"service-desk-bot/internal/metrics"
	"service-desk-bot/internal/model"
	"service-desk-bot/internal/support"
	"service-desk-bot/internal/webhook"
	pkgLog "service-desk-bot/pkg/log"
	pkgResponse "service-desk-bot/pkg/response"
	pkgTelegram "service-desk-bot/pkg/telegram"
)

type handler struct {
	l        pkgLog.Logger
	uc       support.UseCase
	security *webhook.SecurityValidator
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// Authenticated updates are always acknowledged with 200 so Telegram does not redeliver them.
//
// @Summary Telegram webhook
// @Description Receives a Telegram update, replies to the sender and forwards free text to the admin chat.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param token path string true "Bot token"
// @Param X-Telegram-Bot-Api-Secret-Token header string false "Secret token set with setWebhook"
// @Success 200 {object} response.AckResp
// @Failure 401 {object} response.Resp "Secret token mismatch"
// @Failure 403 {object} response.Resp "Path token mismatch"
// @Router /webhook/{token} [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.Verify(c.Param("token"), c.GetHeader(pkgTelegram.SecretTokenHeader)); err != nil {
		h.l.Warnf(ctx, "telegram handler: rejected update from %s: %v", c.ClientIP(), err)
		if errors.Is(err, webhook.ErrTokenMismatch) {
			metrics.RecordUpdate(metrics.ResultForbidden)
			pkgResponse.Forbidden(c)
			return
		}
		metrics.RecordUpdate(metrics.ResultUnauthorized)
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to parse update: %v", err)
		metrics.RecordUpdate(metrics.ResultMalformed)
		pkgResponse.Ack(c)
		return
	}

	// Ignore non-message updates (edited_message, callback_query, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		h.l.Debugf(ctx, "telegram handler: ignoring update_id=%d", update.UpdateID)
		metrics.RecordUpdate(metrics.ResultIgnored)
		pkgResponse.Ack(c)
		return
	}

	// Outbound calls must finish even if Telegram drops the connection.
	bgCtx := context.WithoutCancel(ctx)
	if _, err := h.uc.HandleMessage(bgCtx, toInput(update.Message)); err != nil {
		h.l.Errorf(bgCtx, "telegram handler: HandleMessage failed for update_id=%d: %v", update.UpdateID, err)
	}

	metrics.RecordUpdate(metrics.ResultAccepted)
	pkgResponse.Ack(c)
}

func toInput(msg *pkgTelegram.Message) support.HandleMessageInput {
	sender := model.Sender{ChatID: msg.Chat.ID}
	if msg.From != nil {
		sender.Username = msg.From.Username
		sender.FirstName = msg.From.FirstName
		sender.LastName = msg.From.LastName
	}
	return support.HandleMessageInput{
		Sender: sender,
		Text:   msg.Text,
	}
}
