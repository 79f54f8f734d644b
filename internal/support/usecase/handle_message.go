package usecase

import (
	"context"

	"service-desk-bot/internal/metrics"
	"service-desk-bot/internal/reply"
	"service-desk-bot/internal/support"
)

// HandleMessage runs typing, classification, composition and delivery for one message.
// Delivery failures are absorbed by the messenger, so the only error is a missing chat.
func (uc *implUseCase) HandleMessage(ctx context.Context, input support.HandleMessageInput) (support.HandleMessageOutput, error) {
	chatID := input.Sender.ChatID
	if chatID == 0 {
		return support.HandleMessageOutput{}, support.ErrNoChat
	}

	uc.msg.Typing(ctx, chatID)

	intent := uc.router.Classify(input.Text)
	metrics.RecordIntent(string(intent))
	uc.l.Infof(ctx, "internal.support.usecase.HandleMessage: chat_id=%d intent=%s", chatID, intent)

	replies := uc.composer.Compose(reply.Input{
		Intent: intent,
		Text:   input.Text,
		Sender: input.Sender,
	})
	for _, r := range replies {
		uc.msg.Send(ctx, r)
	}

	return support.HandleMessageOutput{
		Intent:  intent,
		Replies: len(replies),
	}, nil
}
