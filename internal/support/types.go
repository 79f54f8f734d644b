package support

import (
	"service-desk-bot/internal/model"
	"service-desk-bot/internal/router"
)

// HandleMessageInput is one message-bearing update.
type HandleMessageInput struct {
	Sender model.Sender // Sender.ChatID is where replies go
	Text   string       // may be empty for stickers, photos, etc.
}

// HandleMessageOutput reports what the pipeline did.
type HandleMessageOutput struct {
	Intent  router.Intent
	Replies int // number of send attempts, successful or not
}
