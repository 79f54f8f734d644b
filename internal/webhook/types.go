package webhook

import "service-desk-bot/config"

// SecurityConfig holds the values an inbound update is checked against.
type SecurityConfig struct {
	BotToken string
	// Secret is the secret_token given to setWebhook. Empty disables the header check.
	Secret string
	Mode   config.VerifyMode
}

// RegistrarConfig describes how the webhook is registered with Telegram.
type RegistrarConfig struct {
	URL                string
	Secret             string
	DropPendingUpdates bool
	AdminChatID        int64
}
