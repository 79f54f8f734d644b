package model

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Reply is a single outbound message. It has no identity beyond one send.
type Reply struct {
	ChatID    int64
	Text      string
	ParseMode string
	Keyboard  *tgbotapi.ReplyKeyboardMarkup
}

// Sender identifies who wrote an inbound message.
type Sender struct {
	ChatID    int64
	Username  string
	FirstName string
	LastName  string
}

// DisplayName joins first and last name, skipping empty parts.
func (s Sender) DisplayName() string {
	switch {
	case s.FirstName != "" && s.LastName != "":
		return s.FirstName + " " + s.LastName
	case s.FirstName != "":
		return s.FirstName
	default:
		return s.LastName
	}
}
