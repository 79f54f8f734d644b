package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"service-desk-bot/pkg/telegram"
)

func TestBot(t *testing.T) {
	var lastPayload map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		lastPayload = map[string]interface{}{}
		json.NewDecoder(r.Body).Decode(&lastPayload)

		if strings.HasSuffix(path, "/setWebhook") {
			if lastPayload["url"] == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "error_code": 400, "description": "invalid url"}`))
				return
			}
			if lastPayload["url"] == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/deleteWebhook") || strings.HasSuffix(path, "/sendChatAction") {
			w.Write([]byte(`{"ok": true, "result": true}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			text, _ := lastPayload["text"].(string)
			if text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			if text == "cause_not_ok" {
				w.Write([]byte(`{"ok": false, "description": "soft failure"}`))
				return
			}
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	ctx := context.Background()
	bot := telegram.NewBot("test-token", 0)
	bot.SetAPIURL(ts.URL)

	t.Run("SetWebhook Success", func(t *testing.T) {
		err := bot.SetWebhook(ctx, telegram.SetWebhookRequest{
			URL:         "https://example.com/webhook/test-token",
			SecretToken: "s3cret",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastPayload["secret_token"] != "s3cret" {
			t.Errorf("expected secret_token in payload, got %v", lastPayload)
		}
	})

	t.Run("SetWebhook Without Secret", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, telegram.SetWebhookRequest{URL: "https://example.com/webhook/x"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := lastPayload["secret_token"]; ok {
			t.Errorf("secret_token must be omitted when empty, got %v", lastPayload)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, telegram.SetWebhookRequest{URL: "cause_error"})
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SetWebhook HTTP Failed", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, telegram.SetWebhookRequest{URL: "cause_500"}); err == nil {
			t.Fatalf("expected http error")
		}
	})

	t.Run("DeleteWebhook Success", func(t *testing.T) {
		if err := bot.DeleteWebhook(ctx, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastPayload["drop_pending_updates"] != true {
			t.Errorf("expected drop_pending_updates=true, got %v", lastPayload)
		}
	})

	t.Run("SendChatAction Success", func(t *testing.T) {
		if err := bot.SendChatAction(ctx, 42, tgbotapi.ChatTyping); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastPayload["action"] != "typing" || lastPayload["chat_id"] != float64(42) {
			t.Errorf("unexpected payload: %v", lastPayload)
		}
	})

	t.Run("SendMessage With Keyboard", func(t *testing.T) {
		keyboard := tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton("Menu")),
		)
		err := bot.SendMessage(ctx, telegram.SendMessageRequest{
			ChatID:                12345,
			Text:                  "Hello",
			ParseMode:             tgbotapi.ModeHTML,
			DisableWebPagePreview: true,
			ReplyMarkup:           &keyboard,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		markup, ok := lastPayload["reply_markup"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected reply_markup object, got %v", lastPayload["reply_markup"])
		}
		if _, ok := markup["keyboard"]; !ok {
			t.Errorf("expected keyboard rows in reply_markup, got %v", markup)
		}
		if lastPayload["parse_mode"] != "HTML" {
			t.Errorf("expected parse_mode HTML, got %v", lastPayload["parse_mode"])
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(ctx, telegram.SendMessageRequest{ChatID: 12345, Text: "cause_error"})
		if err == nil || !strings.Contains(err.Error(), "invalid text") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage Not OK", func(t *testing.T) {
		err := bot.SendMessage(ctx, telegram.SendMessageRequest{ChatID: 12345, Text: "cause_not_ok"})
		if err == nil || !strings.Contains(err.Error(), "soft failure") {
			t.Fatalf("expected ok=false to be an error, got: %v", err)
		}
	})

	t.Run("Transport Error Hides Token", func(t *testing.T) {
		const token = "123456:SECRET-TOKEN"
		badBot := telegram.NewBot(token, 0)
		badBot.SetAPIURL("http://127.0.0.1:1/bot" + token)

		errs := []error{
			badBot.SendMessage(ctx, telegram.SendMessageRequest{ChatID: 12345, Text: "fail"}),
			badBot.SendChatAction(ctx, 12345, "typing"),
			badBot.SetWebhook(ctx, telegram.SetWebhookRequest{URL: "https://example.com/webhook/x"}),
			badBot.DeleteWebhook(ctx, false),
		}
		for _, err := range errs {
			if err == nil {
				t.Fatalf("expected connection failure")
			}
			if strings.Contains(err.Error(), token) {
				t.Errorf("error leaks bot token: %v", err)
			}
		}
	})

	t.Run("Malformed API URL Hides Token", func(t *testing.T) {
		const token = "123456:SECRET-TOKEN"
		badBot := telegram.NewBot(token, 0)
		badBot.SetAPIURL("http://bad host/bot" + token)

		err := badBot.SendMessage(ctx, telegram.SendMessageRequest{ChatID: 12345, Text: "fail"})
		if err == nil {
			t.Fatalf("expected request creation failure")
		}
		if strings.Contains(err.Error(), token) {
			t.Errorf("error leaks bot token: %v", err)
		}
	})

	t.Run("Invalid API URL logic", func(t *testing.T) {
		badBot := telegram.NewBot("test", 0)
		badBot.SetAPIURL("http://invalid-url.local:1234")
		if err := badBot.SendMessage(ctx, telegram.SendMessageRequest{ChatID: 12345, Text: "fail"}); err == nil {
			t.Errorf("expected network failure on invalid domain")
		}
	})
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<b>bold</b>", "&lt;b&gt;bold&lt;/b&gt;"},
		{"Tom & Jerry", "Tom &amp; Jerry"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := telegram.EscapeHTML(tt.in); got != tt.want {
			t.Errorf("EscapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
