package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a single Bot API call.
const DefaultTimeout = 10 * time.Second

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
// A non-positive timeout selects DefaultTimeout.
func NewBot(token string, timeout time.Duration) *Bot {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, req SetWebhookRequest) error {
	if err := b.call(ctx, MethodSetWebhook, req); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	return nil
}

// DeleteWebhook removes the registered webhook.
func (b *Bot) DeleteWebhook(ctx context.Context, dropPendingUpdates bool) error {
	if err := b.call(ctx, MethodDeleteWebhook, DeleteWebhookRequest{DropPendingUpdates: dropPendingUpdates}); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

// SendMessage sends a text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, req SendMessageRequest) error {
	if err := b.call(ctx, MethodSendMessage, req); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendChatAction shows a status such as "typing" in the chat.
func (b *Bot) SendChatAction(ctx context.Context, chatID int64, action string) error {
	if err := b.call(ctx, MethodSendChatAction, SendChatActionRequest{ChatID: chatID, Action: action}); err != nil {
		return fmt.Errorf("failed to send chat action: %w", err)
	}
	return nil
}

func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", method, stripURL(err, method))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s request: %w", method, stripURL(err, method))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	if resp.StatusCode != http.StatusOK || !apiResp.OK {
		return fmt.Errorf("telegram %s failed (%d): %s", method, resp.StatusCode, apiResp.Description)
	}

	return nil
}

// stripURL drops the request URL from err. The URL path carries the bot token.
func stripURL(err error, method string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = method
	}
	return err
}
