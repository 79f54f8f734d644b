package reply_test

import (
	"strings"
	"testing"

	"service-desk-bot/internal/model"
	"service-desk-bot/internal/reply"
	"service-desk-bot/internal/router"
)

var sender = model.Sender{ChatID: 42, Username: "jdoe", FirstName: "John", LastName: "Doe"}

func TestComposeMenuIntents(t *testing.T) {
	c := reply.New(999)

	tests := []struct {
		intent router.Intent
		want   string
	}{
		{router.IntentStart, reply.TextWelcome},
		{router.IntentBackToMenu, reply.TextWelcome},
		{router.IntentSubmitRequest, reply.TextSubmitRequest},
		{router.IntentDiagnosticsInfo, reply.TextDiagnostics},
		{router.IntentSupport, reply.TextSupport},
	}

	for _, tt := range tests {
		replies := c.Compose(reply.Input{Intent: tt.intent, Text: "ignored", Sender: sender})
		if len(replies) != 1 {
			t.Fatalf("%s: expected 1 reply, got %d", tt.intent, len(replies))
		}
		r := replies[0]
		if r.ChatID != 42 {
			t.Errorf("%s: expected chat 42, got %d", tt.intent, r.ChatID)
		}
		if r.Text == "" || r.Text != tt.want {
			t.Errorf("%s: unexpected text %q", tt.intent, r.Text)
		}
		if r.Keyboard == nil || len(r.Keyboard.Keyboard) != 4 {
			t.Errorf("%s: expected main menu keyboard", tt.intent)
		}
	}

	distinct := map[string]bool{
		reply.TextWelcome:       true,
		reply.TextSubmitRequest: true,
		reply.TextDiagnostics:   true,
		reply.TextSupport:       true,
	}
	if len(distinct) != 4 {
		t.Errorf("intent texts must be distinct")
	}
}

func TestComposeForwardToAdmin(t *testing.T) {
	t.Run("Admin Configured", func(t *testing.T) {
		replies := reply.New(999).Compose(reply.Input{
			Intent: router.IntentForwardToAdmin,
			Text:   "random question",
			Sender: sender,
		})
		if len(replies) != 2 {
			t.Fatalf("expected 2 replies, got %d", len(replies))
		}

		admin, user := replies[0], replies[1]
		if admin.ChatID != 999 {
			t.Errorf("expected admin chat 999, got %d", admin.ChatID)
		}
		if admin.Keyboard != nil {
			t.Errorf("admin notification must not carry a keyboard")
		}
		for _, part := range []string{"random question", "@jdoe", "John Doe", "42"} {
			if !strings.Contains(admin.Text, part) {
				t.Errorf("admin text %q missing %q", admin.Text, part)
			}
		}

		if user.ChatID != 42 || user.Text != reply.TextAcknowledgment {
			t.Errorf("unexpected acknowledgment %+v", user)
		}
		if user.Keyboard == nil {
			t.Errorf("acknowledgment must carry the main menu")
		}
	})

	t.Run("Admin Not Configured", func(t *testing.T) {
		replies := reply.New(0).Compose(reply.Input{
			Intent: router.IntentForwardToAdmin,
			Text:   "random question",
			Sender: sender,
		})
		if len(replies) != 1 || replies[0].ChatID != 42 {
			t.Fatalf("expected only the acknowledgment, got %+v", replies)
		}
	})
}

func TestAdminNotificationEscapesUserText(t *testing.T) {
	text := reply.AdminNotification(
		model.Sender{ChatID: 7, Username: "a<b>", FirstName: "<i>Eve</i>"},
		`<a href="x">click</a> & more`,
	)

	if strings.Contains(text, "<a href") || strings.Contains(text, "<i>") || strings.Contains(text, "a<b>") {
		t.Errorf("user markup leaked into notification: %q", text)
	}
	for _, part := range []string{"&lt;a href=\"x\"&gt;click&lt;/a&gt; &amp; more", "@a&lt;b&gt;", "&lt;i&gt;Eve&lt;/i&gt;"} {
		if !strings.Contains(text, part) {
			t.Errorf("expected %q in %q", part, text)
		}
	}
	if !strings.Contains(text, "<code>7</code>") {
		t.Errorf("expected formatted chat id, got %q", text)
	}
}

func TestAdminNotificationMissingSenderFields(t *testing.T) {
	text := reply.AdminNotification(model.Sender{ChatID: 1}, "")
	if strings.Count(text, "—") != 2 {
		t.Errorf("expected placeholders for username and name, got %q", text)
	}
}
