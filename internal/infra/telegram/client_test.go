package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gopkg.in/telebot.v3"
)

func newTestBot(t *testing.T, h http.HandlerFunc) *telebot.Bot {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	b, err := telebot.NewBot(telebot.Settings{
		URL:     srv.URL,
		Token:   "secret",
		Offline: true,
		Client:  newHTTPClient(0),
	})
	if err != nil {
		t.Fatalf("NewBot() error = %v", err)
	}
	return b
}

func TestSendMessage_Success(t *testing.T) {
	var gotChat, gotText string
	b := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/botsecret/sendMessage" {
			t.Errorf("path = %q, want /botsecret/sendMessage", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		gotChat, _ = body["chat_id"].(string)
		gotText, _ = body["text"].(string)
		w.Write([]byte(`{"ok":true,"result":{"message_id":1,"chat":{"id":42,"type":"private"},"text":"hi"}}`))
	})

	if err := NewTelebotAdapter(b).SendMessage("42", "hi", nil); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if gotChat != "42" {
		t.Errorf("chat_id = %q, want 42", gotChat)
	}
	if gotText != "hi" {
		t.Errorf("text = %q, want hi", gotText)
	}
}

func TestSendMessage_APIError(t *testing.T) {
	b := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})

	if err := NewTelebotAdapter(b).SendMessage("42", "hi", nil); err == nil {
		t.Fatal("expected error when Telegram rejects the message")
	}
}

func TestSendMessage_ChannelUsername(t *testing.T) {
	var gotChat string
	b := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		gotChat, _ = body["chat_id"].(string)
		w.Write([]byte(`{"ok":true,"result":{"message_id":1,"chat":{"id":-100,"type":"channel"},"text":"hi"}}`))
	})

	if err := NewTelebotAdapter(b).SendMessage("@my_channel", "hi", nil); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if gotChat != "@my_channel" {
		t.Errorf("chat_id = %q, want @my_channel", gotChat)
	}
}

func TestRecipient(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12345", "12345"},
		{"-1001234567890", "-1001234567890"},
		{" 42 ", "42"},
		{"@my_channel", "@my_channel"},
	}
	for _, tt := range tests {
		if got := recipient(tt.in).Recipient(); got != tt.want {
			t.Errorf("recipient(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, ok := recipient("-100").(telebot.ChatID); !ok {
		t.Error("numeric id should resolve to telebot.ChatID")
	}
}

func TestNewBot_Offline(t *testing.T) {
	if _, err := NewBot("123:abc", 0); err != nil {
		t.Fatalf("NewBot() error = %v", err)
	}
}
