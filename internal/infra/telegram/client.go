// internal/infra/telegram/client.go
package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

// NewBot creates a send-only bot. It never polls for updates, so the process
// receives no inbound Telegram traffic.
func NewBot(token string, timeout time.Duration) (*telebot.Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		Token:   token,
		Offline: true,
		Client:  newHTTPClient(timeout),
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return b, nil
}

// TelebotAdapter implements the domain Client on top of gopkg.in/telebot.v3.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends text to the chat identified by chatID.
func (tba *TelebotAdapter) SendMessage(chatID string, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}
	_, err := tba.bot.Send(recipient(chatID), text, options)
	return err
}

// chatUsername addresses a public chat by its @username.
type chatUsername string

func (u chatUsername) Recipient() string { return string(u) }

func recipient(chatID string) telebot.Recipient {
	chatID = strings.TrimSpace(chatID)
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return telebot.ChatID(id)
	}
	return chatUsername(chatID)
}
