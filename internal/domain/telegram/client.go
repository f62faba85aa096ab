package telegram

import "gopkg.in/telebot.v3"

// Client sends text into a Telegram chat. chatID is either a numeric chat id
// or a public @username. Implementations report any delivery problem as a
// non-nil error and consume no response payload.
type Client interface {
	SendMessage(chatID string, text string, options *telebot.SendOptions) error
}
