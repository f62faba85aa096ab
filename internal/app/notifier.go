package app

import (
	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Notifier delivers messages to the configured chat.
type Notifier struct {
	client domainTelegram.Client
	chatID string
	logger *logrus.Entry
}

func NewNotifier(client domainTelegram.Client, chatID string, logger *logrus.Entry) *Notifier {
	return &Notifier{
		client: client,
		chatID: chatID,
		logger: logger.WithField("component", "notifier"),
	}
}

// Notify sends message. Any failure of the chat client is returned as a
// Delivery error; callers must not try to report it through the same channel.
func (n *Notifier) Notify(message string) error {
	n.logger.Debug("Sending chat message")
	if err := n.client.SendMessage(n.chatID, message, &telebot.SendOptions{ParseMode: telebot.ModeDefault}); err != nil {
		return &homework.Error{Kind: homework.KindDelivery, Msg: "send telegram message", Err: err}
	}
	n.logger.WithField("message", message).Debug("Bot sent message")
	return nil
}
