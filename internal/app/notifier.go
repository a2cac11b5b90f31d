// internal/app/notifier.go
package app

import (
	"context"
	"fmt"

	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// ErrDelivery wraps every failure to hand a message to Telegram.
var ErrDelivery = fmt.Errorf("telegram delivery failed")

// TelegramNotifier sends texts to the single configured chat.
type TelegramNotifier struct {
	telegramClient domainTelegram.Client
	chatID         int64
	logger         *logrus.Entry
}

func NewTelegramNotifier(tc domainTelegram.Client, chatID int64, logger *logrus.Entry) *TelegramNotifier {
	return &TelegramNotifier{
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger.WithField("chat_id", chatID),
	}
}

// Notify delivers text to the chat. Failures wrap ErrDelivery.
func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	n.logger.Info("Sending message to telegram")
	if err := n.telegramClient.SendMessage(ctx, n.chatID, text, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	n.logger.WithField("text", text).Info("Message sent")
	return nil
}
