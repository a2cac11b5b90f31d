package app

import (
	"context"
	"errors"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"gopkg.in/telebot.v3"
)

type fakeTelegramClient struct {
	chatID int64
	text   string
	err    error
}

func (c *fakeTelegramClient) SendMessage(_ context.Context, chatID int64, text string, _ *telebot.SendOptions) error {
	c.chatID = chatID
	c.text = text
	return c.err
}

func TestTelegramNotifierSendsToConfiguredChat(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	client := &fakeTelegramClient{}
	n := NewTelegramNotifier(client, 777, logger.WithField("component", "notifier"))

	if err := n.Notify(context.Background(), "hello"); err != nil {
		t.Fatalf("Notify error: %v", err)
	}
	if client.chatID != 777 || client.text != "hello" {
		t.Fatalf("sent %q to %d", client.text, client.chatID)
	}
}

func TestTelegramNotifierWrapsFailures(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	client := &fakeTelegramClient{err: errors.New("telegram: Bad Request: chat not found (400)")}
	n := NewTelegramNotifier(client, 777, logger.WithField("component", "notifier"))

	err := n.Notify(context.Background(), "hello")
	if !errors.Is(err, ErrDelivery) {
		t.Fatalf("expected ErrDelivery, got %v", err)
	}
}
