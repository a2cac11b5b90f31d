// internal/infra/telegram/client.go
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

// BotSettings configures the outbound-only bot.
type BotSettings struct {
	Token  string
	APIURL string
	// Offline skips the getMe handshake. Used in tests.
	Offline bool
	Client  *http.Client
}

// NewBot creates a telebot instance without a poller: this bot only sends.
func NewBot(settings BotSettings, logger *logrus.Entry) (*telebot.Bot, error) {
	pref := telebot.Settings{
		URL:     settings.APIURL,
		Token:   settings.Token,
		Offline: settings.Offline,
		Client:  settings.Client,
		OnError: func(err error, c telebot.Context) { // Global error handler
			logger.WithError(err).Error("telebot error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return bot, nil
}

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot     *telebot.Bot
	limiter *rate.Limiter
}

// NewTelebotAdapter paces sends to one message per interval.
// A zero interval disables pacing.
func NewTelebotAdapter(b *telebot.Bot, interval time.Duration) *TelebotAdapter {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if interval > 0 {
		limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
	return &TelebotAdapter{bot: b, limiter: limiter}
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(ctx context.Context, recipientChatID int64, text string, options *telebot.SendOptions) error {
	if err := tba.limiter.Wait(ctx); err != nil {
		return err
	}
	if options == nil {
		options = &telebot.SendOptions{}
	}

	_, err := tba.bot.Send(telebot.ChatID(recipientChatID), text, options)
	return err
}
