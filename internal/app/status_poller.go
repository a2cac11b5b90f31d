// internal/app/status_poller.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/notification"

	"github.com/sirupsen/logrus"
)

// StatusSource returns the raw decoded response of the review API.
type StatusSource interface {
	FetchStatuses(ctx context.Context, fromDate int64) (any, error)
}

// Notifier delivers a text to the configured chat.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Waiter blocks until the next poll cycle is due.
type Waiter interface {
	Wait(ctx context.Context) error
}

const errorMessagePrefix = "Сбой в работе программы: "

// StatusPoller runs the fetch, validate, format, notify, sleep cycle.
// It is driven by a single goroutine; state is not guarded.
type StatusPoller struct {
	source   StatusSource
	notifier Notifier
	waiter   Waiter
	logger   *logrus.Entry

	state  notification.State
	cursor int64
}

// NewStatusPoller starts the cursor at startTime, so only changes made
// after the bot started are reported.
func NewStatusPoller(source StatusSource, notifier Notifier, waiter Waiter, logger *logrus.Entry, startTime time.Time) *StatusPoller {
	return &StatusPoller{
		source:   source,
		notifier: notifier,
		waiter:   waiter,
		logger:   logger,
		cursor:   startTime.Unix(),
	}
}

// Cursor returns the from_date used for the next request.
func (p *StatusPoller) Cursor() int64 {
	return p.cursor
}

// State returns a copy of what has been delivered so far.
func (p *StatusPoller) State() notification.State {
	return p.state
}

// Run polls until ctx is cancelled. It never stops because of a cycle error.
func (p *StatusPoller) Run(ctx context.Context) error {
	p.logger.WithField("from_date", p.cursor).Info("Homework status poller started")
	for {
		p.Cycle(ctx)
		if err := p.waiter.Wait(ctx); err != nil {
			p.logger.WithError(err).Info("Homework status poller stopped")
			return err
		}
	}
}

// Cycle performs one poll. All errors are handled here.
func (p *StatusPoller) Cycle(ctx context.Context) {
	logCtx := p.logger.WithField("from_date", p.cursor)

	err := p.poll(ctx, logCtx)
	if err == nil {
		return
	}
	if ctx.Err() != nil {
		logCtx.WithError(err).Warn("Poll cycle interrupted by shutdown")
		return
	}

	if errors.Is(err, ErrDelivery) {
		// Nothing to report through a transport that just failed.
		logCtx.WithError(err).Error("Failed to deliver homework status")
		return
	}

	var statusErr *homework.EndpointStatusError
	if errors.As(err, &statusErr) {
		logCtx = logCtx.WithFields(logrus.Fields{
			"status_code": statusErr.StatusCode,
			"body":        statusErr.Body,
		})
	}
	logCtx.WithError(err).Error("Homework poll cycle failed")
	p.reportError(ctx, logCtx, err)
}

func (p *StatusPoller) poll(ctx context.Context, logCtx *logrus.Entry) error {
	raw, err := p.source.FetchStatuses(ctx, p.cursor)
	if err != nil {
		return fmt.Errorf("request homework statuses: %w", err)
	}

	batch, err := homework.CheckResponse(raw)
	if err != nil {
		return err
	}

	if len(batch.Homeworks) == 0 {
		logCtx.Debug("No new homework statuses")
		p.cursor = batch.CurrentDate
		return nil
	}

	message, err := homework.ParseStatus(batch.Homeworks[0])
	if err != nil {
		return err
	}

	if p.state.IsNewMessage(message) {
		if err := p.notifier.Notify(ctx, message); err != nil {
			return err
		}
		p.state.MessageSent(message)
	} else {
		logCtx.Debug("Homework status unchanged, nothing to send")
	}

	p.cursor = batch.CurrentDate
	return nil
}

func (p *StatusPoller) reportError(ctx context.Context, logCtx *logrus.Entry, cycleErr error) {
	message := errorMessagePrefix + cycleErr.Error()
	if !p.state.IsNewError(message) {
		logCtx.Debug("Error already reported to chat")
		return
	}
	if err := p.notifier.Notify(ctx, message); err != nil {
		logCtx.WithError(err).Warn("Failed to report error to chat")
		return
	}
	p.state.ErrorSent(message)
}
