package notify

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"portfolio-twin/internal/model"
)

// DirectNotifier sends mail inside the request.
type DirectNotifier struct {
	mailer Mailer
	log    *zap.Logger
}

func NewDirectNotifier(mailer Mailer, log *zap.Logger) *DirectNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &DirectNotifier{mailer: mailer, log: log}
}

func (n *DirectNotifier) Notify(ctx context.Context, inquiry model.ContactInquiry) (dispatched bool) {
	defer recoverNotify(n.log, &dispatched)

	if n.mailer == nil || !n.mailer.Configured() {
		n.log.Info("mail credentials missing, skipping notification", zap.Uint("inquiry_id", inquiry.ID))
		return false
	}
	if err := n.mailer.Send(ctx, inquiry); err != nil {
		if errors.Is(err, ErrMailNotConfigured) {
			n.log.Info("mail credentials missing, skipping notification", zap.Uint("inquiry_id", inquiry.ID))
			return false
		}
		n.log.Warn("notification mail failed", zap.Uint("inquiry_id", inquiry.ID), zap.Error(err))
		return false
	}
	return true
}

// JobPublisher is satisfied by *rabbitmq.Publisher.
type JobPublisher interface {
	Publish(ctx context.Context, payload interface{}) error
}

// QueueNotifier hands the inquiry to the notification worker through the broker.
// The mailer is the one the worker sends with; jobs are only published when it can send.
type QueueNotifier struct {
	publisher JobPublisher
	mailer    Mailer
	log       *zap.Logger
}

func NewQueueNotifier(publisher JobPublisher, mailer Mailer, log *zap.Logger) *QueueNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &QueueNotifier{publisher: publisher, mailer: mailer, log: log}
}

func (n *QueueNotifier) Notify(ctx context.Context, inquiry model.ContactInquiry) (dispatched bool) {
	defer recoverNotify(n.log, &dispatched)

	if n.mailer == nil || !n.mailer.Configured() {
		n.log.Info("mail credentials missing, skipping notification", zap.Uint("inquiry_id", inquiry.ID))
		return false
	}
	if n.publisher == nil {
		n.log.Warn("notification queue unavailable", zap.Uint("inquiry_id", inquiry.ID))
		return false
	}
	if err := n.publisher.Publish(ctx, inquiry); err != nil {
		n.log.Warn("enqueue notification failed", zap.Uint("inquiry_id", inquiry.ID), zap.Error(err))
		return false
	}
	return true
}

type DisabledNotifier struct{}

func (DisabledNotifier) Notify(context.Context, model.ContactInquiry) bool {
	return false
}

func recoverNotify(log *zap.Logger, dispatched *bool) {
	if r := recover(); r != nil {
		log.Error("notification panicked", zap.Any("panic", r))
		*dispatched = false
	}
}
