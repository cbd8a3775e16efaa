package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"portfolio-twin/internal/model"
	"portfolio-twin/internal/notify"
	"portfolio-twin/internal/platform/rabbitmq"
)

type ackOutcome int

const (
	outcomeAck ackOutcome = iota
	outcomeDrop
)

// NotificationWorker consumes queued contact inquiries and mails them out.
type NotificationWorker struct {
	conn      *amqp.Connection
	mailer    notify.Mailer
	queueName string
	log       *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewNotificationWorker(conn *amqp.Connection, mailer notify.Mailer, queueName string, log *zap.Logger) *NotificationWorker {
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationWorker{
		conn:      conn,
		mailer:    mailer,
		queueName: queueName,
		log:       log,
	}
}

func (w *NotificationWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	ch, err := w.conn.Channel()
	if err != nil {
		return fmt.Errorf("open worker channel failed: %w", err)
	}
	if err := rabbitmq.DeclareQueue(ch, w.queueName); err != nil {
		_ = ch.Close()
		return err
	}
	if err := ch.Qos(1, 0, false); err != nil {
		_ = ch.Close()
		return fmt.Errorf("set worker qos failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					w.log.Warn("notification deliveries channel closed")
					return
				}
				if w.handle(workerCtx, d.Body) == outcomeAck {
					_ = d.Ack(false)
				} else {
					_ = d.Nack(false, false)
				}
			}
		}
	}()

	w.log.Info("notification worker started", zap.String("queue", w.queueName))
	return nil
}

// handle decodes one job and sends it. Jobs that cannot be decoded or sent are dropped;
// the inquiry itself is already in the database.
func (w *NotificationWorker) handle(ctx context.Context, body []byte) ackOutcome {
	var inquiry model.ContactInquiry
	if err := json.Unmarshal(body, &inquiry); err != nil {
		w.log.Error("decode notification job failed", zap.Error(err))
		return outcomeDrop
	}

	if err := w.mailer.Send(ctx, inquiry); err != nil {
		if errors.Is(err, notify.ErrMailNotConfigured) {
			w.log.Info("mail credentials missing, discarding notification job", zap.Uint("inquiry_id", inquiry.ID))
			return outcomeAck
		}
		w.log.Warn("send queued notification failed", zap.Uint("inquiry_id", inquiry.ID), zap.Error(err))
		return outcomeDrop
	}

	w.log.Info("notification mail sent", zap.Uint("inquiry_id", inquiry.ID))
	return outcomeAck
}

func (w *NotificationWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
