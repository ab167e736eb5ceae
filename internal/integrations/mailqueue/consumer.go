package mailqueue

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

const (
	prefetchCount  = 10
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Handler обработчик одного письма
type Handler func(ctx context.Context, notice domain.ConfirmationNotice) error

// Consumer читает очередь писем-подтверждений и передает их обработчику
type Consumer struct {
	url     string
	queue   string
	handler Handler
	log     Logger
}

// NewConsumer создает новый экземпляр Consumer
func NewConsumer(url, queue string, handler Handler, log Logger) *Consumer {
	return &Consumer{url: url, queue: queue, handler: handler, log: log}
}

// Run читает очередь до отмены ctx, переподключаясь к брокеру с экспоненциальной паузой
func (c *Consumer) Run(ctx context.Context) error {
	backoff := initialBackoff
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.Warn("Consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < maxBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = initialBackoff

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn("Consumer: consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(prefetchCount, 0, false); err != nil {
		c.log.Warn("Consumer: set QoS failed: %v", err)
	}
	if _, err := declareQueue(ch, c.queue); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	c.log.Info("Consumer: consuming queue=%s", c.queue)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.handle(ctx, d)
		}
	}
}

// handle подтверждает доставку после успешной обработки.
// Неразбираемые сообщения отбрасываются, ошибки отправки возвращаются в очередь один раз.
func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	notice, err := decodeNotice(d.Body)
	if err != nil {
		c.log.Error("Consumer: drop message %s: %v", d.MessageId, err)
		_ = d.Nack(false, false)
		return
	}

	if err := c.handler(ctx, notice); err != nil {
		requeue := !d.Redelivered
		c.log.Error("Consumer: pre_reservation=%s handling failed (requeue=%t): %v", notice.PreReservationID, requeue, err)
		_ = d.Nack(false, requeue)
		return
	}
	_ = d.Ack(false)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
