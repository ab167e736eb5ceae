package mailqueue

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics метрики отправки писем
type Metrics interface {
	IncNotification(transport string, err error)
}

// Publisher ставит письма-подтверждения в очередь RabbitMQ.
// Соединение открывается лениво и переоткрывается после обрыва.
type Publisher struct {
	url     string
	queue   string
	metrics Metrics
	log     Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher создает новый экземпляр Publisher
func NewPublisher(url, queue string, metrics Metrics, log Logger) *Publisher {
	return &Publisher{url: url, queue: queue, metrics: metrics, log: log}
}

// Send публикует письмо как постоянное сообщение в очередь и ждет подтверждения брокера
func (p *Publisher) Send(ctx context.Context, notice domain.ConfirmationNotice) (err error) {
	defer func() { p.metrics.IncNotification("rabbitmq", err) }()

	body, err := encodeNotice(notice)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPublish, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	dc, err := ch.PublishWithDeferredConfirmWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    notice.PreReservationID,
		Body:         body,
	})
	if err != nil {
		p.reset()
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	if dc == nil {
		p.reset()
		return fmt.Errorf("%w: channel is not in confirm mode", ErrPublish)
	}
	if err := awaitConfirm(ctx, dc); err != nil {
		// канал в неизвестном состоянии после отмены или nack
		p.reset()
		return err
	}

	p.log.Info("Publish: confirmation for pre_reservation=%s queued to %s", notice.PreReservationID, p.queue)
	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	p.ch, p.conn = nil, nil
	return err
}

// channel возвращает открытый канал, при необходимости переподключаясь. Вызывается под mu.
func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() && p.conn != nil && !p.conn.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: channel: %v", ErrConnect, err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: confirm mode: %v", ErrConnect, err)
	}
	if _, err := declareQueue(ch, p.queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: queue declare: %v", ErrConnect, err)
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

// confirmation подтверждение публикации от брокера
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// awaitConfirm ждет ack брокера; письмо считается поставленным только после него
func awaitConfirm(ctx context.Context, c confirmation) error {
	acked, err := c.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: wait confirm: %v", ErrPublish, err)
	}
	if !acked {
		return ErrNacked
	}
	return nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
}

func declareQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
	return ch.QueueDeclare(name, true, false, false, false, nil)
}
