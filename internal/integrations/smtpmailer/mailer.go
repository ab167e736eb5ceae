package smtpmailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// Config параметры SMTP сервера
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics метрики отправки писем
type Metrics interface {
	IncNotification(transport string, err error)
}

type sendFunc func(ctx context.Context, msg *mail.Msg) error

// Mailer отправляет письма-подтверждения по SMTP
type Mailer struct {
	cfg     Config
	metrics Metrics
	log     Logger
	send    sendFunc
}

// New создает новый экземпляр Mailer
func New(cfg Config, metrics Metrics, log Logger) *Mailer {
	m := &Mailer{cfg: cfg, metrics: metrics, log: log}
	m.send = m.dialAndSend
	return m
}

// Send отправляет письмо-подтверждение пре-резерва.
// Соединение с сервером прерывается отменой ctx.
func (m *Mailer) Send(ctx context.Context, notice domain.ConfirmationNotice) (err error) {
	defer func() { m.metrics.IncNotification("smtp", err) }()

	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := RenderConfirmation(notice)
	if err != nil {
		return err
	}

	msg, err := m.buildMessage(notice.Recipient, Subject(notice), body)
	if err != nil {
		return err
	}

	if err := m.send(ctx, msg); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s:%d: %v", ErrSend, m.cfg.Host, m.cfg.Port, err)
	}

	m.log.Info("Send: confirmation for pre_reservation=%s sent to %s", notice.PreReservationID, notice.Recipient)
	return nil
}

// buildMessage собирает письмо: HTML в quoted-printable, Date и Message-ID
func (m *Mailer) buildMessage(to, subject, html string) (*mail.Msg, error) {
	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	msg := mail.NewMsg(mail.WithEncoding(mail.EncodingQP), mail.WithCharset(mail.CharsetUTF8))
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("%w: invalid sender: %v", ErrRender, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("%w: invalid recipient: %v", ErrRender, err)
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextHTML, html)
	return msg, nil
}

func (m *Mailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{mail.WithPort(m.cfg.Port)}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
			mail.WithTLSPolicy(mail.TLSMandatory),
		)
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
