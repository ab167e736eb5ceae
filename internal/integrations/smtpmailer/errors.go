package smtpmailer

import "errors"

var (
	// ErrRender возвращается, если не удалось собрать тело письма
	ErrRender = errors.New("smtpmailer: render failed")

	// ErrSend возвращается, если SMTP сервер не принял письмо
	ErrSend = errors.New("smtpmailer: send failed")
)
