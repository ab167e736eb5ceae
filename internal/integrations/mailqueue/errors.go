package mailqueue

import (
	"errors"
	"fmt"
)

var (
	// ErrConnect возвращается, если не удалось подключиться к брокеру
	ErrConnect = errors.New("mailqueue: connect failed")

	// ErrPublish возвращается, если брокер не принял сообщение
	ErrPublish = errors.New("mailqueue: publish failed")

	// ErrNacked возвращается, если брокер отказался принять сообщение (basic.nack)
	ErrNacked = fmt.Errorf("%w: nacked by broker", ErrPublish)

	// ErrDecode возвращается для сообщений, которые не удалось разобрать
	ErrDecode = errors.New("mailqueue: decode failed")
)
