package delete_prereservation

import "context"

type PreReservationService interface {
	Delete(ctx context.Context, id, clientID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
