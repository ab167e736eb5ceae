package storage

import (
	"database/sql/driver"
	"errors"

	"github.com/lib/pq"
)

// IsTransientPostgres считает временными ошибки соединения, нехватки ресурсов
// и конфликтов сериализации PostgreSQL
func IsTransientPostgres(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch pqErr.Code.Class() {
	case "08", "53": // connection_exception, insufficient_resources
		return true
	case "40": // transaction_rollback: serialization_failure, deadlock_detected
		return true
	}
	return pqErr.Code == "57P03" // cannot_connect_now
}
