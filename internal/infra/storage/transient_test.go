package storage

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsTransientPostgres(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "bad conn", err: driver.ErrBadConn, want: true},
		{name: "connection failure", err: &pq.Error{Code: "08006"}, want: true},
		{name: "too many connections", err: &pq.Error{Code: "53300"}, want: true},
		{name: "serialization failure", err: fmt.Errorf("exec: %w", &pq.Error{Code: "40001"}), want: true},
		{name: "cannot connect now", err: &pq.Error{Code: "57P03"}, want: true},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: false},
		{name: "syntax error", err: &pq.Error{Code: "42601"}, want: false},
		{name: "plain", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransientPostgres(tt.err))
		})
	}
}
