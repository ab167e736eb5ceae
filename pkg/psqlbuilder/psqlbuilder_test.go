package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "client_id").
		From("pre_reservations").
		Where(squirrel.Eq{"client_id": "c1"}).
		Where(squirrel.Eq{"status": "pendiente"}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, client_id FROM pre_reservations WHERE client_id = $1 AND status = $2", query)
	assert.Equal(t, []interface{}{"c1", "pendiente"}, args)

	query, _, err = Delete("pre_reservation_items").Where(squirrel.Eq{"pre_reservation_id": "p1"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM pre_reservation_items WHERE pre_reservation_id = $1", query)
}
