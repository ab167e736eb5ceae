package googlesheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Angelolozano-7/Prisma-Led/pkg/logger"
	"github.com/Angelolozano-7/Prisma-Led/pkg/metrics"
	"github.com/Angelolozano-7/Prisma-Led/pkg/retry"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "rate limited", err: &googleapi.Error{Code: 429}, want: true},
		{name: "internal", err: &googleapi.Error{Code: 500}, want: true},
		{name: "unavailable", err: &googleapi.Error{Code: 503}, want: true},
		{name: "wrapped unavailable", err: fmt.Errorf("call: %w", &googleapi.Error{Code: 503}), want: true},
		{name: "not found", err: &googleapi.Error{Code: 404}, want: false},
		{name: "forbidden", err: &googleapi.Error{Code: 403}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestColumnLetter(t *testing.T) {
	assert.Equal(t, "A", ColumnLetter(1))
	assert.Equal(t, "G", ColumnLetter(7))
	assert.Equal(t, "Z", ColumnLetter(26))
	assert.Equal(t, "AA", ColumnLetter(27))
	assert.Equal(t, "AZ", ColumnLetter(52))
}

func TestSheet_ValueAndRowNumber(t *testing.T) {
	sheet := toSheet("pantallas", [][]interface{}{
		{"id_pantalla", "cilindro", "identificador"},
		{"p1", 3, "A"},
		{"p2"},
	})

	assert.Equal(t, []string{"id_pantalla", "cilindro", "identificador"}, sheet.Header)
	assert.Equal(t, "3", sheet.Value(0, "cilindro"))
	assert.Equal(t, "", sheet.Value(1, "identificador"))
	assert.Equal(t, "", sheet.Value(5, "cilindro"))
	assert.Equal(t, -1, sheet.Column("missing"))
	assert.Len(t, sheet.Rows[1], 3)

	assert.Equal(t, 2, RowNumber(0))
	assert.Equal(t, 11, RowNumber(9))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	service, err := sheets.NewService(context.Background(),
		option.WithoutAuthentication(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	policy := retry.DefaultPolicy(nil)
	policy.BaseDelay = 0
	policy.MaxJitter = 0

	return NewClientWithService(service, "sheet-id", policy, metrics.NewWithRegistry("test", prometheus.NewRegistry()), logger.NewNop())
}

func TestClient_ListRetriesTransient(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"tarifas!A1:C3","values":[["codigo_tarifa","duracion_seg","precio_semana"],["T10","10","100000"]]}`))
	})

	sheet, err := client.List(context.Background(), "tarifas")
	require.NoError(t, err)

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, "T10", sheet.Value(0, "codigo_tarifa"))
	assert.Equal(t, "10", sheet.Value(0, "duracion_seg"))
}

func TestClient_PermanentErrorNotRetried(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"not found"}}`))
	})

	_, err := client.List(context.Background(), "tarifas")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrRequest)
	assert.Equal(t, 404, StatusCode(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_RetriesExhausted(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"code":503,"message":"unavailable"}}`))
	})

	err := client.Append(context.Background(), "ciudades", []string{"Cali"})
	require.Error(t, err)

	assert.ErrorIs(t, err, retry.ErrRetriesExhausted)
	assert.Equal(t, 503, StatusCode(err))
}

func TestClient_UpdateCellAddressesA1(t *testing.T) {
	var path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	require.NoError(t, client.UpdateCell(context.Background(), "prereservas", 4, 7, "sí"))
	assert.True(t, strings.HasSuffix(path, "/values/prereservas!G4"), path)

	err := client.UpdateCell(context.Background(), "prereservas", 1, 7, "sí")
	assert.ErrorIs(t, err, ErrInvalidRow)
}

func TestClient_WritesRawValues(t *testing.T) {
	var (
		mu      sync.Mutex
		options []string
		bodies  []string
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		options = append(options, r.URL.Query().Get("valueInputOption"))
		bodies = append(bodies, string(body))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	ctx := context.Background()
	require.NoError(t, client.Append(ctx, "detalle_prereserva", []string{"01234567", "1e234567", "2024-01-01"}))
	require.NoError(t, client.UpdateRow(ctx, "prereservas", 3, []string{"01234567", "2024-02-01"}))
	require.NoError(t, client.UpdateCell(ctx, "prereservas", 3, 7, "sí"))

	assert.Equal(t, []string{"RAW", "RAW", "RAW"}, options)
	// идентификаторы уходят строками
	assert.Contains(t, bodies[0], `"01234567"`)
	assert.Contains(t, bodies[0], `"1e234567"`)
}
