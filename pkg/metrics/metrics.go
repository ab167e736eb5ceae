package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса. Все методы допускают nil-получатель,
// чтобы компоненты работали и с выключенными метриками.
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	storeOperationsTotal   *prometheus.CounterVec
	storeOperationDuration *prometheus.HistogramVec
	storeRetriesTotal      *prometheus.CounterVec

	dbQueryDuration *prometheus.HistogramVec
	dbConnections   *prometheus.GaugeVec

	screenStatusTotal  *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		storeOperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "record_store_operations_total",
			Help: "Record store calls by backend, operation and result",
		}, []string{"service", "backend", "operation", "result"}),
		storeOperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "record_store_operation_duration_seconds",
			Help:    "Record store call latency including retries",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"service", "backend", "operation"}),
		storeRetriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "record_store_retries_total",
			Help: "Retries of transient record store failures",
		}, []string{"service", "backend", "operation", "code"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "SQL query latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "kind"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),
		screenStatusTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_screen_status_total",
			Help: "Screen statuses returned by availability queries",
		}, []string{"service", "status"}),
		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "confirmation_notifications_total",
			Help: "Confirmation notifications handed off by transport and result",
		}, []string{"service", "transport", "result"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.storeOperationsTotal,
		m.storeOperationDuration,
		m.storeRetriesTotal,
		m.dbQueryDuration,
		m.dbConnections,
		m.screenStatusTotal,
		m.notificationsTotal,
	)

	return m
}

// ObserveHTTPRequest учитывает HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveStoreOperation учитывает вызов хранилища записей
func (m *Metrics) ObserveStoreOperation(backend, operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.storeOperationsTotal.WithLabelValues(m.serviceName, backend, operation, result).Inc()
	m.storeOperationDuration.WithLabelValues(m.serviceName, backend, operation).Observe(duration.Seconds())
}

// IncStoreRetry учитывает повтор вызова хранилища
func (m *Metrics) IncStoreRetry(backend, operation string, code int) {
	if m == nil {
		return
	}
	m.storeRetriesTotal.WithLabelValues(m.serviceName, backend, operation, strconv.Itoa(code)).Inc()
}

// ObserveDBQuery учитывает SQL запрос
func (m *Metrics) ObserveDBQuery(kind string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.serviceName, kind).Observe(duration.Seconds())
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.serviceName, "open").Set(float64(open))
	m.dbConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues(m.serviceName, "idle").Set(float64(idle))
}

// IncScreenStatus учитывает статус экрана в ответе доступности
func (m *Metrics) IncScreenStatus(status string) {
	if m == nil {
		return
	}
	m.screenStatusTotal.WithLabelValues(m.serviceName, status).Inc()
}

// IncNotification учитывает отправку письма-подтверждения
func (m *Metrics) IncNotification(transport string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.notificationsTotal.WithLabelValues(m.serviceName, transport, result).Inc()
}
