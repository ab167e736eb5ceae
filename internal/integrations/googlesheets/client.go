package googlesheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Angelolozano-7/Prisma-Led/pkg/retry"
)

const (
	backendName      = "sheets"
	valueInputOption = "RAW" // строки пишутся как есть, без разбора чисел и дат
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics метрики вызовов хранилища
type Metrics interface {
	ObserveStoreOperation(backend, operation string, err error, duration time.Duration)
	IncStoreRetry(backend, operation string, code int)
}

// Client клиент Google Sheets с повторами временных ошибок.
// Строки и колонки нумеруются с единицы, первая строка листа - заголовок.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
	policy        retry.Policy
	metrics       Metrics
	log           Logger

	mu       sync.Mutex
	sheetIDs map[string]int64
}

// NewClient создает клиента по файлу сервисного аккаунта
func NewClient(
	ctx context.Context,
	credentialsPath string,
	spreadsheetID string,
	timeout time.Duration,
	policy retry.Policy,
	metrics Metrics,
	log Logger,
) (*Client, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheets.SpreadsheetsScope),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create sheets service: %v", ErrInternal, err)
	}
	return NewClientWithService(service, spreadsheetID, policy, metrics, log), nil
}

// NewClientWithService создает клиента поверх готового сервиса
func NewClientWithService(service *sheets.Service, spreadsheetID string, policy retry.Policy, metrics Metrics, log Logger) *Client {
	if policy.IsTransient == nil {
		policy.IsTransient = IsTransient
	}
	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
		policy:        policy,
		metrics:       metrics,
		log:           log,
		sheetIDs:      make(map[string]int64),
	}
}

// List читает лист целиком: заголовок и строки данных
func (c *Client) List(ctx context.Context, sheet string) (*Sheet, error) {
	var result *Sheet
	err := c.do(ctx, "list", sheet, func(ctx context.Context) error {
		resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, sheet).Context(ctx).Do()
		if err != nil {
			return err
		}
		result = toSheet(sheet, resp.Values)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Append добавляет строку в конец листа
func (c *Client) Append(ctx context.Context, sheet string, row []string) error {
	return c.AppendMany(ctx, sheet, [][]string{row})
}

// AppendMany добавляет несколько строк одним вызовом
func (c *Client) AppendMany(ctx context.Context, sheet string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	body := &sheets.ValueRange{Values: toValues(rows)}

	return c.do(ctx, "append", sheet, func(ctx context.Context) error {
		_, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, sheet, body).
			ValueInputOption(valueInputOption).
			InsertDataOption("INSERT_ROWS").
			Context(ctx).
			Do()
		return err
	})
}

// UpdateCell записывает значение в ячейку (row, col), нумерация с единицы
func (c *Client) UpdateCell(ctx context.Context, sheet string, row, col int, value string) error {
	if row <= HeaderRow || col < 1 {
		return fmt.Errorf("%w: row=%d col=%d", ErrInvalidRow, row, col)
	}
	cell := fmt.Sprintf("%s!%s%d", sheet, ColumnLetter(col), row)
	body := &sheets.ValueRange{Values: [][]interface{}{{value}}}

	return c.do(ctx, "update_cell", sheet, func(ctx context.Context) error {
		_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, cell, body).
			ValueInputOption(valueInputOption).
			Context(ctx).
			Do()
		return err
	})
}

// UpdateRow перезаписывает строку значениями начиная с колонки A
func (c *Client) UpdateRow(ctx context.Context, sheet string, row int, values []string) error {
	if row <= HeaderRow || len(values) == 0 {
		return fmt.Errorf("%w: row=%d", ErrInvalidRow, row)
	}
	rng := fmt.Sprintf("%s!A%d:%s%d", sheet, row, ColumnLetter(len(values)), row)
	body := &sheets.ValueRange{Values: toValues([][]string{values})}

	return c.do(ctx, "update_row", sheet, func(ctx context.Context) error {
		_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, rng, body).
			ValueInputOption(valueInputOption).
			Context(ctx).
			Do()
		return err
	})
}

// DeleteRow удаляет строку листа. Строки ниже сдвигаются вверх.
func (c *Client) DeleteRow(ctx context.Context, sheet string, row int) error {
	if row <= HeaderRow {
		return fmt.Errorf("%w: row=%d", ErrInvalidRow, row)
	}

	sheetID, err := c.sheetID(ctx, sheet)
	if err != nil {
		return err
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:         sheetID,
					Dimension:       "ROWS",
					StartIndex:      int64(row - 1),
					EndIndex:        int64(row),
					ForceSendFields: []string{"SheetId", "StartIndex"},
				},
			},
		}},
	}

	return c.do(ctx, "delete_row", sheet, func(ctx context.Context) error {
		_, err := c.service.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
		return err
	})
}

// sheetID возвращает числовой идентификатор листа, нужный для удаления строк
func (c *Client) sheetID(ctx context.Context, sheet string) (int64, error) {
	c.mu.Lock()
	id, ok := c.sheetIDs[sheet]
	c.mu.Unlock()
	if ok {
		return id, nil
	}

	var props []*sheets.Sheet
	err := c.do(ctx, "get_metadata", sheet, func(ctx context.Context) error {
		resp, err := c.service.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
		if err != nil {
			return err
		}
		props = resp.Sheets
		return nil
	})
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range props {
		if s.Properties != nil {
			c.sheetIDs[s.Properties.Title] = s.Properties.SheetId
		}
	}
	id, ok = c.sheetIDs[sheet]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	return id, nil
}

// do выполняет вызов API с повторами и учетом метрик
func (c *Client) do(ctx context.Context, operation, sheet string, call func(ctx context.Context) error) error {
	start := time.Now()

	policy := c.policy
	policy.OnRetry = func(attempt int, wait time.Duration, err error) {
		code := StatusCode(err)
		c.metrics.IncStoreRetry(backendName, operation, code)
		c.log.Warn("Sheets %s %s: retry %d in %s after status=%d", operation, sheet, attempt, wait, code)
	}

	err := retry.Do(ctx, policy, call)
	c.metrics.ObserveStoreOperation(backendName, operation, err, time.Since(start))
	if err != nil {
		c.log.Error("Sheets %s %s: failed, status=%d: %v", operation, sheet, StatusCode(err), err)
		return fmt.Errorf("%w: %s %s: %w", ErrRequest, operation, sheet, err)
	}
	return nil
}

// IsTransient считает временными ответы 429, 500 и 503
func IsTransient(err error) bool {
	switch StatusCode(err) {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable:
		return true
	default:
		return false
	}
}

// StatusCode HTTP-код ошибки Google API или 0
func StatusCode(err error) int {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}

func toSheet(name string, values [][]interface{}) *Sheet {
	sheet := &Sheet{Name: name}
	if len(values) == 0 {
		return sheet
	}

	sheet.Header = toStrings(values[0], 0)
	sheet.Rows = make([][]string, 0, len(values)-1)
	for _, raw := range values[1:] {
		sheet.Rows = append(sheet.Rows, toStrings(raw, len(sheet.Header)))
	}
	return sheet
}

// toStrings приводит ячейки к строкам и дополняет строку до ширины заголовка
func toStrings(raw []interface{}, width int) []string {
	size := len(raw)
	if width > size {
		size = width
	}
	row := make([]string, size)
	for i, v := range raw {
		if v == nil {
			continue
		}
		row[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return row
}

func toValues(rows [][]string) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = make([]interface{}, len(row))
		for j, v := range row {
			values[i][j] = v
		}
	}
	return values
}
