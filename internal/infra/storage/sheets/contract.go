package sheets

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/internal/integrations/googlesheets"
)

// RowStore позиционное хранилище строк (Google Sheets).
// Строки нумеруются с единицы, первая строка листа - заголовок.
type RowStore interface {
	List(ctx context.Context, sheet string) (*googlesheets.Sheet, error)
	Append(ctx context.Context, sheet string, row []string) error
	AppendMany(ctx context.Context, sheet string, rows [][]string) error
	UpdateCell(ctx context.Context, sheet string, row, col int, value string) error
	UpdateRow(ctx context.Context, sheet string, row int, values []string) error
	DeleteRow(ctx context.Context, sheet string, row int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
