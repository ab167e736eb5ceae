package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/infra/storage"
	"github.com/Angelolozano-7/Prisma-Led/pkg/dbmetrics"
	"github.com/Angelolozano-7/Prisma-Led/pkg/psqlbuilder"
	"github.com/Angelolozano-7/Prisma-Led/pkg/retry"
)

// Repository репозиторий резервов. Только чтение: резервы создаются вне сервиса.
type Repository struct {
	db     DBExecutor
	policy retry.Policy
}

// NewRepository создает новый экземпляр репозитория резервов
func NewRepository(db DBExecutor, policy retry.Policy) *Repository {
	return &Repository{db: db, policy: policy}
}

// List возвращает все резервы
func (r *Repository) List(ctx context.Context) ([]domain.Reservation, error) {
	return r.list(ctx, nil, "List")
}

// ListByClient возвращает резервы клиента
func (r *Repository) ListByClient(ctx context.Context, clientID string) ([]domain.Reservation, error) {
	return r.list(ctx, squirrel.Eq{"client_id": clientID}, "ListByClient")
}

// ListItems возвращает позиции всех резервов
func (r *Repository) ListItems(ctx context.Context) ([]domain.LineItem, error) {
	query, args, err := psqlbuilder.Select("id", "reservation_id", "screen_id", "rate_code", "category").
		From("reservation_items").
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.LineItem, 0)
	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(&item.ID, &item.BookingID, &item.ScreenID, &item.RateCode, &item.Category); err != nil {
			return nil, fmt.Errorf("%w: ListItems - scan item: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListItems - rows error: %v", ErrScanRow, err)
	}
	return items, nil
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer, op string) ([]domain.Reservation, error) {
	builder := psqlbuilder.Select("id", "client_id", "start_date", "end_date", "created_at").
		From("reservations").
		OrderBy("seq")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime
		if err := rows.Scan(&res.ID, &res.ClientID, &res.Period.Start, &res.Period.End, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
		}
		res.CreatedAt = createdAt.Time
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	return reservations, nil
}

func (r *Repository) query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var rows *sql.Rows
	err := storage.ReadWithRetry(ctx, r.policy, func(ctx context.Context) error {
		var err error
		rows, err = executor.QueryContext(ctx, query, args...)
		return err
	})
	return rows, err
}
