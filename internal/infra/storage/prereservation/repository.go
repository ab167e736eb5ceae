package prereservation

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

var headerColumns = []string{"id", "client_id", "start_date", "end_date", "status", "created_at", "notification_sent"}

var itemColumns = []string{"id", "pre_reservation_id", "screen_id", "rate_code", "category"}

// Repository репозиторий пре-резервов в PostgreSQL
type Repository struct {
	db     DBExecutor
	policy retry.Policy
}

// NewRepository создает новый экземпляр репозитория пре-резервов
func NewRepository(db DBExecutor, policy retry.Policy) *Repository {
	return &Repository{db: db, policy: policy}
}

// List возвращает все пре-резервы
func (r *Repository) List(ctx context.Context) ([]domain.PreReservation, error) {
	return r.list(ctx, nil, "List")
}

// ListByClient возвращает пре-резервы клиента
func (r *Repository) ListByClient(ctx context.Context, clientID string) ([]domain.PreReservation, error) {
	return r.list(ctx, squirrel.Eq{"client_id": clientID}, "ListByClient")
}

// GetByID получает пре-резерв по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.PreReservation, error) {
	list, err := r.list(ctx, squirrel.Eq{"id": id}, "GetByID")
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, storage.ErrPreReservationNotFound
	}
	return &list[0], nil
}

// ListItems возвращает позиции всех пре-резервов
func (r *Repository) ListItems(ctx context.Context) ([]domain.LineItem, error) {
	return r.listItems(ctx, nil, "ListItems")
}

// ListItemsByPreReservation возвращает позиции одного пре-резерва
func (r *Repository) ListItemsByPreReservation(ctx context.Context, id string) ([]domain.LineItem, error) {
	return r.listItems(ctx, squirrel.Eq{"pre_reservation_id": id}, "ListItemsByPreReservation")
}

// Create записывает заголовок и позиции в одной транзакции
func (r *Repository) Create(ctx context.Context, pre *domain.PreReservation, items []domain.LineItem) error {
	return dbmetrics.InTx(ctx, r.db, func(ctx context.Context) error {
		executor := dbmetrics.GetExecutor(ctx, r.db)

		query, args, err := psqlbuilder.Insert("pre_reservations").
			Columns(headerColumns...).
			Values(pre.ID, pre.ClientID, pre.Period.Start, pre.Period.End, string(pre.Status), nullTime(pre), pre.NotificationSent).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
		}

		return r.insertItems(ctx, items, "Create")
	})
}

// Update перезаписывает заголовок пре-резерва
func (r *Repository) Update(ctx context.Context, pre *domain.PreReservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pre_reservations").
		Set("client_id", pre.ClientID).
		Set("start_date", pre.Period.Start).
		Set("end_date", pre.Period.End).
		Set("status", string(pre.Status)).
		Set("created_at", nullTime(pre)).
		Set("notification_sent", pre.NotificationSent).
		Where(squirrel.Eq{"id": pre.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	return requireAffected(result, "Update")
}

// ReplaceItems удаляет все позиции пре-резерва и записывает новые в одной транзакции
func (r *Repository) ReplaceItems(ctx context.Context, id string, items []domain.LineItem) error {
	return dbmetrics.InTx(ctx, r.db, func(ctx context.Context) error {
		if err := r.deleteItems(ctx, id, "ReplaceItems"); err != nil {
			return err
		}
		return r.insertItems(ctx, items, "ReplaceItems")
	})
}

// Delete удаляет пре-резерв вместе с позициями
func (r *Repository) Delete(ctx context.Context, id string) error {
	return dbmetrics.InTx(ctx, r.db, func(ctx context.Context) error {
		if err := r.deleteItems(ctx, id, "Delete"); err != nil {
			return err
		}

		executor := dbmetrics.GetExecutor(ctx, r.db)
		query, args, err := psqlbuilder.Delete("pre_reservations").
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
		}
		return requireAffected(result, "Delete")
	})
}

// MarkNotificationSent выставляет флаг отправленного письма
func (r *Repository) MarkNotificationSent(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pre_reservations").
		Set("notification_sent", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkNotificationSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkNotificationSent - execute update: %v", ErrExecQuery, err)
	}
	return requireAffected(result, "MarkNotificationSent")
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer, op string) ([]domain.PreReservation, error) {
	builder := psqlbuilder.Select(headerColumns...).
		From("pre_reservations").
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

	result := make([]domain.PreReservation, 0)
	for rows.Next() {
		var pre domain.PreReservation
		var createdAt sql.NullTime
		err := rows.Scan(
			&pre.ID,
			&pre.ClientID,
			&pre.Period.Start,
			&pre.Period.End,
			&pre.Status,
			&createdAt,
			&pre.NotificationSent,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan pre_reservation: %v", ErrScanRow, op, err)
		}
		pre.CreatedAt = createdAt.Time
		result = append(result, pre)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	return result, nil
}

func (r *Repository) listItems(ctx context.Context, where squirrel.Sqlizer, op string) ([]domain.LineItem, error) {
	builder := psqlbuilder.Select(itemColumns...).
		From("pre_reservation_items").
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

	items := make([]domain.LineItem, 0)
	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(&item.ID, &item.BookingID, &item.ScreenID, &item.RateCode, &item.Category); err != nil {
			return nil, fmt.Errorf("%w: %s - scan item: %v", ErrScanRow, op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	return items, nil
}

func (r *Repository) insertItems(ctx context.Context, items []domain.LineItem, op string) error {
	if len(items) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("pre_reservation_items").Columns(itemColumns...)
	for _, item := range items {
		builder = builder.Values(item.ID, item.BookingID, item.ScreenID, item.RateCode, item.Category.String())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build items insert: %v", ErrBuildQuery, op, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s - execute items insert: %v", ErrExecQuery, op, err)
	}
	return nil
}

func (r *Repository) deleteItems(ctx context.Context, id string, op string) error {
	query, args, err := psqlbuilder.Delete("pre_reservation_items").
		Where(squirrel.Eq{"pre_reservation_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build items delete: %v", ErrBuildQuery, op, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s - execute items delete: %v", ErrExecQuery, op, err)
	}
	return nil
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

func requireAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return storage.ErrPreReservationNotFound
	}
	return nil
}

func nullTime(pre *domain.PreReservation) sql.NullTime {
	return sql.NullTime{Time: pre.CreatedAt, Valid: !pre.CreatedAt.IsZero()}
}
