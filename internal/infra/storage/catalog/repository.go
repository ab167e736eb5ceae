package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/infra/storage"
	"github.com/Angelolozano-7/Prisma-Led/pkg/dbmetrics"
	"github.com/Angelolozano-7/Prisma-Led/pkg/psqlbuilder"
	"github.com/Angelolozano-7/Prisma-Led/pkg/retry"
)

// Repository репозиторий справочников в PostgreSQL
type Repository struct {
	db     DBExecutor
	policy retry.Policy
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor, policy retry.Policy) *Repository {
	return &Repository{db: db, policy: policy}
}

// ListScreens возвращает все экраны в порядке добавления
func (r *Repository) ListScreens(ctx context.Context) ([]domain.Screen, error) {
	query, args, err := psqlbuilder.Select("id", "cylinder", "label").
		From("screens").
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListScreens - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListScreens - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	screens := make([]domain.Screen, 0)
	for rows.Next() {
		var s domain.Screen
		if err := rows.Scan(&s.ID, &s.Cylinder, &s.Label); err != nil {
			return nil, fmt.Errorf("%w: ListScreens - scan screen: %v", ErrScanRow, err)
		}
		screens = append(screens, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListScreens - rows error: %v", ErrScanRow, err)
	}
	return screens, nil
}

// ListRates возвращает все тарифы
func (r *Repository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	query, args, err := psqlbuilder.Select("code", "duration_seconds", "weekly_price").
		From("rates").
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rates := make([]domain.Rate, 0)
	for rows.Next() {
		var rate domain.Rate
		if err := rows.Scan(&rate.Code, &rate.DurationSeconds, &rate.WeeklyPrice); err != nil {
			return nil, fmt.Errorf("%w: ListRates - scan rate: %v", ErrScanRow, err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRates - rows error: %v", ErrScanRow, err)
	}
	return rates, nil
}

// ListCategories возвращает справочник категорий
func (r *Repository) ListCategories(ctx context.Context) ([]domain.CategoryRecord, error) {
	query, args, err := psqlbuilder.Select("id", "name").
		From("categories").
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]domain.CategoryRecord, 0)
	for rows.Next() {
		var c domain.CategoryRecord
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan category: %v", ErrScanRow, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}
	return categories, nil
}

// CreateCategory добавляет категорию
func (r *Repository) CreateCategory(ctx context.Context, category domain.CategoryRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("categories").
		Columns("id", "name").
		Values(category.ID, category.Name).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateCategory - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateCategory - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// ListCities возвращает справочник городов
func (r *Repository) ListCities(ctx context.Context) ([]domain.City, error) {
	query, args, err := psqlbuilder.Select("name").
		From("cities").
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cities := make([]domain.City, 0)
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.Name); err != nil {
			return nil, fmt.Errorf("%w: ListCities - scan city: %v", ErrScanRow, err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCities - rows error: %v", ErrScanRow, err)
	}
	return cities, nil
}

// CreateCity добавляет город
func (r *Repository) CreateCity(ctx context.Context, city domain.City) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cities").
		Columns("name").
		Values(city.Name).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateCity - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateCity - execute insert: %v", ErrExecQuery, err)
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
