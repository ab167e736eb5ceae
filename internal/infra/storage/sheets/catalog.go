package sheets

import (
	"context"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

// CatalogRepository справочники: экраны, тарифы, категории, города
type CatalogRepository struct {
	store RowStore
}

// NewCatalogRepository создает новый экземпляр репозитория справочников
func NewCatalogRepository(store RowStore) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// ListScreens возвращает все экраны в порядке листа
func (r *CatalogRepository) ListScreens(ctx context.Context) ([]domain.Screen, error) {
	sheet, err := r.store.List(ctx, sheetScreens)
	if err != nil {
		return nil, fmt.Errorf("%w: ListScreens - list sheet: %v", ErrStore, err)
	}

	screens := make([]domain.Screen, 0, len(sheet.Rows))
	for i := range sheet.Rows {
		screen, err := decodeScreen(sheet, i)
		if err != nil {
			return nil, fmt.Errorf("ListScreens: %w", err)
		}
		screens = append(screens, screen)
	}
	return screens, nil
}

// ListRates возвращает все тарифы
func (r *CatalogRepository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	sheet, err := r.store.List(ctx, sheetRates)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRates - list sheet: %v", ErrStore, err)
	}

	rates := make([]domain.Rate, 0, len(sheet.Rows))
	for i := range sheet.Rows {
		rate, err := decodeRate(sheet, i)
		if err != nil {
			return nil, fmt.Errorf("ListRates: %w", err)
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

// ListCategories возвращает справочник категорий
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.CategoryRecord, error) {
	sheet, err := r.store.List(ctx, sheetCategories)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - list sheet: %v", ErrStore, err)
	}

	categories := make([]domain.CategoryRecord, 0, len(sheet.Rows))
	for i := range sheet.Rows {
		categories = append(categories, domain.CategoryRecord{
			ID:   sheet.Value(i, colCategoryID),
			Name: sheet.Value(i, colCategoryName),
		})
	}
	return categories, nil
}

// CreateCategory добавляет категорию
func (r *CatalogRepository) CreateCategory(ctx context.Context, category domain.CategoryRecord) error {
	if err := r.store.Append(ctx, sheetCategories, []string{category.ID, category.Name}); err != nil {
		return fmt.Errorf("%w: CreateCategory - append row: %v", ErrStore, err)
	}
	return nil
}

// ListCities возвращает справочник городов
func (r *CatalogRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	sheet, err := r.store.List(ctx, sheetCities)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - list sheet: %v", ErrStore, err)
	}

	cities := make([]domain.City, 0, len(sheet.Rows))
	for i := range sheet.Rows {
		cities = append(cities, domain.City{Name: sheet.Value(i, colCityName)})
	}
	return cities, nil
}

// CreateCity добавляет город
func (r *CatalogRepository) CreateCity(ctx context.Context, city domain.City) error {
	if err := r.store.Append(ctx, sheetCities, []string{city.Name}); err != nil {
		return fmt.Errorf("%w: CreateCity - append row: %v", ErrStore, err)
	}
	return nil
}
