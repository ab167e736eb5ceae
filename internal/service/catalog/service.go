package catalog

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/service/catalog/models"
)

// Service сервис справочников: экраны, тарифы, категории, города
type Service struct {
	repo   CatalogRepository
	locker Locker
	ids    IDGenerator
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(repo CatalogRepository, locker Locker, ids IDGenerator, logger Logger) *Service {
	return &Service{
		repo:   repo,
		locker: locker,
		ids:    ids,
		logger: logger,
	}
}

// ListScreens возвращает все экраны
func (s *Service) ListScreens(ctx context.Context) ([]models.ScreenResponse, error) {
	screens, err := s.repo.ListScreens(ctx)
	if err != nil {
		s.logger.Error("ListScreens: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListScreens - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainScreens(screens), nil
}

// ListRates возвращает все тарифы
func (s *Service) ListRates(ctx context.Context) ([]models.RateResponse, error) {
	rates, err := s.repo.ListRates(ctx)
	if err != nil {
		s.logger.Error("ListRates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRates - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRates(rates), nil
}

// ListCategories возвращает справочник категорий
func (s *Service) ListCategories(ctx context.Context) ([]models.CategoryResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCategories(categories), nil
}

// AddCategory добавляет категорию с новым 8-символьным ID
func (s *Service) AddCategory(ctx context.Context, name string) (*models.CategoryResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	category := domain.CategoryRecord{ID: s.ids.NewID(), Name: name}

	err := s.locker.Do(ctx, func(ctx context.Context) error {
		return s.repo.CreateCategory(ctx, category)
	}, domain.LockCategories)
	if err != nil {
		s.logger.Error("AddCategory: failed to create category name=%s: %v", name, err)
		return nil, fmt.Errorf("%w: AddCategory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddCategory: created category id=%s, name=%s", category.ID, category.Name)
	result := models.FromDomainCategory(category)
	return &result, nil
}

// ListCities возвращает названия городов
func (s *Service) ListCities(ctx context.Context) ([]string, error) {
	cities, err := s.repo.ListCities(ctx)
	if err != nil {
		s.logger.Error("ListCities: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCities - repository error: %v", ErrInternal, err)
	}

	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, c.Name)
	}
	return names, nil
}

// AddCity нормализует название и добавляет город, если его еще нет.
// Сравнение без учета регистра.
func (s *Service) AddCity(ctx context.Context, raw string) (*models.AddCityResponse, error) {
	name, err := NormalizeCityName(raw)
	if err != nil {
		return nil, err
	}

	result := &models.AddCityResponse{Name: name}
	err = s.locker.Do(ctx, func(ctx context.Context) error {
		cities, err := s.repo.ListCities(ctx)
		if err != nil {
			return err
		}
		for _, c := range cities {
			if strings.EqualFold(strings.TrimSpace(c.Name), name) {
				return nil
			}
		}
		if err := s.repo.CreateCity(ctx, domain.City{Name: name}); err != nil {
			return err
		}
		result.Created = true
		return nil
	}, domain.LockCities)
	if err != nil {
		s.logger.Error("AddCity: failed to add city name=%s: %v", name, err)
		return nil, fmt.Errorf("%w: AddCity - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddCity: name=%s, created=%v", name, result.Created)
	return result, nil
}

// NormalizeCityName убирает пробелы по краям, приводит к виду "Santa Marta" и проверяет длину
func NormalizeCityName(raw string) (string, error) {
	name := cases.Title(language.Spanish).String(strings.TrimSpace(raw))
	if name == "" {
		return "", ErrNameRequired
	}

	length := utf8.RuneCountInString(name)
	if length < domain.MinCityNameLength || length > domain.MaxCityNameLength {
		return "", fmt.Errorf("%w: %d characters", ErrCityNameLength, length)
	}
	return name, nil
}
