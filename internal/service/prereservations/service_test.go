package prereservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/internal/infra/storage"
	"github.com/Angelolozano-7/Prisma-Led/internal/service/prereservations/models"
	"github.com/Angelolozano-7/Prisma-Led/pkg/locker"
	"github.com/Angelolozano-7/Prisma-Led/pkg/logger"
)

type memoryRepo struct {
	pre      map[string]domain.PreReservation
	items    []domain.LineItem
	deleted  []string
	onDelete func()
}

func (m *memoryRepo) ListByClient(ctx context.Context, clientID string) ([]domain.PreReservation, error) {
	result := make([]domain.PreReservation, 0)
	for _, p := range m.pre {
		if p.ClientID == clientID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id string) (*domain.PreReservation, error) {
	p, ok := m.pre[id]
	if !ok {
		return nil, storage.ErrPreReservationNotFound
	}
	return &p, nil
}

func (m *memoryRepo) ListItemsByPreReservation(ctx context.Context, id string) ([]domain.LineItem, error) {
	result := make([]domain.LineItem, 0)
	for _, it := range m.items {
		if it.BookingID == id {
			result = append(result, it)
		}
	}
	return result, nil
}

func (m *memoryRepo) Update(ctx context.Context, pre *domain.PreReservation) error {
	m.pre[pre.ID] = *pre
	return nil
}

func (m *memoryRepo) Delete(ctx context.Context, id string) error {
	if m.onDelete != nil {
		m.onDelete()
	}
	delete(m.pre, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type stubCatalog struct{}

func (stubCatalog) ListScreens(ctx context.Context) ([]domain.Screen, error) {
	return []domain.Screen{{ID: "s1", Cylinder: 3, Label: "C"}}, nil
}

func (stubCatalog) ListRates(ctx context.Context) ([]domain.Rate, error) {
	return []domain.Rate{{Code: "R20", DurationSeconds: 20, WeeklyPrice: 180000}}, nil
}

// snapshotLoader строит срез из репозитория и резервов других клиентов
type snapshotLoader struct {
	repo         *memoryRepo
	reservations []domain.Reservation
	resItems     []domain.LineItem
}

func (l *snapshotLoader) Load(ctx context.Context) (*availability.Snapshot, error) {
	pre := make([]domain.PreReservation, 0, len(l.repo.pre))
	for _, p := range l.repo.pre {
		pre = append(pre, p)
	}
	return availability.NewSnapshot(
		[]domain.Screen{{ID: "s1", Cylinder: 3, Label: "C"}, {ID: "s2", Cylinder: 3, Label: "D"}},
		[]domain.Rate{{Code: "R20", DurationSeconds: 20}, {Code: "R40", DurationSeconds: 40}, {Code: "R50", DurationSeconds: 50}},
		l.reservations,
		l.resItems,
		pre,
		l.repo.items,
	), nil
}

func february(t *testing.T) domain.Period {
	t.Helper()
	p, err := domain.ParsePeriod("2024-02-01", "2024-02-15")
	require.NoError(t, err)
	return p
}

func newFixture() (*memoryRepo, *Service) {
	repo, _, svc := newFixtureWithLoader()
	return repo, svc
}

func newFixtureWithLoader() (*memoryRepo, *snapshotLoader, *Service) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &memoryRepo{
		pre: map[string]domain.PreReservation{
			"p1": {
				ID:               "p1",
				ClientID:         "c1",
				Period:           domain.Period{Start: start, End: start.AddDate(0, 0, 14)},
				Status:           domain.PreReservationPending,
				CreatedAt:        start.AddDate(0, 0, -3),
				NotificationSent: true,
			},
		},
		items: []domain.LineItem{
			{ID: "i1", BookingID: "p1", ScreenID: "s1", RateCode: "R20", Category: "moda"},
			{ID: "i2", BookingID: "p1", ScreenID: "s404", RateCode: "RX", Category: "moda"},
		},
	}
	loader := &snapshotLoader{repo: repo}
	return repo, loader, NewService(repo, stubCatalog{}, loader, locker.New(), logger.NewNop())
}

func TestGetDetail(t *testing.T) {
	_, svc := newFixture()

	detail, err := svc.GetDetail(context.Background(), "p1", "c1")
	require.NoError(t, err)

	assert.Equal(t, 2, detail.Weeks)
	assert.Equal(t, "moda", detail.Category)
	assert.Equal(t, "2023-12-29", detail.CreatedAt)
	require.Len(t, detail.Screens, 2)
	assert.Equal(t, models.ScreenLine{ID: "s1", Cylinder: 3, Label: "C", RateCode: "R20", Seconds: 20, Price: 180000}, detail.Screens[0])
	// неизвестные экран и тариф не ломают ответ
	assert.Equal(t, 0, detail.Screens[1].Seconds)
}

func TestGetDetail_NotOwned(t *testing.T) {
	_, svc := newFixture()

	_, err := svc.GetDetail(context.Background(), "p1", "intruder")
	assert.ErrorIs(t, err, ErrPreReservationNotFound)

	_, err = svc.GetDetail(context.Background(), "missing", "c1")
	assert.ErrorIs(t, err, ErrPreReservationNotFound)
}

func TestUpdateDates(t *testing.T) {
	repo, svc := newFixture()

	resp, err := svc.UpdateDates(context.Background(), &models.UpdateDatesRequest{
		ID: "p1", ClientID: "c1", StartDate: "2024-02-01", EndDate: "2024-02-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", resp.StartDate)
	assert.Equal(t, "pendiente", resp.Status)

	stored := repo.pre["p1"]
	assert.Equal(t, "2024-02-15", stored.Period.EndString())
	assert.Equal(t, "2023-12-29", stored.CreatedAt.Format(domain.DateFormat))
	assert.True(t, stored.NotificationSent)
}

func TestUpdateDates_InvalidInput(t *testing.T) {
	_, svc := newFixture()

	_, err := svc.UpdateDates(context.Background(), &models.UpdateDatesRequest{ID: "p1", ClientID: "c1", StartDate: "2024-02-01"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateDates(context.Background(), &models.UpdateDatesRequest{
		ID: "p1", ClientID: "c1", StartDate: "2024-02-15", EndDate: "2024-02-01",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo, svc := newFixture()

	assert.ErrorIs(t, svc.Delete(context.Background(), "p1", "intruder"), ErrPreReservationNotFound)
	assert.Empty(t, repo.deleted)

	require.NoError(t, svc.Delete(context.Background(), "p1", "c1"))
	assert.Equal(t, []string{"p1"}, repo.deleted)
}

func TestUpdateDates_CapacityExceeded(t *testing.T) {
	repo, loader, svc := newFixtureWithLoader()

	// в феврале другой клиент занимает 50 секунд на s1, у p1 там 20
	loader.reservations = []domain.Reservation{{ID: "r1", ClientID: "c2", Period: february(t)}}
	loader.resItems = []domain.LineItem{{ID: "i9", BookingID: "r1", ScreenID: "s1", RateCode: "R50", Category: "autos"}}

	_, err := svc.UpdateDates(context.Background(), &models.UpdateDatesRequest{
		ID: "p1", ClientID: "c1", StartDate: "2024-02-01", EndDate: "2024-02-15",
	})

	var rejected *availability.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, availability.RejectCapacity, rejected.Kind)
	assert.Equal(t, "2024-01-01", repo.pre["p1"].Period.StartString())
}

func TestUpdateDates_CategoryConflict(t *testing.T) {
	repo, loader, svc := newFixtureWithLoader()

	// тот же цилиндр и та же категория у другого клиента
	loader.reservations = []domain.Reservation{{ID: "r1", ClientID: "c2", Period: february(t)}}
	loader.resItems = []domain.LineItem{{ID: "i9", BookingID: "r1", ScreenID: "s2", RateCode: "R20", Category: "moda"}}

	_, err := svc.UpdateDates(context.Background(), &models.UpdateDatesRequest{
		ID: "p1", ClientID: "c1", StartDate: "2024-02-01", EndDate: "2024-02-15",
	})

	var rejected *availability.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, availability.RejectCategory, rejected.Kind)
	assert.Equal(t, "2024-01-15", repo.pre["p1"].Period.EndString())
}

func TestUpdateDates_OwnFootprintIsExcluded(t *testing.T) {
	repo, loader, svc := newFixtureWithLoader()

	// 40 + 20 собственных = ровно 60
	loader.reservations = []domain.Reservation{{ID: "r1", ClientID: "c2", Period: february(t)}}
	loader.resItems = []domain.LineItem{{ID: "i9", BookingID: "r1", ScreenID: "s1", RateCode: "R40", Category: "autos"}}

	_, err := svc.UpdateDates(context.Background(), &models.UpdateDatesRequest{
		ID: "p1", ClientID: "c1", StartDate: "2024-01-10", EndDate: "2024-02-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-05", repo.pre["p1"].Period.EndString())
}

func TestDelete_HoldsItemsLock(t *testing.T) {
	repo := &memoryRepo{
		pre:   map[string]domain.PreReservation{"p1": {ID: "p1", ClientID: "c1"}},
		items: []domain.LineItem{{ID: "i1", BookingID: "p1", ScreenID: "s1", RateCode: "R20"}},
	}
	locks := locker.New()
	svc := NewService(repo, stubCatalog{}, &snapshotLoader{repo: repo}, locks, logger.NewNop())

	var itemsLockErr error
	repo.onDelete = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		itemsLockErr = locks.Do(ctx, func(ctx context.Context) error { return nil }, domain.LockPreReservationItems)
	}

	require.NoError(t, svc.Delete(context.Background(), "p1", "c1"))
	assert.ErrorIs(t, itemsLockErr, context.DeadlineExceeded)
}
