package validate_prereservation_items

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
	"github.com/Angelolozano-7/Prisma-Led/pkg/logger"
)

type stubLoader struct {
	snap *availability.Snapshot
}

func (s stubLoader) Load(ctx context.Context) (*availability.Snapshot, error) {
	return s.snap, nil
}

func testSnapshot() *availability.Snapshot {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	week := domain.Period{Start: start, End: start.AddDate(0, 0, 7)}
	return availability.NewSnapshot(
		[]domain.Screen{{ID: "1", Cylinder: 1, Label: "A"}},
		[]domain.Rate{{Code: "R30", DurationSeconds: 30}, {Code: "R40", DurationSeconds: 40}},
		[]domain.Reservation{{ID: "r1", ClientID: "other", Period: week}},
		[]domain.LineItem{{ID: "i1", BookingID: "r1", ScreenID: "1", RateCode: "R30", Category: "bancos"}},
		[]domain.PreReservation{{ID: "p1", ClientID: "me", Period: week}},
		[]domain.LineItem{{ID: "i2", BookingID: "p1", ScreenID: "1", RateCode: "R30", Category: "moda"}},
	)
}

func TestExecute(t *testing.T) {
	uc := NewUseCase(stubLoader{snap: testSnapshot()}, logger.NewNop())

	// собственные 30 секунд не считаются, свободно 30
	ok, err := uc.Execute(context.Background(), &Request{
		PreReservationID: "p1",
		ClientID:         "me",
		Category:         "moda",
		Items:            []domain.ItemSpec{{ScreenID: "1", RateCode: "R30"}},
	})
	require.NoError(t, err)
	assert.True(t, ok.Valid)
	assert.Empty(t, ok.Error)

	rejected, err := uc.Execute(context.Background(), &Request{
		PreReservationID: "p1",
		ClientID:         "me",
		Category:         "moda",
		Items:            []domain.ItemSpec{{ScreenID: "1", RateCode: "R40"}},
	})
	require.NoError(t, err)
	assert.False(t, rejected.Valid)
	assert.Contains(t, rejected.Error, "excede")
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(stubLoader{snap: testSnapshot()}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{PreReservationID: "p1", ClientID: "me", Category: "moda"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		PreReservationID: "p1",
		ClientID:         "me",
		Category:         "moda",
		Items:            []domain.ItemSpec{{ScreenID: "1"}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
