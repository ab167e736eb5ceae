package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Angelolozano-7/Prisma-Led/internal/domain"
)

func TestBuildMaps(t *testing.T) {
	rates := BuildRateMap([]domain.Rate{{Code: "R1", DurationSeconds: 30}, {Code: "R2", DurationSeconds: 15}})
	assert.Equal(t, 30, rates.Seconds("R1"))
	assert.Equal(t, 15, rates.Seconds("R2"))
	assert.Equal(t, 0, rates.Seconds("missing"))

	screens := BuildScreenMap([]domain.Screen{{ID: "X1", Cylinder: 3}, {ID: "X2", Cylinder: 3}, {ID: "Y", Cylinder: 4}})
	c, ok := screens.Cylinder("X2")
	assert.True(t, ok)
	assert.Equal(t, 3, c)
	_, ok = screens.Cylinder("Z")
	assert.False(t, ok)
}

func TestOccupiedSeconds(t *testing.T) {
	snap := newSnapshot(t).
		screen("X", 1, "A").
		screen("Y", 1, "B").
		reservation("r1", "c1", "2024-01-01", "2024-01-07", item("X", "R30", "moda"), item("Y", "R10", "moda")).
		reservation("r2", "c2", "2024-01-06", "2024-01-13", item("X", "R20", "autos")).
		reservation("r3", "c3", "2024-03-01", "2024-03-07", item("X", "R50", "bancos")).
		reservation("r4", "c4", "2024-01-01", "2024-01-07", item("X", "UNKNOWN", "bancos")).
		build()

	rates := BuildRateMap(snap.Rates)
	got := OccupiedSeconds(period(t, "2024-01-05", "2024-01-12"), snap.Reservations, rates)

	assert.Equal(t, map[string]int{"X": 50, "Y": 10}, got)

	got = OccupiedSeconds(period(t, "2024-06-01", "2024-06-07"), snap.Reservations, rates)
	assert.Empty(t, got)
}

func TestOccupancy_AvailableSecondsClamped(t *testing.T) {
	snap := newSnapshot(t).
		screen("X", 1, "A").
		reservation("r1", "c1", "2024-01-01", "2024-01-07", item("X", "R50", "moda")).
		preReservation("p1", "c2", "2024-01-01", "2024-01-07", item("X", "R30", "autos")).
		build()

	occ := NewOccupancy(snap, period(t, "2024-01-01", "2024-01-07"))

	assert.Equal(t, 80, occ.UsedSeconds("X"))
	assert.Equal(t, 0, occ.AvailableSeconds("X"))
	assert.Equal(t, domain.ScreenCapacitySeconds, occ.AvailableSeconds("free-screen"))
}

func TestOccupancy_AvailableIsCapacityMinusOverlapping(t *testing.T) {
	for _, code := range []string{"R10", "R20", "R30", "R50", "R60"} {
		t.Run(code, func(t *testing.T) {
			snap := newSnapshot(t).
				screen("X", 1, "A").
				reservation("r1", "c1", "2024-01-01", "2024-01-07", item("X", code, "moda")).
				build()
			occ := NewOccupancy(snap, period(t, "2024-01-07", "2024-01-14"))

			seconds := BuildRateMap(snap.Rates).Seconds(code)
			assert.Equal(t, domain.ScreenCapacitySeconds-seconds, occ.AvailableSeconds("X"))
		})
	}
}

func TestFindConflicts(t *testing.T) {
	snap := newSnapshot(t).
		screen("X", 1, "A").
		reservation("r1", "c1", "2024-01-01", "2024-01-07", item("X", "R10", "moda")).
		reservation("r2", "c1", "2024-01-10", "2024-01-17", item("Y", "R10", "moda")).
		reservation("r3", "c2", "2024-01-12", "2024-01-19", item("X", "R10", "moda")).
		reservation("r4", "c2", "2024-05-01", "2024-05-08", item("X", "R10", "moda")).
		build()

	got := FindConflicts(period(t, "2024-01-05", "2024-01-12"), snap.Reservations, "X")

	assert.Equal(t, []domain.Period{
		period(t, "2024-01-01", "2024-01-07"),
		period(t, "2024-01-12", "2024-01-19"),
	}, got)
	assert.Empty(t, FindConflicts(period(t, "2024-01-05", "2024-01-12"), snap.Reservations, "Z"))
}

func TestCategoryConflict(t *testing.T) {
	snap := newSnapshot(t).
		screen("X1", 3, "A").
		screen("X2", 3, "B").
		screen("Y", 4, "A").
		reservation("r1", "client-a", "2024-01-01", "2024-01-07", item("X1", "R10", "moda")).
		preReservation("p1", "client-c", "2024-01-01", "2024-01-07", item("Y", "R10", "moda")).
		build()
	occ := NewOccupancy(snap, period(t, "2024-01-03", "2024-01-10"))

	cylinder, ok := occ.CategoryConflict("moda", "client-b", map[int]struct{}{3: {}})
	assert.True(t, ok)
	assert.Equal(t, 3, cylinder)

	cylinder, ok = occ.CategoryConflict("moda", "client-b", map[int]struct{}{4: {}})
	assert.True(t, ok)
	assert.Equal(t, 4, cylinder)

	_, ok = occ.CategoryConflict("moda", "client-a", map[int]struct{}{3: {}})
	assert.False(t, ok, "own bookings never restrict")

	_, ok = occ.CategoryConflict("autos", "client-b", map[int]struct{}{3: {}, 4: {}})
	assert.False(t, ok)

	_, ok = occ.CategoryConflict("moda", "client-b", nil)
	assert.False(t, ok)
}
