package sheets

import (
	"context"
	"fmt"

	"github.com/Angelolozano-7/Prisma-Led/internal/integrations/googlesheets"
)

type cellUpdate struct {
	sheet string
	row   int
	col   int
	value string
}

// fakeStore хранит листы в памяти и сдвигает строки при удалении, как Google Sheets
type fakeStore struct {
	sheets      map[string]*googlesheets.Sheet
	deletedRows map[string][]int
	cells       []cellUpdate
	appendErr   map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sheets:      make(map[string]*googlesheets.Sheet),
		deletedRows: make(map[string][]int),
		appendErr:   make(map[string]error),
	}
}

func (f *fakeStore) with(sheet string, header []string, rows ...[]string) *fakeStore {
	f.sheets[sheet] = &googlesheets.Sheet{Name: sheet, Header: header, Rows: rows}
	return f
}

func (f *fakeStore) List(ctx context.Context, sheet string) (*googlesheets.Sheet, error) {
	s, ok := f.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %s", googlesheets.ErrSheetNotFound, sheet)
	}
	rows := make([][]string, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = append([]string(nil), row...)
	}
	return &googlesheets.Sheet{Name: s.Name, Header: append([]string(nil), s.Header...), Rows: rows}, nil
}

func (f *fakeStore) Append(ctx context.Context, sheet string, row []string) error {
	return f.AppendMany(ctx, sheet, [][]string{row})
}

func (f *fakeStore) AppendMany(ctx context.Context, sheet string, rows [][]string) error {
	if err := f.appendErr[sheet]; err != nil {
		return err
	}
	s := f.sheets[sheet]
	for _, row := range rows {
		s.Rows = append(s.Rows, append([]string(nil), row...))
	}
	return nil
}

func (f *fakeStore) UpdateCell(ctx context.Context, sheet string, row, col int, value string) error {
	s := f.sheets[sheet]
	s.Rows[row-2][col-1] = value
	f.cells = append(f.cells, cellUpdate{sheet: sheet, row: row, col: col, value: value})
	return nil
}

func (f *fakeStore) UpdateRow(ctx context.Context, sheet string, row int, values []string) error {
	s := f.sheets[sheet]
	if row-2 >= len(s.Rows) {
		return googlesheets.ErrInvalidRow
	}
	s.Rows[row-2] = append([]string(nil), values...)
	return nil
}

func (f *fakeStore) DeleteRow(ctx context.Context, sheet string, row int) error {
	s := f.sheets[sheet]
	idx := row - 2
	if idx < 0 || idx >= len(s.Rows) {
		return googlesheets.ErrInvalidRow
	}
	s.Rows = append(s.Rows[:idx], s.Rows[idx+1:]...)
	f.deletedRows[sheet] = append(f.deletedRows[sheet], row)
	return nil
}

var itemHeader = []string{colItemID, colPreReservationID, colScreenID, colCategory, colRateCode}

func (f *fakeStore) ids(sheet, column string) []string {
	s, _ := f.List(context.Background(), sheet)
	ids := make([]string, 0, len(s.Rows))
	for i := range s.Rows {
		ids = append(ids, s.Value(i, column))
	}
	return ids
}
