package googlesheets

import "strings"

// HeaderRow номер строки заголовка. Данные начинаются со следующей строки.
const HeaderRow = 1

// Sheet содержимое листа: заголовок и строки данных.
// Rows[i] лежит в строке листа i+2.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Column индекс колонки по имени (с нуля) или -1
func (s *Sheet) Column(name string) int {
	for i, h := range s.Header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// Value значение ячейки строки данных по имени колонки. Пустая строка, если ячейки нет.
func (s *Sheet) Value(rowIndex int, column string) string {
	col := s.Column(column)
	if col < 0 || rowIndex < 0 || rowIndex >= len(s.Rows) {
		return ""
	}
	row := s.Rows[rowIndex]
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// RowNumber номер строки листа для индекса строки данных
func RowNumber(dataIndex int) int {
	return dataIndex + HeaderRow + 1
}

// ColumnLetter буквенное обозначение колонки по номеру с единицы: 1 -> A, 27 -> AA
func ColumnLetter(col int) string {
	var letters []byte
	for col > 0 {
		col--
		letters = append([]byte{byte('A' + col%26)}, letters...)
		col /= 26
	}
	return string(letters)
}
