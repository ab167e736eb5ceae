package googlesheets

import "errors"

var (
	// ErrSheetNotFound возвращается, когда в таблице нет листа с таким именем
	ErrSheetNotFound = errors.New("googlesheets: sheet not found")

	// ErrInvalidRow возвращается при обращении к строке заголовка или к строке вне листа
	ErrInvalidRow = errors.New("googlesheets: invalid row number")

	// ErrRequest возвращается при ошибке вызова Google Sheets API
	ErrRequest = errors.New("googlesheets: request failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlesheets: internal error")
)
