package sheets

import "errors"

var (
	// ErrStore возвращается при ошибке обращения к листу
	ErrStore = errors.New("sheets.repository: store call failed")

	// ErrRollback возвращается, когда откат частично записанных строк не удался
	ErrRollback = errors.New("sheets.repository: rollback failed")
)
