package schedule

import "errors"

var (
	// ErrNotFound возвращается, когда запись расписания не найдена
	ErrNotFound = errors.New("schedule.repository: record not found")

	// ErrRangeNotSet возвращается, когда глобальный диапазон дат не задан
	ErrRangeNotSet = errors.New("schedule.repository: available date range not set")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
