package availability

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись доступности не найдена
	ErrRecordNotFound = errors.New("availability.repository: record not found")

	// ErrHoldRaceLost возвращается, когда условный UPDATE не прошёл:
	// окно изменилось между чтением и записью (конкурентный hold/booking).
	// Это не ошибка инфраструктуры — вызывающий пробует следующего кандидата.
	ErrHoldRaceLost = errors.New("availability.repository: window state changed, hold not applied")

	// ErrInvalidWindow возвращается при неизвестном имени временного окна
	ErrInvalidWindow = errors.New("availability.repository: invalid time window")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
