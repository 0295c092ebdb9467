package catalog

import "errors"

var (
	// ErrZoneNotFound возвращается, когда для ZIP нет записи service_zone
	ErrZoneNotFound = errors.New("catalog.repository: service zone not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или не опубликована
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrAddOnNotFound возвращается, когда хотя бы один из запрошенных допов не найден
	ErrAddOnNotFound = errors.New("catalog.repository: add-on not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
