package calculate_price

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствующих обязательных полях
	ErrInvalidInput = errors.New("calculate_price: invalid input data")

	// ErrInvalidZip возвращается при некорректном формате ZIP
	ErrInvalidZip = errors.New("calculate_price: invalid zip code format")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("calculate_price: service not found")

	// ErrAddOnNotFound возвращается, когда доп не найден
	ErrAddOnNotFound = errors.New("calculate_price: add-on not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_price: internal error")
)
