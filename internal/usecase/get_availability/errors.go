package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствующих обязательных полях
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInvalidZip возвращается при некорректном формате ZIP
	ErrInvalidZip = errors.New("get_availability: invalid zip code format")

	// ErrInvalidMonth возвращается при некорректном формате месяца (ожидается YYYY-MM)
	ErrInvalidMonth = errors.New("get_availability: invalid month format")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
