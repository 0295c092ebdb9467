package hold_slot

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствующих обязательных полях
	ErrInvalidInput = errors.New("hold_slot: invalid input data")

	// ErrInvalidZip возвращается при некорректном формате ZIP
	ErrInvalidZip = errors.New("hold_slot: invalid zip code format")

	// ErrInvalidDate возвращается при некорректном формате даты (ожидается YYYY-MM-DD)
	ErrInvalidDate = errors.New("hold_slot: invalid date format")

	// ErrInvalidTimeWindow возвращается при неизвестном временном окне
	ErrInvalidTimeWindow = errors.New("hold_slot: invalid time window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("hold_slot: internal error")
)
