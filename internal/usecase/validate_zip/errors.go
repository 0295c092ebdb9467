package validate_zip

import "errors"

var (
	// ErrZipRequired возвращается, когда ZIP не передан
	ErrZipRequired = errors.New("validate_zip: zip code is required")

	// ErrInvalidZip возвращается при некорректном формате ZIP
	ErrInvalidZip = errors.New("validate_zip: invalid zip code format")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_zip: internal error")
)
