package validate_zip

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
)

// validateZip проверяет и канонизирует ZIP из запроса
func validateZip(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrZipRequired
	}

	zip, err := domain.CleanZip(raw)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidZip) {
			return "", fmt.Errorf("%w: %q", ErrInvalidZip, raw)
		}
		return "", err
	}

	return zip, nil
}
