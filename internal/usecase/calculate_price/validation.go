package calculate_price

import (
	"fmt"
	"strings"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
)

// validateRequest валидирует запрос и возвращает канонизированный ZIP
func validateRequest(req *Request) (string, error) {
	if strings.TrimSpace(req.ServiceID) == "" {
		return "", fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ZipCode) == "" {
		return "", fmt.Errorf("%w: zipCode is required", ErrInvalidInput)
	}

	zip, err := domain.CleanZip(req.ZipCode)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidZip, req.ZipCode)
	}

	return zip, nil
}
