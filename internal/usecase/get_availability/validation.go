package get_availability

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
)

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// validateRequest валидирует запрос, возвращает канонизированный ZIP
// и распарсенный месяц
func validateRequest(req *Request) (string, time.Time, error) {
	if strings.TrimSpace(req.ZipCode) == "" {
		return "", time.Time{}, fmt.Errorf("%w: zipCode is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Month) == "" {
		return "", time.Time{}, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	zip, err := domain.CleanZip(req.ZipCode)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrInvalidZip, req.ZipCode)
	}

	if !monthRe.MatchString(req.Month) {
		return "", time.Time{}, fmt.Errorf("%w: %q, expected YYYY-MM", ErrInvalidMonth, req.Month)
	}

	// Regexp пропускает месяцы вроде 2024-13, парсинг отсечёт
	month, err := time.ParseInLocation(domain.MonthFormat, req.Month, time.UTC)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %q, expected YYYY-MM", ErrInvalidMonth, req.Month)
	}

	return zip, month, nil
}
