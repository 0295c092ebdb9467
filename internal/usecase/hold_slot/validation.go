package hold_slot

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validateRequest валидирует запрос, возвращает канонизированный ZIP,
// дату и временное окно
func validateRequest(req *Request) (string, time.Time, domain.TimeWindow, error) {
	if strings.TrimSpace(req.ZipCode) == "" {
		return "", time.Time{}, "", fmt.Errorf("%w: zipCode is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Date) == "" {
		return "", time.Time{}, "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.TimeWindow) == "" {
		return "", time.Time{}, "", fmt.Errorf("%w: timeWindow is required", ErrInvalidInput)
	}

	zip, err := domain.CleanZip(req.ZipCode)
	if err != nil {
		return "", time.Time{}, "", fmt.Errorf("%w: %q", ErrInvalidZip, req.ZipCode)
	}

	window := domain.TimeWindow(req.TimeWindow)
	if !window.IsValid() {
		return "", time.Time{}, "", fmt.Errorf("%w: %q, use morning, afternoon or evening", ErrInvalidTimeWindow, req.TimeWindow)
	}

	if !dateRe.MatchString(req.Date) {
		return "", time.Time{}, "", fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, req.Date)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.UTC)
	if err != nil {
		return "", time.Time{}, "", fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, req.Date)
	}

	return zip, date, window, nil
}
