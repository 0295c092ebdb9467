package domain

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidZip возвращается, когда ZIP не проходит канонизацию
var ErrInvalidZip = errors.New("invalid ZIP code format")

var zipRe = regexp.MustCompile(`^\d{5}$`)

// CleanZip канонизирует US ZIP: принимает DDDDD или DDDDD-DDDD,
// возвращает первые 5 цифр. Всё остальное — ErrInvalidZip.
func CleanZip(raw string) (string, error) {
	zip := strings.TrimSpace(raw)
	if i := strings.Index(zip, "-"); i >= 0 {
		zip = zip[:i]
	}
	if !zipRe.MatchString(zip) {
		return "", ErrInvalidZip
	}
	return zip, nil
}
