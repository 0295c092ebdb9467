package hold_slot

import (
	"github.com/rubenautodetail/autodetailapp/internal/domain"
)

// Request модель запроса hold'а на слот
type Request struct {
	ZipCode         string
	Date            string // YYYY-MM-DD
	TimeWindow      string
	DurationMinutes int // 0 — длительность по умолчанию
}

// Response модель ответа.
// Success=false с Message — нормальный ретраябельный исход
// (слот успели занять), не ошибка.
type Response struct {
	Success bool
	Hold    *domain.Hold
	Message string
}
