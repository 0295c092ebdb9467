package get_availability

import (
	"github.com/rubenautodetail/autodetailapp/internal/domain"
)

// Request модель запроса календаря доступности
type Request struct {
	ZipCode   string
	ServiceID *string // опционально, влияет только на serviceDuration
	Month     string  // YYYY-MM
}

// Slot одно временное окно с количеством доступных контракторов
type Slot struct {
	Window               domain.TimeWindow
	Label                string
	ContractorsAvailable int
}

// DateSlots все непустые окна одной даты
type DateSlots struct {
	Date  string // YYYY-MM-DD
	Slots []Slot
}

// NextAvailable первая доступная пара (дата, окно)
type NextAvailable struct {
	Date   string
	Window domain.TimeWindow
	Label  string
}

// Response модель ответа с календарём на месяц
type Response struct {
	Available       bool
	ZipCode         string
	Month           string
	ServiceDuration int
	ContractorCount int
	AvailableDates  []DateSlots
	NextAvailable   *NextAvailable
	DegradedMode    bool // календарь синтетический
}
