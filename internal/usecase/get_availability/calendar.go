package get_availability

import (
	"time"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
)

// monthRange возвращает первый и последний день месяца
func monthRange(month time.Time) (time.Time, time.Time) {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// dateOnly обнуляет время, оставляя календарный день
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// synthesizeCalendar строит синтетический календарь для degraded mode:
// каждый день от сегодня (или с 1 числа для будущих месяцев) до конца месяца,
// кроме воскресений, все три окна с вместимостью DegradedCapacity.
// Для прошедших месяцев календарь пустой.
func synthesizeCalendar(start, end, now time.Time) []DateSlots {
	today := dateOnly(now)

	from := start
	if end.Before(today) {
		return []DateSlots{}
	}
	if from.Before(today) {
		from = today
	}

	dates := make([]DateSlots, 0, end.Day())
	for d := from; !d.After(end); d = d.AddDate(0, 0, 1) {
		// Воскресенья пропускаем
		if d.Weekday() == time.Sunday {
			continue
		}

		slots := make([]Slot, 0, len(domain.AllTimeWindows))
		for _, w := range domain.AllTimeWindows {
			slots = append(slots, Slot{
				Window:               w,
				Label:                w.Label(),
				ContractorsAvailable: domain.DegradedCapacity,
			})
		}

		dates = append(dates, DateSlots{
			Date:  d.Format(domain.DateFormat),
			Slots: slots,
		})
	}

	return dates
}

// aggregateCalendar агрегирует реальные записи ledger'а в календарь:
// для каждой даты и окна считаем контракторов с bookable-окном.
// Просроченные hold'ы считаются доступными (lazy expiry на чтении).
// Пустые окна и даты без окон не попадают в ответ; прошлые даты отбрасываются.
func aggregateCalendar(records []*domain.AvailabilityRecord, now time.Time) []DateSlots {
	today := dateOnly(now)

	counts := make(map[string]map[domain.TimeWindow]int)
	for _, rec := range records {
		day := dateOnly(rec.Date)
		if day.Before(today) {
			continue
		}

		key := day.Format(domain.DateFormat)
		if counts[key] == nil {
			counts[key] = make(map[domain.TimeWindow]int)
		}

		for _, w := range domain.AllTimeWindows {
			if rec.Windows.Window(w).IsBookable(now) {
				counts[key][w]++
			}
		}
	}

	// Записи приходят отсортированными по дате, но после группировки
	// проходим по дням заново, чтобы порядок был детерминированным
	dates := make([]DateSlots, 0, len(counts))
	seen := make(map[string]bool)
	for _, rec := range records {
		key := dateOnly(rec.Date).Format(domain.DateFormat)
		if seen[key] {
			continue
		}
		seen[key] = true

		windows, ok := counts[key]
		if !ok {
			continue
		}

		slots := make([]Slot, 0, len(domain.AllTimeWindows))
		for _, w := range domain.AllTimeWindows {
			if n := windows[w]; n > 0 {
				slots = append(slots, Slot{
					Window:               w,
					Label:                w.Label(),
					ContractorsAvailable: n,
				})
			}
		}

		if len(slots) > 0 {
			dates = append(dates, DateSlots{Date: key, Slots: slots})
		}
	}

	return dates
}

// firstAvailable возвращает первую пару (дата, окно) в хронологическом
// порядке; порядок окон внутри дня: morning < afternoon < evening
func firstAvailable(dates []DateSlots) *NextAvailable {
	for _, d := range dates {
		for _, s := range d.Slots {
			if s.ContractorsAvailable > 0 {
				return &NextAvailable{
					Date:   d.Date,
					Window: s.Window,
					Label:  s.Label,
				}
			}
		}
	}
	return nil
}
