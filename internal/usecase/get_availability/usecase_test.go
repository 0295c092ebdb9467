package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
	catalogRepo "github.com/rubenautodetail/autodetailapp/internal/infra/storage/catalog"
	"github.com/rubenautodetail/autodetailapp/pkg/ptr"
)

type fakeCatalogRepo struct {
	zones    map[string]*domain.ServiceZone
	services map[string]*domain.Service
}

func (f *fakeCatalogRepo) GetZoneByZip(_ context.Context, zipCode string) (*domain.ServiceZone, error) {
	zone, ok := f.zones[zipCode]
	if !ok {
		return nil, catalogRepo.ErrZoneNotFound
	}
	return zone, nil
}

func (f *fakeCatalogRepo) GetServiceByID(_ context.Context, id string) (*domain.Service, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return service, nil
}

type fakeAvailabilityRepo struct {
	records []*domain.AvailabilityRecord
}

func (f *fakeAvailabilityRepo) GetByContractorsAndDateRange(_ context.Context, _ []string, from, to time.Time) ([]*domain.AvailabilityRecord, error) {
	result := make([]*domain.AvailabilityRecord, 0, len(f.records))
	for _, rec := range f.records {
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		result = append(result, rec)
	}
	return result, nil
}

type fakeMetrics struct {
	degraded map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{degraded: make(map[string]int)}
}

func (f *fakeMetrics) IncDegradedMode(operation string) { f.degraded[operation]++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUseCase_Execute_Degraded(t *testing.T) {
	// 2026-03-10 is a Tuesday
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	newUC := func(degraded bool, metrics *fakeMetrics) *UseCase {
		repo := &fakeCatalogRepo{zones: map[string]*domain.ServiceZone{}}
		uc := NewUseCase(repo, &fakeAvailabilityRepo{}, degraded, metrics, nopLogger{})
		uc.timeProvider = fixedTime{now}
		return uc
	}

	t.Run("future month synthesizes every day except Sundays", func(t *testing.T) {
		metrics := newFakeMetrics()
		uc := newUC(true, metrics)

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "10001", Month: "2026-04"})
		require.NoError(t, err)

		assert.True(t, resp.Available)
		assert.True(t, resp.DegradedMode)
		assert.Equal(t, 1, resp.ContractorCount)
		assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.ServiceDuration)
		// April 2026 has 30 days and 4 Sundays
		assert.Len(t, resp.AvailableDates, 26)
		assert.Equal(t, "2026-04-01", resp.AvailableDates[0].Date)
		assert.Equal(t, 1, metrics.degraded["availability"])

		for _, d := range resp.AvailableDates {
			day, err := time.Parse(domain.DateFormat, d.Date)
			require.NoError(t, err)
			assert.NotEqual(t, time.Sunday, day.Weekday(), "date %s", d.Date)

			require.Len(t, d.Slots, 3)
			assert.Equal(t, domain.WindowMorning, d.Slots[0].Window)
			assert.Equal(t, domain.WindowAfternoon, d.Slots[1].Window)
			assert.Equal(t, domain.WindowEvening, d.Slots[2].Window)
			for _, s := range d.Slots {
				assert.Equal(t, domain.DegradedCapacity, s.ContractorsAvailable)
				assert.NotEmpty(t, s.Label)
			}
		}

		require.NotNil(t, resp.NextAvailable)
		assert.Equal(t, "2026-04-01", resp.NextAvailable.Date)
		assert.Equal(t, domain.WindowMorning, resp.NextAvailable.Window)
	})

	t.Run("current month starts from today", func(t *testing.T) {
		uc := newUC(true, newFakeMetrics())

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "10001", Month: "2026-03"})
		require.NoError(t, err)

		require.NotEmpty(t, resp.AvailableDates)
		assert.Equal(t, "2026-03-10", resp.AvailableDates[0].Date)
		for _, d := range resp.AvailableDates {
			assert.GreaterOrEqual(t, d.Date, "2026-03-10")
		}
	})

	t.Run("past month is empty", func(t *testing.T) {
		uc := newUC(true, newFakeMetrics())

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "10001", Month: "2026-01"})
		require.NoError(t, err)

		assert.False(t, resp.Available)
		assert.Empty(t, resp.AvailableDates)
		assert.Nil(t, resp.NextAvailable)
	})

	t.Run("degraded mode disabled returns empty calendar", func(t *testing.T) {
		uc := newUC(false, newFakeMetrics())

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "10001", Month: "2026-04"})
		require.NoError(t, err)

		assert.False(t, resp.Available)
		assert.Empty(t, resp.AvailableDates)
		assert.False(t, resp.DegradedMode)
	})

	t.Run("validation", func(t *testing.T) {
		uc := newUC(true, newFakeMetrics())

		_, err := uc.Execute(context.Background(), &Request{ZipCode: "abc", Month: "2026-04"})
		assert.ErrorIs(t, err, ErrInvalidZip)

		_, err = uc.Execute(context.Background(), &Request{ZipCode: "10001", Month: "2026-13"})
		assert.ErrorIs(t, err, ErrInvalidMonth)

		_, err = uc.Execute(context.Background(), &Request{ZipCode: "10001", Month: "04-2026"})
		assert.ErrorIs(t, err, ErrInvalidMonth)

		_, err = uc.Execute(context.Background(), &Request{ZipCode: "10001"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUseCase_Execute_RealRecords(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	zone := &domain.ServiceZone{
		ZipCode:  "94103",
		IsActive: true,
		Contractors: []domain.Contractor{
			{ID: "c-1", Name: "Alpha Detailing", Status: domain.ContractorActive},
			{ID: "c-2", Name: "Beta Shine", Status: domain.ContractorActive},
			{ID: "c-3", Name: "Gone Inc", Status: domain.ContractorInactive},
		},
	}

	open := domain.WindowState{Available: true}

	records := []*domain.AvailabilityRecord{
		// Прошлая дата, должна быть отброшена
		{
			ID: 1, ContractorID: "c-1", Date: date(2026, 3, 5),
			Windows: domain.TimeWindows{Morning: open, Afternoon: open, Evening: open},
		},
		{
			ID: 2, ContractorID: "c-1", Date: date(2026, 3, 16),
			Windows: domain.TimeWindows{
				Morning:   open,
				Afternoon: domain.WindowState{Available: true, Booked: true},
				Evening: domain.WindowState{
					Available:     true,
					Held:          true,
					HoldToken:     ptr.Ptr("hold_1_active"),
					HoldExpiresAt: ptr.Ptr(now.Add(5 * time.Minute)),
				},
			},
		},
		{
			ID: 3, ContractorID: "c-2", Date: date(2026, 3, 16),
			Windows: domain.TimeWindows{
				Morning: domain.WindowState{
					Available:     true,
					Held:          true,
					HoldToken:     ptr.Ptr("hold_1_expired"),
					HoldExpiresAt: ptr.Ptr(now.Add(-time.Minute)),
				},
			},
		},
		{
			ID: 4, ContractorID: "c-1", Date: date(2026, 3, 17),
			Windows: domain.TimeWindows{Afternoon: open},
		},
	}

	catalog := &fakeCatalogRepo{
		zones:    map[string]*domain.ServiceZone{"94103": zone},
		services: map[string]*domain.Service{"svc-1": {ID: "svc-1", DurationMinutes: 180}},
	}

	newUC := func(avail *fakeAvailabilityRepo) *UseCase {
		uc := NewUseCase(catalog, avail, true, newFakeMetrics(), nopLogger{})
		uc.timeProvider = fixedTime{now}
		return uc
	}

	t.Run("aggregates bookable windows across contractors", func(t *testing.T) {
		uc := newUC(&fakeAvailabilityRepo{records: records})

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "94103", Month: "2026-03"})
		require.NoError(t, err)

		assert.True(t, resp.Available)
		assert.False(t, resp.DegradedMode)
		assert.Equal(t, 2, resp.ContractorCount, "inactive contractor must not be counted")

		require.Len(t, resp.AvailableDates, 2)

		march16 := resp.AvailableDates[0]
		assert.Equal(t, "2026-03-16", march16.Date)
		// Morning: c-1 открыт + у c-2 просрочен hold. Afternoon занят, evening под активным hold'ом.
		require.Len(t, march16.Slots, 1)
		assert.Equal(t, domain.WindowMorning, march16.Slots[0].Window)
		assert.Equal(t, 2, march16.Slots[0].ContractorsAvailable)

		march17 := resp.AvailableDates[1]
		assert.Equal(t, "2026-03-17", march17.Date)
		require.Len(t, march17.Slots, 1)
		assert.Equal(t, domain.WindowAfternoon, march17.Slots[0].Window)
		assert.Equal(t, 1, march17.Slots[0].ContractorsAvailable)

		require.NotNil(t, resp.NextAvailable)
		assert.Equal(t, "2026-03-16", resp.NextAvailable.Date)
		assert.Equal(t, domain.WindowMorning, resp.NextAvailable.Window)
	})

	t.Run("service id adjusts duration", func(t *testing.T) {
		uc := newUC(&fakeAvailabilityRepo{records: records})

		resp, err := uc.Execute(context.Background(), &Request{
			ZipCode:   "94103",
			ServiceID: ptr.Ptr("svc-1"),
			Month:     "2026-03",
		})
		require.NoError(t, err)
		assert.Equal(t, 180, resp.ServiceDuration)
	})

	t.Run("unknown service id keeps default duration", func(t *testing.T) {
		uc := newUC(&fakeAvailabilityRepo{records: records})

		resp, err := uc.Execute(context.Background(), &Request{
			ZipCode:   "94103",
			ServiceID: ptr.Ptr("svc-missing"),
			Month:     "2026-03",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.ServiceDuration)
	})

	t.Run("contractors without records fall back to synthetic calendar", func(t *testing.T) {
		uc := newUC(&fakeAvailabilityRepo{})

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "94103", Month: "2026-04"})
		require.NoError(t, err)

		assert.True(t, resp.Available)
		assert.True(t, resp.DegradedMode)
		assert.Equal(t, 2, resp.ContractorCount)
		assert.Len(t, resp.AvailableDates, 26)
	})

	t.Run("disabled zone returns empty calendar", func(t *testing.T) {
		disabled := &fakeCatalogRepo{zones: map[string]*domain.ServiceZone{
			"94103": {ZipCode: "94103", IsActive: false},
		}}
		uc := NewUseCase(disabled, &fakeAvailabilityRepo{}, true, newFakeMetrics(), nopLogger{})
		uc.timeProvider = fixedTime{now}

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "94103", Month: "2026-04"})
		require.NoError(t, err)
		assert.False(t, resp.Available)
		assert.Empty(t, resp.AvailableDates)
	})
}
