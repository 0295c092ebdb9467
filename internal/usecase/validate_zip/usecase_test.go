package validate_zip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
	catalogRepo "github.com/rubenautodetail/autodetailapp/internal/infra/storage/catalog"
)

type fakeCatalogRepo struct {
	zones    map[string]*domain.ServiceZone
	services []domain.Service
	addOns   []domain.AddOn
	err      error
}

func (f *fakeCatalogRepo) GetZoneByZip(_ context.Context, zipCode string) (*domain.ServiceZone, error) {
	if f.err != nil {
		return nil, f.err
	}
	zone, ok := f.zones[zipCode]
	if !ok {
		return nil, catalogRepo.ErrZoneNotFound
	}
	return zone, nil
}

func (f *fakeCatalogRepo) GetPublishedServices(_ context.Context) ([]domain.Service, error) {
	return f.services, nil
}

func (f *fakeCatalogRepo) GetPublishedAddOns(_ context.Context) ([]domain.AddOn, error) {
	return f.addOns, nil
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

func TestUseCase_Execute(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	servedZone := &domain.ServiceZone{
		ZipCode:             "94103",
		IsActive:            true,
		CoverageRadiusMiles: 30,
		PriceMultiplier:     1.2,
		Contractors: []domain.Contractor{
			{ID: "c-1", Name: "Alpha Detailing", Status: domain.ContractorActive},
			{ID: "c-2", Name: "Beta Shine", Status: domain.ContractorInactive},
		},
	}

	newUC := func(repo *fakeCatalogRepo, degraded bool, metrics *fakeMetrics) *UseCase {
		uc := NewUseCase(repo, degraded, metrics, nopLogger{})
		uc.timeProvider = fixedTime{now}
		return uc
	}

	t.Run("serviced zone returns catalog and zone data", func(t *testing.T) {
		repo := &fakeCatalogRepo{
			zones:    map[string]*domain.ServiceZone{"94103": servedZone},
			services: []domain.Service{{ID: "svc-1", Name: "Full Detail", BasePrice: 49}},
			addOns:   []domain.AddOn{{ID: "addon-1", Name: "Wax", Price: 35}},
		}
		uc := newUC(repo, false, newFakeMetrics())

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "94103"})
		require.NoError(t, err)

		assert.True(t, resp.Available)
		assert.Equal(t, "94103", resp.ZipCode)
		assert.Equal(t, servedZone, resp.Zone)
		assert.Len(t, resp.Services, 1)
		assert.Len(t, resp.AddOns, 1)
		assert.Equal(t, 1, resp.ContractorCount, "inactive contractors must not be counted")
		require.NotNil(t, resp.NextAvailableDate)
		assert.Equal(t, now.AddDate(0, 0, 1), *resp.NextAvailableDate)
		assert.False(t, resp.DegradedMode)
	})

	t.Run("zip plus four is canonicalized before lookup", func(t *testing.T) {
		repo := &fakeCatalogRepo{zones: map[string]*domain.ServiceZone{"94103": servedZone}}
		uc := newUC(repo, false, newFakeMetrics())

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "94103-1234"})
		require.NoError(t, err)
		assert.True(t, resp.Available)
		assert.Equal(t, "94103", resp.ZipCode)
	})

	t.Run("sentinel zip is never serviced", func(t *testing.T) {
		repo := &fakeCatalogRepo{zones: map[string]*domain.ServiceZone{}}
		uc := newUC(repo, true, newFakeMetrics())

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "00000"})
		require.NoError(t, err)
		assert.False(t, resp.Available)
		assert.Nil(t, resp.Zone)
		assert.Contains(t, resp.Message, "waitlist")
	})

	t.Run("unknown zip with degraded mode serves fallback zone", func(t *testing.T) {
		metrics := newFakeMetrics()
		repo := &fakeCatalogRepo{zones: map[string]*domain.ServiceZone{}}
		uc := newUC(repo, true, metrics)

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "10001"})
		require.NoError(t, err)

		assert.True(t, resp.Available)
		assert.True(t, resp.DegradedMode)
		require.NotNil(t, resp.Zone)
		assert.Equal(t, domain.FallbackCoverageRadiusMiles, resp.Zone.CoverageRadiusMiles)
		assert.Equal(t, domain.FallbackPriceMultiplier, resp.Zone.PriceMultiplier)
		assert.Equal(t, 0, resp.ContractorCount)
		assert.Equal(t, 1, metrics.degraded["validate_zip"])
	})

	t.Run("unknown zip without degraded mode is refused", func(t *testing.T) {
		repo := &fakeCatalogRepo{zones: map[string]*domain.ServiceZone{}}
		uc := newUC(repo, false, newFakeMetrics())

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "10001"})
		require.NoError(t, err)
		assert.False(t, resp.Available)
		assert.False(t, resp.DegradedMode)
	})

	t.Run("disabled zone is refused even in degraded mode", func(t *testing.T) {
		repo := &fakeCatalogRepo{zones: map[string]*domain.ServiceZone{
			"94103": {ZipCode: "94103", IsActive: false},
		}}
		uc := newUC(repo, true, newFakeMetrics())

		resp, err := uc.Execute(context.Background(), &Request{ZipCode: "94103"})
		require.NoError(t, err)
		assert.False(t, resp.Available)
	})

	t.Run("invalid zip", func(t *testing.T) {
		uc := newUC(&fakeCatalogRepo{}, false, newFakeMetrics())

		_, err := uc.Execute(context.Background(), &Request{ZipCode: "abc"})
		assert.ErrorIs(t, err, ErrInvalidZip)

		_, err = uc.Execute(context.Background(), &Request{ZipCode: "  "})
		assert.ErrorIs(t, err, ErrZipRequired)
	})

	t.Run("storage failure maps to internal error", func(t *testing.T) {
		repo := &fakeCatalogRepo{err: errors.New("connection refused")}
		uc := newUC(repo, true, newFakeMetrics())

		_, err := uc.Execute(context.Background(), &Request{ZipCode: "94103"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
