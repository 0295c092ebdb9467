package calculate_price

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
	catalogRepo "github.com/rubenautodetail/autodetailapp/internal/infra/storage/catalog"
)

type fakeCatalogRepo struct {
	zones    map[string]*domain.ServiceZone
	services map[string]*domain.Service
	addOns   map[string]domain.AddOn
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

func (f *fakeCatalogRepo) GetAddOnsByIDs(_ context.Context, ids []string) ([]domain.AddOn, error) {
	result := make([]domain.AddOn, 0, len(ids))
	for _, id := range ids {
		addOn, ok := f.addOns[id]
		if !ok {
			return nil, catalogRepo.ErrAddOnNotFound
		}
		result = append(result, addOn)
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

func TestUseCase_Execute(t *testing.T) {
	repo := &fakeCatalogRepo{
		zones: map[string]*domain.ServiceZone{
			"94103": {ZipCode: "94103", IsActive: true, PriceMultiplier: 1.2},
			"10001": {ZipCode: "10001", IsActive: false, PriceMultiplier: 2.0},
		},
		services: map[string]*domain.Service{
			"svc-1": {ID: "svc-1", Name: "Full Detail", BasePrice: 49, DurationMinutes: 120},
		},
		addOns: map[string]domain.AddOn{
			"addon-1": {ID: "addon-1", Name: "Wax", Price: 35, DurationMinutes: 30},
		},
	}

	t.Run("zone multiplier applied to base price", func(t *testing.T) {
		uc := NewUseCase(repo, newFakeMetrics(), nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			ServiceID: "svc-1",
			AddOnIDs:  []string{"addon-1"},
			ZipCode:   "94103",
		})
		require.NoError(t, err)

		assert.InDelta(t, 49.0, resp.Service.BasePrice, 1e-9)
		assert.InDelta(t, 58.8, resp.Service.AdjustedPrice, 1e-9)
		assert.InDelta(t, 1.2, resp.Zone.Multiplier, 1e-9)
		assert.InDelta(t, 93.8, resp.Breakdown.Subtotal, 1e-9)
		assert.InDelta(t, 93.8*domain.ServiceFeeRate, resp.Breakdown.ServiceFee, 1e-9)
		assert.InDelta(t, 93.8*(1+domain.ServiceFeeRate), resp.Breakdown.Total, 1e-9)
		assert.Equal(t, 150, resp.TotalDuration)
	})

	t.Run("unknown zip falls back to neutral multiplier", func(t *testing.T) {
		metrics := newFakeMetrics()
		uc := NewUseCase(repo, metrics, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			ServiceID: "svc-1",
			ZipCode:   "99999",
		})
		require.NoError(t, err)

		assert.InDelta(t, domain.FallbackPriceMultiplier, resp.Zone.Multiplier, 1e-9)
		assert.InDelta(t, 49.0, resp.Service.AdjustedPrice, 1e-9)
		assert.Equal(t, 1, metrics.degraded["calculate_price"])
	})

	t.Run("disabled zone also uses neutral multiplier", func(t *testing.T) {
		uc := NewUseCase(repo, newFakeMetrics(), nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			ServiceID: "svc-1",
			ZipCode:   "10001",
		})
		require.NoError(t, err)
		assert.InDelta(t, domain.FallbackPriceMultiplier, resp.Zone.Multiplier, 1e-9)
	})

	t.Run("unknown service", func(t *testing.T) {
		uc := NewUseCase(repo, newFakeMetrics(), nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ServiceID: "svc-missing",
			ZipCode:   "94103",
		})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("unknown add-on fails the whole calculation", func(t *testing.T) {
		uc := NewUseCase(repo, newFakeMetrics(), nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			ServiceID: "svc-1",
			AddOnIDs:  []string{"addon-1", "addon-missing"},
			ZipCode:   "94103",
		})
		assert.ErrorIs(t, err, ErrAddOnNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewUseCase(repo, newFakeMetrics(), nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{ZipCode: "94103"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{ServiceID: "svc-1"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{ServiceID: "svc-1", ZipCode: "bad"})
		assert.ErrorIs(t, err, ErrInvalidZip)
	})
}
