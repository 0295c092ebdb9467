package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
	"github.com/rubenautodetail/autodetailapp/pkg/psqlbuilder"
)

// Repository репозиторий каталога: зоны обслуживания, контракторы,
// услуги и допы. Каталог для сервиса read-only — записи создаются
// операторским тулингом.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetZoneByZip получает активную зону обслуживания по ZIP вместе с контракторами.
// Если записи нет — ErrZoneNotFound (решение о degraded mode принимает usecase).
func (r *Repository) GetZoneByZip(ctx context.Context, zipCode string) (*domain.ServiceZone, error) {
	query, args, err := psqlbuilder.Select(
		"zip_code",
		"is_active",
		"coverage_radius_miles",
		"price_multiplier",
	).
		From("service_zones").
		Where(squirrel.Eq{"zip_code": zipCode}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetZoneByZip - build select query: %v", ErrBuildQuery, err)
	}

	var zone domain.ServiceZone
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&zone.ZipCode,
		&zone.IsActive,
		&zone.CoverageRadiusMiles,
		&zone.PriceMultiplier,
	)

	if err == sql.ErrNoRows {
		return nil, ErrZoneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetZoneByZip - scan zone: %v", ErrScanRow, err)
	}

	contractors, err := r.getContractorsByZip(ctx, zipCode)
	if err != nil {
		return nil, err
	}
	zone.Contractors = contractors

	return &zone, nil
}

// getContractorsByZip получает всех контракторов, привязанных к зоне
func (r *Repository) getContractorsByZip(ctx context.Context, zipCode string) ([]domain.Contractor, error) {
	query, args, err := psqlbuilder.Select(
		"c.id",
		"c.name",
		"c.status",
	).
		From("contractors c").
		Join("zone_contractors zc ON zc.contractor_id = c.id").
		Where(squirrel.Eq{"zc.zip_code": zipCode}).
		OrderBy("c.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getContractorsByZip - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getContractorsByZip - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	contractors := make([]domain.Contractor, 0)
	for rows.Next() {
		var c domain.Contractor
		if err := rows.Scan(&c.ID, &c.Name, &c.Status); err != nil {
			return nil, fmt.Errorf("%w: getContractorsByZip - scan contractor: %v", ErrScanRow, err)
		}
		contractors = append(contractors, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getContractorsByZip - rows error: %v", ErrScanRow, err)
	}

	return contractors, nil
}

// GetPublishedServices получает все опубликованные услуги каталога
func (r *Repository) GetPublishedServices(ctx context.Context) ([]domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"base_price",
		"duration_minutes",
	).
		From("services").
		Where(squirrel.NotEq{"published_at": nil}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPublishedServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPublishedServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.BasePrice, &s.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: GetPublishedServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPublishedServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServiceByID получает опубликованную услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id string) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"base_price",
		"duration_minutes",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"published_at": nil}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.BasePrice,
		&s.DurationMinutes,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetPublishedAddOns получает все опубликованные допы каталога
func (r *Repository) GetPublishedAddOns(ctx context.Context) ([]domain.AddOn, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"price",
		"duration_minutes",
	).
		From("add_ons").
		Where(squirrel.NotEq{"published_at": nil}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPublishedAddOns - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPublishedAddOns - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAddOns(rows)
}

// GetAddOnsByIDs получает допы по списку ID.
// Если хотя бы один ID не резолвится в опубликованный доп — ErrAddOnNotFound:
// клиент сослался на несуществующую позицию каталога.
func (r *Repository) GetAddOnsByIDs(ctx context.Context, ids []string) ([]domain.AddOn, error) {
	if len(ids) == 0 {
		return []domain.AddOn{}, nil
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"price",
		"duration_minutes",
	).
		From("add_ons").
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.NotEq{"published_at": nil}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAddOnsByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAddOnsByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	addOns, err := r.scanAddOns(rows)
	if err != nil {
		return nil, err
	}

	if len(addOns) != len(ids) {
		return nil, ErrAddOnNotFound
	}

	return addOns, nil
}

// scanAddOns сканирует результаты запроса в слайс допов
func (r *Repository) scanAddOns(rows *sql.Rows) ([]domain.AddOn, error) {
	addOns := make([]domain.AddOn, 0)

	for rows.Next() {
		var a domain.AddOn
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Price, &a.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: scanAddOns - scan row: %v", ErrScanRow, err)
		}
		addOns = append(addOns, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAddOns - rows error: %v", ErrScanRow, err)
	}

	return addOns, nil
}
