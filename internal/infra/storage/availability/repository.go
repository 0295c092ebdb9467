package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
	"github.com/rubenautodetail/autodetailapp/pkg/psqlbuilder"
)

// Repository репозиторий availability ledger — записей доступности
// контракторов по дням. Чтение для календаря и подбора кандидата,
// запись только условная (hold).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория availability ledger
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var recordColumns = []string{
	"id",
	"contractor_id",
	"date",
	"morning_available", "morning_booked", "morning_held", "morning_hold_token", "morning_hold_expires_at",
	"afternoon_available", "afternoon_booked", "afternoon_held", "afternoon_hold_token", "afternoon_hold_expires_at",
	"evening_available", "evening_booked", "evening_held", "evening_hold_token", "evening_hold_expires_at",
	"created_at", "updated_at",
}

// GetByContractorsAndDateRange получает записи доступности контракторов
// за диапазон дат [from, to] включительно
func (r *Repository) GetByContractorsAndDateRange(ctx context.Context, contractorIDs []string, from, to time.Time) ([]*domain.AvailabilityRecord, error) {
	if len(contractorIDs) == 0 {
		return []*domain.AvailabilityRecord{}, nil
	}

	query, args, err := psqlbuilder.Select(recordColumns...).
		From("contractor_availability").
		Where(squirrel.Eq{"contractor_id": contractorIDs}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC, contractor_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByContractorsAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByContractorsAndDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// GetByContractorsAndDate получает записи доступности контракторов на одну дату.
// Порядок стабильный (contractor_id ASC) — подбор кандидата first-fit.
func (r *Repository) GetByContractorsAndDate(ctx context.Context, contractorIDs []string, date time.Time) ([]*domain.AvailabilityRecord, error) {
	if len(contractorIDs) == 0 {
		return []*domain.AvailabilityRecord{}, nil
	}

	query, args, err := psqlbuilder.Select(recordColumns...).
		From("contractor_availability").
		Where(squirrel.Eq{"contractor_id": contractorIDs}).
		Where(squirrel.Eq{"date": date}).
		OrderBy("contractor_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByContractorsAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByContractorsAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// HoldWindow ставит hold на окно записи одним условным UPDATE (compare-and-swap).
// Запись проходит только если окно всё ещё bookable:
// available && !booked && (!held || hold истёк). available/booked не трогаем.
// 0 затронутых строк — проигранная гонка, возвращаем ErrHoldRaceLost.
func (r *Repository) HoldWindow(ctx context.Context, recordID int64, window domain.TimeWindow, token string, expiresAt, now time.Time) error {
	if !window.IsValid() {
		return ErrInvalidWindow
	}

	col := func(suffix string) string { return string(window) + "_" + suffix }

	query, args, err := psqlbuilder.Update("contractor_availability").
		Set(col("held"), true).
		Set(col("hold_token"), token).
		Set(col("hold_expires_at"), expiresAt).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": recordID}).
		Where(squirrel.Eq{col("available"): true}).
		Where(squirrel.Eq{col("booked"): false}).
		Where(squirrel.Or{
			squirrel.Eq{col("held"): false},
			squirrel.LtOrEq{col("hold_expires_at"): now},
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: HoldWindow - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: HoldWindow - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: HoldWindow - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHoldRaceLost
	}

	return nil
}

// ReleaseExpiredHolds снимает просроченные hold'ы на дату (опциональный
// reclaim для операторского тулинга; read path и так проверяет expiry)
func (r *Repository) ReleaseExpiredHolds(ctx context.Context, now time.Time) (int64, error) {
	var total int64

	for _, window := range domain.AllTimeWindows {
		col := func(suffix string) string { return string(window) + "_" + suffix }

		query, args, err := psqlbuilder.Update("contractor_availability").
			Set(col("held"), false).
			Set(col("hold_token"), nil).
			Set(col("hold_expires_at"), nil).
			Set("updated_at", now).
			Where(squirrel.Eq{col("held"): true}).
			Where(squirrel.LtOrEq{col("hold_expires_at"): now}).
			ToSql()

		if err != nil {
			return total, fmt.Errorf("%w: ReleaseExpiredHolds - build update query: %v", ErrBuildQuery, err)
		}

		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return total, fmt.Errorf("%w: ReleaseExpiredHolds - execute update: %v", ErrExecQuery, err)
		}

		n, err := result.RowsAffected()
		if err != nil {
			return total, fmt.Errorf("%w: ReleaseExpiredHolds - get rows affected: %v", ErrExecQuery, err)
		}
		total += n
	}

	return total, nil
}

// scanRecords сканирует результаты запроса в слайс записей доступности
func (r *Repository) scanRecords(rows *sql.Rows) ([]*domain.AvailabilityRecord, error) {
	records := make([]*domain.AvailabilityRecord, 0)

	for rows.Next() {
		var rec domain.AvailabilityRecord
		var createdAt, updatedAt sql.NullTime

		var (
			morningToken, afternoonToken, eveningToken       sql.NullString
			morningExpires, afternoonExpires, eveningExpires sql.NullTime
		)

		err := rows.Scan(
			&rec.ID,
			&rec.ContractorID,
			&rec.Date,
			&rec.Windows.Morning.Available, &rec.Windows.Morning.Booked, &rec.Windows.Morning.Held, &morningToken, &morningExpires,
			&rec.Windows.Afternoon.Available, &rec.Windows.Afternoon.Booked, &rec.Windows.Afternoon.Held, &afternoonToken, &afternoonExpires,
			&rec.Windows.Evening.Available, &rec.Windows.Evening.Booked, &rec.Windows.Evening.Held, &eveningToken, &eveningExpires,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanRecords - scan row: %v", ErrScanRow, err)
		}

		applyNullableHold(&rec.Windows.Morning, morningToken, morningExpires)
		applyNullableHold(&rec.Windows.Afternoon, afternoonToken, afternoonExpires)
		applyNullableHold(&rec.Windows.Evening, eveningToken, eveningExpires)

		rec.CreatedAt = createdAt.Time
		rec.UpdatedAt = updatedAt.Time

		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRecords - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

func applyNullableHold(w *domain.WindowState, token sql.NullString, expires sql.NullTime) {
	if token.Valid {
		w.HoldToken = &token.String
	}
	if expires.Valid {
		t := expires.Time
		w.HoldExpiresAt = &t
	}
}
