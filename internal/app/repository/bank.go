package repository

import (
	"context"

	"fueleu_compliance/internal/app/ds"

	"github.com/pkg/errors"
)

// GetBankedAmount - чистый баланс (банкинг минус применения)
func (r *Repository) GetBankedAmount(ctx context.Context, shipID string, year int) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&ds.BankEntry{}).
		Select("COALESCE(SUM(amount_gco2eq), 0)").
		Where("ship_id = ? AND year = ?", shipID, year).
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "sum bank entries")
	}
	return total, nil
}

// GetTotalBankedAmount - только положительные записи
func (r *Repository) GetTotalBankedAmount(ctx context.Context, shipID string, year int) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&ds.BankEntry{}).
		Select("COALESCE(SUM(amount_gco2eq), 0)").
		Where("ship_id = ? AND year = ? AND amount_gco2eq > 0", shipID, year).
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "sum banked entries")
	}
	return total, nil
}

func (r *Repository) GetBankRecords(ctx context.Context, shipID string, year int) ([]ds.BankEntry, error) {
	var entries []ds.BankEntry
	err := r.db.WithContext(ctx).
		Where("ship_id = ? AND year = ?", shipID, year).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, errors.Wrap(err, "get bank records")
	}
	return entries, nil
}

func (r *Repository) BankSurplus(ctx context.Context, shipID string, year int, amount float64) (ds.BankEntry, error) {
	if amount <= 0 {
		return ds.BankEntry{}, errors.New("amount must be positive to bank surplus")
	}
	return r.createEntry(ctx, shipID, year, amount)
}

// ApplyBanked - применение записывается отрицательной суммой
func (r *Repository) ApplyBanked(ctx context.Context, shipID string, year int, amount float64) (ds.BankEntry, error) {
	if amount <= 0 {
		return ds.BankEntry{}, errors.New("amount must be positive to apply banked surplus")
	}
	return r.createEntry(ctx, shipID, year, -amount)
}

func (r *Repository) createEntry(ctx context.Context, shipID string, year int, amount float64) (ds.BankEntry, error) {
	entry := ds.BankEntry{
		ShipID:       shipID,
		Year:         year,
		AmountGco2eq: amount,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return ds.BankEntry{}, errors.Wrap(err, "create bank entry")
	}
	return entry, nil
}
