package service

import (
	"context"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/lock"
	"fueleu_compliance/internal/app/metrics"
	"fueleu_compliance/internal/app/storage"

	"github.com/sirupsen/logrus"
)

type BankResult struct {
	ShipID            string  `json:"shipId"`
	Year              int     `json:"year"`
	CbBefore          float64 `json:"cbBefore"`
	TotalBankedBefore float64 `json:"totalBankedBefore"`
	AvailableBefore   float64 `json:"availableBefore"`
	Banked            float64 `json:"banked"`
	TotalBankedAfter  float64 `json:"totalBankedAfter"`
	AvailableAfter    float64 `json:"availableAfter"`
	CbAfter           float64 `json:"cbAfter"`
}

type ApplyResult struct {
	ShipID   string  `json:"shipId"`
	Year     int     `json:"year"`
	CbBefore float64 `json:"cbBefore"`
	Applied  float64 `json:"applied"`
	CbAfter  float64 `json:"cbAfter"`
}

// BankRecords lists the ledger of a ship-year in insertion order.
func (s *Service) BankRecords(ctx context.Context, shipID string, year int) ([]ds.BankEntry, error) {
	shipID, err := checkShipYear(shipID, year)
	if err != nil {
		return nil, err
	}
	records, err := s.store.GetBankRecords(ctx, shipID, year)
	if err != nil {
		return nil, persistence(err, "failed to load bank records")
	}
	return records, nil
}

// Bank reserves amount of the ship's surplus (Article 20). At most
// baseCB - totalBanked can be banked; the base CB itself is not changed.
func (s *Service) Bank(ctx context.Context, shipID string, year int, amount float64) (BankResult, error) {
	if amount <= 0 {
		return BankResult{}, validationf("Amount must be positive")
	}
	return s.bank(ctx, shipID, year, amount)
}

// BankAll banks the whole currently unbanked surplus.
func (s *Service) BankAll(ctx context.Context, shipID string, year int) (BankResult, error) {
	return s.bank(ctx, shipID, year, 0)
}

// amount 0 means "everything available"
func (s *Service) bank(ctx context.Context, shipID string, year int, amount float64) (result BankResult, err error) {
	shipID, err = checkShipYear(shipID, year)
	if err != nil {
		return BankResult{}, err
	}
	defer func() { metrics.RecordLedgerOperation("bank", result.Banked, err) }()

	err = s.critical(ctx, []string{lock.ShipYearKey(shipID, year)}, func(tx storage.Store) error {
		base, err := tx.GetCB(ctx, shipID, year)
		if err != nil {
			return persistence(err, "failed to load compliance balance")
		}
		if base == nil {
			return notFoundf("No compliance balance found for ship %s in year %d", shipID, year)
		}
		if base.CbGco2eq <= 0 {
			return preconditionf("Cannot bank: Compliance Balance (%s) is not positive", num(base.CbGco2eq))
		}

		totalBanked, err := tx.GetTotalBankedAmount(ctx, shipID, year)
		if err != nil {
			return persistence(err, "failed to sum banked entries")
		}

		available := base.CbGco2eq - totalBanked
		if available <= 0 {
			return preconditionf("No available surplus to bank. Base CB: %s, Total banked: %s",
				num(base.CbGco2eq), num(totalBanked))
		}
		if amount == 0 {
			amount = available
		}
		if amount > available {
			return preconditionf("Cannot bank %s: only %s available (Base CB: %s, Total banked: %s)",
				num(amount), num(available), num(base.CbGco2eq), num(totalBanked))
		}

		if _, err := tx.BankSurplus(ctx, shipID, year, amount); err != nil {
			return persistence(err, "failed to bank surplus")
		}

		result = BankResult{
			ShipID:            shipID,
			Year:              year,
			CbBefore:          Round(base.CbGco2eq),
			TotalBankedBefore: Round(totalBanked),
			AvailableBefore:   Round(available),
			Banked:            amount,
			TotalBankedAfter:  Round(totalBanked + amount),
			AvailableAfter:    Round(available - amount),
			CbAfter:           Round(base.CbGco2eq),
		}
		return nil
	})
	if err != nil {
		shipLog(shipID, year).WithField("amount", amount).Warnf("bank rejected: %v", err)
		return BankResult{}, err
	}

	shipLog(shipID, year).WithField("amount", result.Banked).Info("surplus banked")
	return result, nil
}

// Apply consumes banked surplus and raises the recognised base CB by amount.
func (s *Service) Apply(ctx context.Context, shipID string, year int, amount float64) (result ApplyResult, err error) {
	if amount <= 0 {
		return ApplyResult{}, validationf("Amount must be positive")
	}
	shipID, err = checkShipYear(shipID, year)
	if err != nil {
		return ApplyResult{}, err
	}
	defer func() { metrics.RecordLedgerOperation("apply", result.Applied, err) }()

	err = s.critical(ctx, []string{lock.ShipYearKey(shipID, year)}, func(tx storage.Store) error {
		base, err := tx.GetCB(ctx, shipID, year)
		if err != nil {
			return persistence(err, "failed to load compliance balance")
		}
		if base == nil {
			return notFoundf("No compliance balance found for ship %s in year %d", shipID, year)
		}

		net, err := tx.GetBankedAmount(ctx, shipID, year)
		if err != nil {
			return persistence(err, "failed to sum bank entries")
		}
		if amount > net {
			return preconditionf("Cannot apply %s: only %s available in bank", num(amount), num(net))
		}

		if _, err := tx.ApplyBanked(ctx, shipID, year, amount); err != nil {
			return persistence(err, "failed to apply banked surplus")
		}

		cbAfter := Round(base.CbGco2eq + amount)
		if _, err := tx.UpsertCB(ctx, ds.ShipCompliance{ShipID: shipID, Year: year, CbGco2eq: cbAfter}); err != nil {
			return persistence(err, "failed to update compliance balance")
		}

		result = ApplyResult{
			ShipID:   shipID,
			Year:     year,
			CbBefore: base.CbGco2eq,
			Applied:  amount,
			CbAfter:  cbAfter,
		}
		return nil
	})
	if err != nil {
		shipLog(shipID, year).WithField("amount", amount).Warnf("apply rejected: %v", err)
		return ApplyResult{}, err
	}

	shipLog(shipID, year).WithFields(logrus.Fields{
		"amount":   amount,
		"cb_after": result.CbAfter,
	}).Info("banked surplus applied")
	return result, nil
}
