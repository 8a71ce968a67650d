package service

import (
	"context"
	"strconv"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/lock"
	"fueleu_compliance/internal/app/storage"
)

type CBResult struct {
	ShipID string  `json:"shipId"`
	Year   int     `json:"year"`
	CB     float64 `json:"cb"`
}

type AdjustedCB struct {
	ShipID       string  `json:"shipId"`
	Year         int     `json:"year"`
	CbBefore     float64 `json:"cbBefore"`
	BankedAmount float64 `json:"bankedAmount"`
	CbAfter      float64 `json:"cbAfter"`
}

// ComputeCB derives the base CB of a ship-year from its routes and caches it.
//
// Ships have no table of their own: shipID is matched against the numeric
// primary key of routes.
func (s *Service) ComputeCB(ctx context.Context, shipID string, year int) (CBResult, error) {
	shipID, err := checkShipYear(shipID, year)
	if err != nil {
		return CBResult{}, err
	}

	var result CBResult
	err = s.critical(ctx, []string{lock.ShipYearKey(shipID, year)}, func(tx storage.Store) error {
		routes, err := tx.GetRoutes(ctx, ds.RouteFilter{Year: &year})
		if err != nil {
			return persistence(err, "failed to load routes")
		}

		routeID, convErr := strconv.Atoi(shipID)
		matched := 0
		var total float64
		for _, route := range routes {
			if convErr != nil || route.ID != routeID || route.Year != year {
				continue
			}
			matched++
			total += ComplianceBalance(route)
		}
		if matched == 0 {
			return notFoundf("No routes found for ship %s in year %d", shipID, year)
		}

		saved, err := tx.UpsertCB(ctx, ds.ShipCompliance{
			ShipID:   shipID,
			Year:     year,
			CbGco2eq: Round(total),
		})
		if err != nil {
			return persistence(err, "failed to store compliance balance")
		}
		result = CBResult{ShipID: saved.ShipID, Year: saved.Year, CB: saved.CbGco2eq}
		return nil
	})
	if err != nil {
		return CBResult{}, err
	}

	shipLog(shipID, year).WithField("cb", result.CB).Info("compliance balance computed")
	return result, nil
}

// GetCB returns the cached base CB, or nil when it was never computed.
func (s *Service) GetCB(ctx context.Context, shipID string, year int) (*ds.ShipCompliance, error) {
	shipID, err := checkShipYear(shipID, year)
	if err != nil {
		return nil, err
	}
	cb, err := s.store.GetCB(ctx, shipID, year)
	if err != nil {
		return nil, persistence(err, "failed to load compliance balance")
	}
	return cb, nil
}

// GetOrComputeCB serves the cached base CB and computes it on a miss.
func (s *Service) GetOrComputeCB(ctx context.Context, shipID string, year int) (CBResult, error) {
	cb, err := s.GetCB(ctx, shipID, year)
	if err != nil {
		return CBResult{}, err
	}
	if cb != nil {
		return CBResult{ShipID: cb.ShipID, Year: cb.Year, CB: cb.CbGco2eq}, nil
	}
	return s.ComputeCB(ctx, shipID, year)
}

// GetAdjustedCB is base CB plus the net banked amount: the position of the
// ship if every unapplied banked surplus were realised.
func (s *Service) GetAdjustedCB(ctx context.Context, shipID string, year int) (AdjustedCB, error) {
	shipID, err := checkShipYear(shipID, year)
	if err != nil {
		return AdjustedCB{}, err
	}
	return adjustedCB(ctx, s.store, shipID, year)
}

func adjustedCB(ctx context.Context, st storage.Store, shipID string, year int) (AdjustedCB, error) {
	base, err := st.GetCB(ctx, shipID, year)
	if err != nil {
		return AdjustedCB{}, persistence(err, "failed to load compliance balance")
	}
	if base == nil {
		return AdjustedCB{}, notFoundf("No compliance balance found for ship %s in year %d", shipID, year)
	}

	banked, err := st.GetBankedAmount(ctx, shipID, year)
	if err != nil {
		return AdjustedCB{}, persistence(err, "failed to sum bank entries")
	}

	return AdjustedCB{
		ShipID:       shipID,
		Year:         year,
		CbBefore:     base.CbGco2eq,
		BankedAmount: Round(banked),
		CbAfter:      Round(base.CbGco2eq + banked),
	}, nil
}
