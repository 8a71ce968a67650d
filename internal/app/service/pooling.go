package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/lock"
	"fueleu_compliance/internal/app/metrics"
	"fueleu_compliance/internal/app/storage"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type PoolAllocation struct {
	ShipID   string  `json:"shipId"`
	CbBefore float64 `json:"cbBefore"`
	CbAfter  float64 `json:"cbAfter"`
}

type PoolResult struct {
	PoolID    int              `json:"poolId"`
	Year      int              `json:"year"`
	CreatedAt time.Time        `json:"createdAt"`
	Members   []PoolAllocation `json:"members"`
	PoolSum   float64          `json:"poolSum"`
}

// Allocate redistributes the members' balances (Article 21). Members are
// taken largest surplus first; every surplus member donates its whole
// balance and exits at zero, deficits are covered in order until the
// surplus runs out. The result is in allocation order.
func Allocate(members []PoolAllocation) ([]PoolAllocation, float64, error) {
	var sum float64
	for _, m := range members {
		sum += m.CbBefore
	}
	if sum < 0 {
		return nil, sum, preconditionf("Pool invalid: Sum of compliance balances (%s) is negative", num(sum))
	}

	sorted := make([]PoolAllocation, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CbBefore > sorted[j].CbBefore })

	var surplus float64
	for i := range sorted {
		m := &sorted[i]
		if m.CbBefore >= 0 {
			surplus += m.CbBefore
			m.CbAfter = 0
			continue
		}

		deficit := -m.CbBefore
		if surplus >= deficit {
			surplus -= deficit
			m.CbAfter = 0
		} else {
			m.CbAfter = -(deficit - surplus)
			surplus = 0
		}
	}

	for _, m := range sorted {
		if m.CbBefore < 0 && m.CbAfter < m.CbBefore {
			return nil, sum, preconditionf("Pool invalid: Deficit ship %s would exit worse (%s < %s)",
				m.ShipID, num(m.CbAfter), num(m.CbBefore))
		}
		if m.CbBefore >= 0 && m.CbAfter < 0 {
			return nil, sum, preconditionf("Pool invalid: Surplus ship %s would exit negative (%s < 0)",
				m.ShipID, num(m.CbAfter))
		}
	}
	return sorted, sum, nil
}

// CreatePool pools the adjusted CBs of shipIDs for year and persists the
// allocation. Every member's ship-year stays locked from the balance reads
// to the insert, so overlapping pools cannot spend the same balance twice.
func (s *Service) CreatePool(ctx context.Context, year int, shipIDs []string) (result PoolResult, err error) {
	if year <= 0 {
		return PoolResult{}, validationf("year must be a positive number")
	}
	if len(shipIDs) == 0 {
		return PoolResult{}, validationf("Pool must have at least one member")
	}

	ids := make([]string, 0, len(shipIDs))
	keys := make([]string, 0, len(shipIDs))
	seen := make(map[string]struct{}, len(shipIDs))
	for _, id := range shipIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return PoolResult{}, validationf("shipId is required for every pool member")
		}
		if _, dup := seen[id]; dup {
			return PoolResult{}, validationf("ship %s appears more than once in the pool", id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
		keys = append(keys, lock.ShipYearKey(id, year))
	}
	defer func() { metrics.RecordPool(len(result.Members), err) }()

	err = s.critical(ctx, keys, func(tx storage.Store) error {
		members := make([]PoolAllocation, 0, len(ids))
		for _, id := range ids {
			adjusted, err := adjustedCB(ctx, tx, id, year)
			if err != nil {
				return err
			}
			members = append(members, PoolAllocation{ShipID: id, CbBefore: adjusted.CbAfter})
		}

		allocations, sum, err := Allocate(members)
		if err != nil {
			return err
		}

		rows := make([]ds.PoolMember, 0, len(allocations))
		for _, a := range allocations {
			rows = append(rows, ds.PoolMember{ShipID: a.ShipID, CbBefore: a.CbBefore, CbAfter: a.CbAfter})
		}
		pool, err := tx.CreatePool(ctx, year, rows)
		if err != nil {
			return persistence(err, "failed to create pool")
		}

		result = PoolResult{
			PoolID:    pool.ID,
			Year:      pool.Year,
			CreatedAt: pool.CreatedAt,
			Members:   allocations,
			PoolSum:   sum,
		}
		return nil
	})
	if err != nil {
		logrus.WithField("year", year).Warnf("pool rejected: %v", err)
		return PoolResult{}, err
	}

	logrus.WithFields(logrus.Fields{
		"pool_id":  result.PoolID,
		"year":     year,
		"members":  len(result.Members),
		"pool_sum": result.PoolSum,
	}).Info("pool created")
	return result, nil
}

func (s *Service) GetPool(ctx context.Context, id int) (ds.Pool, error) {
	if id <= 0 {
		return ds.Pool{}, validationf("Invalid pool ID")
	}
	pool, err := s.store.GetPool(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ds.Pool{}, notFoundf("Pool %d not found", id)
	}
	if err != nil {
		return ds.Pool{}, persistence(err, "failed to load pool")
	}
	return pool, nil
}
