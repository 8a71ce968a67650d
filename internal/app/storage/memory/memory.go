// Package memory provides an in-process storage.Store. It backs the
// "memory" storage mode and the service and handler tests.
package memory

import (
	"context"
	"sync"
	"time"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/storage"

	"github.com/pkg/errors"
)

type state struct {
	routes     []ds.Route
	compliance []ds.ShipCompliance
	entries    []ds.BankEntry
	pools      []ds.Pool
	nextID     int
}

func (s *state) clone() *state {
	c := &state{
		routes:     append([]ds.Route(nil), s.routes...),
		compliance: append([]ds.ShipCompliance(nil), s.compliance...),
		entries:    append([]ds.BankEntry(nil), s.entries...),
		pools:      make([]ds.Pool, len(s.pools)),
		nextID:     s.nextID,
	}
	for i, p := range s.pools {
		p.Members = append([]ds.PoolMember(nil), p.Members...)
		c.pools[i] = p
	}
	return c
}

func (s *state) id() int {
	s.nextID++
	return s.nextID
}

// Store is safe for concurrent use. A Store handed to an Atomic callback
// shares the parent's lock and writes to a private copy of the state that is
// published only when the callback succeeds.
type Store struct {
	mu   *sync.Mutex
	st   *state
	inTx bool
	now  func() time.Time
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		mu:  &sync.Mutex{},
		st:  &state{},
		now: time.Now,
	}
}

func (s *Store) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) Atomic(ctx context.Context, fn func(tx storage.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &Store{mu: s.mu, st: s.st.clone(), inTx: true, now: s.now}
	if err := fn(tx); err != nil {
		return err
	}
	s.st = tx.st
	return nil
}

// AddRoute inserts a route and returns it with its id assigned. Setting
// IsBaseline clears the flag on every other route.
func (s *Store) AddRoute(route ds.Route) ds.Route {
	defer s.lock()()
	route.ID = s.st.id()
	if route.IsBaseline {
		for i := range s.st.routes {
			s.st.routes[i].IsBaseline = false
		}
	}
	s.st.routes = append(s.st.routes, route)
	return route
}

func (s *Store) GetRoutes(ctx context.Context, filter ds.RouteFilter) ([]ds.Route, error) {
	defer s.lock()()
	routes := []ds.Route{}
	for _, r := range s.st.routes {
		if filter.VesselType != "" && r.VesselType != filter.VesselType {
			continue
		}
		if filter.FuelType != "" && r.FuelType != filter.FuelType {
			continue
		}
		if filter.Year != nil && r.Year != *filter.Year {
			continue
		}
		routes = append(routes, r)
	}
	return routes, nil
}

func (s *Store) GetBaseline(ctx context.Context) (*ds.Route, error) {
	defer s.lock()()
	for _, r := range s.st.routes {
		if r.IsBaseline {
			route := r
			return &route, nil
		}
	}
	return nil, nil
}

func (s *Store) SetBaseline(ctx context.Context, id int) (ds.Route, error) {
	defer s.lock()()
	idx := -1
	for i, r := range s.st.routes {
		if r.ID == id {
			idx = i
		}
	}
	if idx < 0 {
		return ds.Route{}, storage.ErrNotFound
	}
	for i := range s.st.routes {
		s.st.routes[i].IsBaseline = i == idx
	}
	return s.st.routes[idx], nil
}

func (s *Store) GetCB(ctx context.Context, shipID string, year int) (*ds.ShipCompliance, error) {
	defer s.lock()()
	for _, cb := range s.st.compliance {
		if cb.ShipID == shipID && cb.Year == year {
			found := cb
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Store) SaveCB(ctx context.Context, cb ds.ShipCompliance) (ds.ShipCompliance, error) {
	defer s.lock()()
	for _, existing := range s.st.compliance {
		if existing.ShipID == cb.ShipID && existing.Year == cb.Year {
			return ds.ShipCompliance{}, errors.Errorf("compliance balance for ship %s in year %d already exists", cb.ShipID, cb.Year)
		}
	}
	cb.ID = s.st.id()
	s.st.compliance = append(s.st.compliance, cb)
	return cb, nil
}

func (s *Store) UpsertCB(ctx context.Context, cb ds.ShipCompliance) (ds.ShipCompliance, error) {
	defer s.lock()()
	for i, existing := range s.st.compliance {
		if existing.ShipID == cb.ShipID && existing.Year == cb.Year {
			s.st.compliance[i].CbGco2eq = cb.CbGco2eq
			return s.st.compliance[i], nil
		}
	}
	cb.ID = s.st.id()
	s.st.compliance = append(s.st.compliance, cb)
	return cb, nil
}

func (s *Store) GetBankedAmount(ctx context.Context, shipID string, year int) (float64, error) {
	defer s.lock()()
	var total float64
	for _, e := range s.st.entries {
		if e.ShipID == shipID && e.Year == year {
			total += e.AmountGco2eq
		}
	}
	return total, nil
}

func (s *Store) GetTotalBankedAmount(ctx context.Context, shipID string, year int) (float64, error) {
	defer s.lock()()
	var total float64
	for _, e := range s.st.entries {
		if e.ShipID == shipID && e.Year == year && e.AmountGco2eq > 0 {
			total += e.AmountGco2eq
		}
	}
	return total, nil
}

func (s *Store) GetBankRecords(ctx context.Context, shipID string, year int) ([]ds.BankEntry, error) {
	defer s.lock()()
	entries := []ds.BankEntry{}
	for _, e := range s.st.entries {
		if e.ShipID == shipID && e.Year == year {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (s *Store) BankSurplus(ctx context.Context, shipID string, year int, amount float64) (ds.BankEntry, error) {
	if amount <= 0 {
		return ds.BankEntry{}, errors.New("amount must be positive to bank surplus")
	}
	return s.addEntry(shipID, year, amount), nil
}

func (s *Store) ApplyBanked(ctx context.Context, shipID string, year int, amount float64) (ds.BankEntry, error) {
	if amount <= 0 {
		return ds.BankEntry{}, errors.New("amount must be positive to apply banked surplus")
	}
	return s.addEntry(shipID, year, -amount), nil
}

func (s *Store) addEntry(shipID string, year int, amount float64) ds.BankEntry {
	defer s.lock()()
	entry := ds.BankEntry{
		ID:           s.st.id(),
		ShipID:       shipID,
		Year:         year,
		AmountGco2eq: amount,
		CreatedAt:    s.now(),
	}
	s.st.entries = append(s.st.entries, entry)
	return entry
}

func (s *Store) CreatePool(ctx context.Context, year int, members []ds.PoolMember) (ds.Pool, error) {
	defer s.lock()()
	pool := ds.Pool{
		ID:        s.st.id(),
		Year:      year,
		CreatedAt: s.now(),
		Members:   make([]ds.PoolMember, 0, len(members)),
	}
	for _, m := range members {
		pool.Members = append(pool.Members, ds.PoolMember{
			ID:       s.st.id(),
			PoolID:   pool.ID,
			ShipID:   m.ShipID,
			CbBefore: m.CbBefore,
			CbAfter:  m.CbAfter,
		})
	}
	s.st.pools = append(s.st.pools, pool)
	return copyPool(pool), nil
}

func (s *Store) GetPool(ctx context.Context, id int) (ds.Pool, error) {
	defer s.lock()()
	for _, p := range s.st.pools {
		if p.ID == id {
			return copyPool(p), nil
		}
	}
	return ds.Pool{}, storage.ErrNotFound
}

// PoolCount reports how many pools have been persisted.
func (s *Store) PoolCount() int {
	defer s.lock()()
	return len(s.st.pools)
}

func copyPool(p ds.Pool) ds.Pool {
	p.Members = append([]ds.PoolMember(nil), p.Members...)
	return p
}
