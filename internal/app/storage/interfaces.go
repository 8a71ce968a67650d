// Package storage declares the persistence contracts used by the compliance
// service. Postgres (gorm) and in-memory implementations live in
// internal/app/repository and internal/app/storage/memory.
package storage

import (
	"context"

	"fueleu_compliance/internal/app/ds"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

type RouteRepository interface {
	GetRoutes(ctx context.Context, filter ds.RouteFilter) ([]ds.Route, error)
	GetBaseline(ctx context.Context) (*ds.Route, error)
	// SetBaseline clears the flag on every route and sets it on id.
	SetBaseline(ctx context.Context, id int) (ds.Route, error)
}

type ComplianceRepository interface {
	// GetCB returns nil, nil when no record exists.
	GetCB(ctx context.Context, shipID string, year int) (*ds.ShipCompliance, error)
	SaveCB(ctx context.Context, cb ds.ShipCompliance) (ds.ShipCompliance, error)
	UpsertCB(ctx context.Context, cb ds.ShipCompliance) (ds.ShipCompliance, error)
}

type BankRepository interface {
	// GetBankedAmount is the net sum of all entries.
	GetBankedAmount(ctx context.Context, shipID string, year int) (float64, error)
	// GetTotalBankedAmount sums positive entries only.
	GetTotalBankedAmount(ctx context.Context, shipID string, year int) (float64, error)
	GetBankRecords(ctx context.Context, shipID string, year int) ([]ds.BankEntry, error)
	BankSurplus(ctx context.Context, shipID string, year int, amount float64) (ds.BankEntry, error)
	ApplyBanked(ctx context.Context, shipID string, year int, amount float64) (ds.BankEntry, error)
}

type PoolRepository interface {
	CreatePool(ctx context.Context, year int, members []ds.PoolMember) (ds.Pool, error)
	GetPool(ctx context.Context, id int) (ds.Pool, error)
}

// Store bundles the repositories. Atomic runs fn against a transactional
// view of the store: either every write made through tx is committed or
// none is.
type Store interface {
	RouteRepository
	ComplianceRepository
	BankRepository
	PoolRepository

	Atomic(ctx context.Context, fn func(tx Store) error) error
}
