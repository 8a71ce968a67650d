package repository

import (
	"context"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/storage"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreatePool - пул и участники создаются вместе (gorm оборачивает ассоциации в транзакцию)
func (r *Repository) CreatePool(ctx context.Context, year int, members []ds.PoolMember) (ds.Pool, error) {
	pool := ds.Pool{
		Year:    year,
		Members: make([]ds.PoolMember, 0, len(members)),
	}
	for _, m := range members {
		pool.Members = append(pool.Members, ds.PoolMember{
			ShipID:   m.ShipID,
			CbBefore: m.CbBefore,
			CbAfter:  m.CbAfter,
		})
	}

	if err := r.db.WithContext(ctx).Create(&pool).Error; err != nil {
		return ds.Pool{}, errors.Wrap(err, "create pool")
	}
	return pool, nil
}

func (r *Repository) GetPool(ctx context.Context, id int) (ds.Pool, error) {
	pool := ds.Pool{}
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&pool, id).Error
	if notFound(err) {
		return ds.Pool{}, storage.ErrNotFound
	}
	if err != nil {
		return ds.Pool{}, errors.Wrapf(err, "get pool %d", id)
	}
	return pool, nil
}
