package repository

import (
	"context"

	"fueleu_compliance/internal/app/ds"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

func (r *Repository) GetCB(ctx context.Context, shipID string, year int) (*ds.ShipCompliance, error) {
	cb := ds.ShipCompliance{}
	err := r.db.WithContext(ctx).Where("ship_id = ? AND year = ?", shipID, year).First(&cb).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get compliance balance")
	}
	return &cb, nil
}

func (r *Repository) SaveCB(ctx context.Context, cb ds.ShipCompliance) (ds.ShipCompliance, error) {
	cb.ID = 0
	if err := r.db.WithContext(ctx).Create(&cb).Error; err != nil {
		return ds.ShipCompliance{}, errors.Wrap(err, "save compliance balance")
	}
	return cb, nil
}

// UpsertCB - одна запись на (ship_id, year)
func (r *Repository) UpsertCB(ctx context.Context, cb ds.ShipCompliance) (ds.ShipCompliance, error) {
	cb.ID = 0
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ship_id"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"cb_gco2eq"}),
	}).Create(&cb).Error
	if err != nil {
		return ds.ShipCompliance{}, errors.Wrap(err, "upsert compliance balance")
	}
	return cb, nil
}
