package repository

import (
	"context"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/storage"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func (r *Repository) GetRoutes(ctx context.Context, filter ds.RouteFilter) ([]ds.Route, error) {
	query := r.db.WithContext(ctx).Model(&ds.Route{})

	if filter.VesselType != "" {
		query = query.Where("vessel_type = ?", filter.VesselType)
	}
	if filter.FuelType != "" {
		query = query.Where("fuel_type = ?", filter.FuelType)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}

	var routes []ds.Route
	if err := query.Order("id").Find(&routes).Error; err != nil {
		return nil, errors.Wrap(err, "get routes")
	}
	return routes, nil
}

func (r *Repository) GetBaseline(ctx context.Context) (*ds.Route, error) {
	route := ds.Route{}
	err := r.db.WithContext(ctx).Where("is_baseline = ?", true).First(&route).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get baseline")
	}
	return &route, nil
}

// SetBaseline - снимает флаг со всех маршрутов и ставит на выбранный
func (r *Repository) SetBaseline(ctx context.Context, id int) (ds.Route, error) {
	var route ds.Route
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&ds.Route{}).
			Where("is_baseline = ?", true).
			Update("is_baseline", false).Error
		if err != nil {
			return err
		}

		res := tx.Model(&ds.Route{}).Where("id = ?", id).Update("is_baseline", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return storage.ErrNotFound
		}
		return tx.First(&route, id).Error
	})
	if errors.Is(err, storage.ErrNotFound) {
		return ds.Route{}, err
	}
	if err != nil {
		return ds.Route{}, errors.Wrapf(err, "set baseline %d", id)
	}
	return route, nil
}
