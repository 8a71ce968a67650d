package service

import (
	"context"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/storage"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type RouteComparison struct {
	ID                int     `json:"id"`
	RouteID           string  `json:"routeId"`
	VesselType        string  `json:"vesselType"`
	FuelType          string  `json:"fuelType"`
	Year              int     `json:"year"`
	GhgIntensity      float64 `json:"ghgIntensity"`
	FuelConsumption   float64 `json:"fuelConsumption"`
	PercentDiff       float64 `json:"percentDiff"`
	ComplianceBalance float64 `json:"complianceBalance"`
	IsCompliant       bool    `json:"isCompliant"`
}

func (s *Service) ListRoutes(ctx context.Context, filter ds.RouteFilter) ([]ds.Route, error) {
	routes, err := s.store.GetRoutes(ctx, filter)
	if err != nil {
		return nil, persistence(err, "failed to list routes")
	}
	return routes, nil
}

// CompareRoutes reports every route against the current baseline.
func (s *Service) CompareRoutes(ctx context.Context) ([]RouteComparison, error) {
	baseline, err := s.store.GetBaseline(ctx)
	if err != nil {
		return nil, persistence(err, "failed to load baseline")
	}
	if baseline == nil {
		return nil, notFoundf("No baseline route set.")
	}

	routes, err := s.store.GetRoutes(ctx, ds.RouteFilter{})
	if err != nil {
		return nil, persistence(err, "failed to list routes")
	}

	comparison := make([]RouteComparison, 0, len(routes))
	for _, route := range routes {
		diff, err := PercentDiff(route, *baseline)
		if err != nil {
			return nil, err
		}
		comparison = append(comparison, RouteComparison{
			ID:                route.ID,
			RouteID:           route.RouteID,
			VesselType:        route.VesselType,
			FuelType:          route.FuelType,
			Year:              route.Year,
			GhgIntensity:      route.GhgIntensity,
			FuelConsumption:   route.FuelConsumption,
			PercentDiff:       round2(diff),
			ComplianceBalance: Round(ComplianceBalance(route)),
			IsCompliant:       IsCompliant(route),
		})
	}
	return comparison, nil
}

// SetBaseline makes id the single baseline route.
func (s *Service) SetBaseline(ctx context.Context, id int) (ds.Route, error) {
	if id <= 0 {
		return ds.Route{}, validationf("Invalid route ID")
	}

	var route ds.Route
	err := s.store.Atomic(ctx, func(tx storage.Store) error {
		var err error
		route, err = tx.SetBaseline(ctx, id)
		return err
	})
	if errors.Is(err, storage.ErrNotFound) {
		return ds.Route{}, notFoundf("Route %d not found", id)
	}
	if err != nil {
		return ds.Route{}, persistence(err, "failed to set baseline")
	}

	logrus.WithField("route_id", id).Info("baseline route set")
	return route, nil
}
