package service_test

import (
	"context"
	"testing"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCB(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)
	route := store.AddRoute(ds.Route{RouteID: "R002", Year: 2024, VesselType: "BulkCarrier", FuelType: "LNG", FuelConsumption: 4800, GhgIntensity: 88.0})
	store.AddRoute(ds.Route{RouteID: "R003", Year: 2024, VesselType: "Tanker", FuelType: "MGO", FuelConsumption: 5100, GhgIntensity: 93.5})

	result, err := svc.ComputeCB(ctx, "1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, route.ID)
	assert.Equal(t, "1", result.ShipID)
	assert.Equal(t, 263_082_240.0, result.CB)
	assert.Equal(t, 263_082_240.0, baseCB(t, store, "1", 2024))
}

func TestComputeCB_NoMatchingRoutes(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)
	store.AddRoute(ds.Route{RouteID: "R001", Year: 2024, FuelConsumption: 5000, GhgIntensity: 91.0})

	for _, shipID := range []string{"2", "vessel-a"} {
		_, err := svc.ComputeCB(ctx, shipID, 2024)
		requireKind(t, err, service.KindNotFound)
	}

	_, err := svc.ComputeCB(ctx, "1", 2025)
	requireKind(t, err, service.KindNotFound)

	cb, err := svc.GetCB(ctx, "1", 2025)
	require.NoError(t, err)
	assert.Nil(t, cb)
}

func TestComputeCB_OverwritesCache(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)
	store.AddRoute(ds.Route{RouteID: "R001", Year: 2024, FuelConsumption: 5000, GhgIntensity: 91.0})
	seedCB(t, store, "1", 2024, 42)

	result, err := svc.ComputeCB(ctx, "1", 2024)
	require.NoError(t, err)
	assert.Equal(t, -340_956_000.0, result.CB)
}

func TestGetOrComputeCB(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)
	store.AddRoute(ds.Route{RouteID: "R001", Year: 2024, FuelConsumption: 5000, GhgIntensity: 91.0})

	cb, err := svc.GetCB(ctx, "1", 2024)
	require.NoError(t, err)
	assert.Nil(t, cb)

	computed, err := svc.GetOrComputeCB(ctx, "1", 2024)
	require.NoError(t, err)
	assert.Equal(t, -340_956_000.0, computed.CB)

	seedCB(t, store, "1", 2024, 1234)
	cached, err := svc.GetOrComputeCB(ctx, "1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 1234.0, cached.CB)
}

func TestGetAdjustedCB(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)
	seedCB(t, store, "1", 2024, 1000)

	adjusted, err := svc.GetAdjustedCB(ctx, "1", 2024)
	require.NoError(t, err)
	assert.Equal(t, service.AdjustedCB{ShipID: "1", Year: 2024, CbBefore: 1000, BankedAmount: 0, CbAfter: 1000}, adjusted)

	_, err = svc.Bank(ctx, "1", 2024, 400)
	require.NoError(t, err)

	adjusted, err = svc.GetAdjustedCB(ctx, "1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, adjusted.CbBefore)
	assert.Equal(t, 400.0, adjusted.BankedAmount)
	assert.Equal(t, 1400.0, adjusted.CbAfter)

	_, err = svc.GetAdjustedCB(ctx, "2", 2024)
	requireKind(t, err, service.KindNotFound)

	_, err = svc.GetAdjustedCB(ctx, "", 2024)
	requireKind(t, err, service.KindValidation)
}
