package service_test

import (
	"context"
	"testing"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/service"
	"fueleu_compliance/internal/app/storage/memory"

	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*service.Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return service.New(store, nil), store
}

func seedCB(t *testing.T, store *memory.Store, shipID string, year int, cb float64) {
	t.Helper()
	_, err := store.UpsertCB(context.Background(), ds.ShipCompliance{ShipID: shipID, Year: year, CbGco2eq: cb})
	require.NoError(t, err)
}

func baseCB(t *testing.T, store *memory.Store, shipID string, year int) float64 {
	t.Helper()
	cb, err := store.GetCB(context.Background(), shipID, year)
	require.NoError(t, err)
	require.NotNil(t, cb)
	return cb.CbGco2eq
}

func requireKind(t *testing.T, err error, kind service.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, service.KindOf(err), "unexpected error: %v", err)
}
