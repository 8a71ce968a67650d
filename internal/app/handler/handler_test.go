package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"fueleu_compliance/internal/app/ds"
	"fueleu_compliance/internal/app/handler"
	"fueleu_compliance/internal/app/service"
	"fueleu_compliance/internal/app/storage/memory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New()
	store.AddRoute(ds.Route{RouteID: "R001", VesselType: "Container", FuelType: "HFO", Year: 2024, GhgIntensity: 91.0, FuelConsumption: 5000, Distance: 12000, TotalEmissions: 4500})
	store.AddRoute(ds.Route{RouteID: "R002", VesselType: "BulkCarrier", FuelType: "LNG", Year: 2024, GhgIntensity: 88.0, FuelConsumption: 4800, Distance: 11500, TotalEmissions: 4200})

	router := gin.New()
	handler.NewHandler(service.New(store, nil)).SetupRoutes(router)
	return router, store
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func seedCB(t *testing.T, store *memory.Store, shipID string, cb float64) {
	t.Helper()
	_, err := store.UpsertCB(context.Background(), ds.ShipCompliance{ShipID: shipID, Year: 2024, CbGco2eq: cb})
	require.NoError(t, err)
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doRequest(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupRouter(t)
	doRequest(router, http.MethodGet, "/health", nil)

	rec := doRequest(router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fueleu_http_requests_total")
}

func TestRoutes(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doRequest(router, http.MethodGet, "/routes?fuelType=LNG&year=2024", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var routes []ds.Route
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &routes))
	require.Len(t, routes, 1)
	assert.Equal(t, "R002", routes[0].RouteID)

	rec = doRequest(router, http.MethodGet, "/routes?year=next", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid year", decode(t, rec)["error"])
}

func TestComparisonAndBaseline(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doRequest(router, http.MethodGet, "/routes/comparison", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No baseline route set.", decode(t, rec)["error"])

	rec = doRequest(router, http.MethodPost, "/routes/1/baseline", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Route 1 set as baseline.", decode(t, rec)["message"])

	rec = doRequest(router, http.MethodGet, "/routes/comparison", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var comparison []service.RouteComparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comparison))
	require.Len(t, comparison, 2)
	assert.Equal(t, -3.3, comparison[1].PercentDiff)
	assert.True(t, comparison[1].IsCompliant)

	rec = doRequest(router, http.MethodPost, "/routes/99/baseline", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doRequest(router, http.MethodPost, "/routes/x/baseline", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComplianceCB(t *testing.T) {
	router, store := setupRouter(t)

	rec := doRequest(router, http.MethodGet, "/compliance/cb?shipId=1&year=2024", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, -340956000.0, body["cb"])
	assert.Equal(t, "1", body["shipId"])

	cached, err := store.GetCB(context.Background(), "1", 2024)
	require.NoError(t, err)
	require.NotNil(t, cached)

	rec = doRequest(router, http.MethodGet, "/compliance/cb?shipId=1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "shipId and year are required", decode(t, rec)["error"])

	rec = doRequest(router, http.MethodGet, "/compliance/cb?shipId=9&year=2024", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodPost, "/compliance/cb/compute", gin.H{"shipId": "2", "year": 2024})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 263082240.0, decode(t, rec)["cb"])

	rec = doRequest(router, http.MethodPost, "/compliance/cb/compute", gin.H{"shipId": "2"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdjustedCB(t *testing.T) {
	router, store := setupRouter(t)
	seedCB(t, store, "A", 1000)

	rec := doRequest(router, http.MethodPost, "/banking/bank", gin.H{"shipId": "A", "year": 2024, "amount": 400})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet, "/compliance/adjusted-cb?shipId=A&year=2024", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, 1000.0, body["cbBefore"])
	assert.Equal(t, 400.0, body["bankedAmount"])
	assert.Equal(t, 1400.0, body["cbAfter"])

	rec = doRequest(router, http.MethodGet, "/compliance/adjusted-cb?shipId=B&year=2024", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBanking(t *testing.T) {
	router, store := setupRouter(t)
	seedCB(t, store, "A", 8000)

	rec := doRequest(router, http.MethodPost, "/banking/bank", gin.H{"shipId": "A", "year": 2024, "amount": 3000})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5000.0, decode(t, rec)["availableAfter"])

	rec = doRequest(router, http.MethodPost, "/banking/bank", gin.H{"shipId": "A", "year": 2024, "amount": 6000})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "only 5000 available")

	rec = doRequest(router, http.MethodPost, "/banking/bank", gin.H{"shipId": "A", "year": 2024, "amount": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(router, http.MethodPost, "/banking/bank", gin.H{"shipId": "Z", "year": 2024, "amount": 10})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodPost, "/banking/apply", gin.H{"shipId": "A", "year": 2024, "amount": 1000})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 9000.0, decode(t, rec)["cbAfter"])

	rec = doRequest(router, http.MethodPost, "/banking/apply", gin.H{"shipId": "A", "year": 2024, "amount": 2001})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(router, http.MethodPost, "/banking/bank-all", gin.H{"shipId": "A", "year": 2024})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6000.0, decode(t, rec)["banked"])

	rec = doRequest(router, http.MethodGet, "/banking/records?shipId=A&year=2024", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var records []ds.BankEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 3)
	assert.Equal(t, 3000.0, records[0].AmountGco2eq)
	assert.Equal(t, -1000.0, records[1].AmountGco2eq)
	assert.Equal(t, 6000.0, records[2].AmountGco2eq)
}

func TestPools(t *testing.T) {
	router, store := setupRouter(t)
	seedCB(t, store, "A", 500)
	seedCB(t, store, "B", -300)
	seedCB(t, store, "C", -400)

	rec := doRequest(router, http.MethodPost, "/pools", gin.H{
		"year":    2024,
		"members": []gin.H{{"shipId": "A"}, {"shipId": "B"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var result service.PoolResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 200.0, result.PoolSum)
	require.Len(t, result.Members, 2)
	assert.Zero(t, result.Members[1].CbAfter)

	rec = doRequest(router, http.MethodGet, "/pools/"+strconv.Itoa(result.PoolID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pool ds.Pool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pool))
	assert.Len(t, pool.Members, 2)

	rec = doRequest(router, http.MethodPost, "/pools", gin.H{
		"year":    2024,
		"members": []gin.H{{"shipId": "A"}, {"shipId": "B"}, {"shipId": "C"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 1, store.PoolCount())

	rec = doRequest(router, http.MethodPost, "/pools", gin.H{"year": 2024, "members": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "year and members (array of {shipId}) are required", decode(t, rec)["error"])

	rec = doRequest(router, http.MethodPost, "/pools", gin.H{
		"year":    2024,
		"members": []gin.H{{"shipId": "A"}, {"shipId": "A"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(router, http.MethodGet, "/pools/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doRequest(router, http.MethodGet, "/pools/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
