package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLedgerOperation(t *testing.T) {
	okBefore := testutil.ToFloat64(ledgerOperations.WithLabelValues("bank", "ok"))
	errBefore := testutil.ToFloat64(ledgerOperations.WithLabelValues("bank", "error"))
	amountBefore := testutil.ToFloat64(ledgerAmount.WithLabelValues("bank"))

	RecordLedgerOperation("bank", 250, nil)
	RecordLedgerOperation("bank", 999, errors.New("rejected"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ledgerOperations.WithLabelValues("bank", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(ledgerOperations.WithLabelValues("bank", "error")))
	assert.Equal(t, amountBefore+250, testutil.ToFloat64(ledgerAmount.WithLabelValues("bank")))
}

func TestRecordPool(t *testing.T) {
	before := testutil.ToFloat64(poolsCreated.WithLabelValues("ok"))
	RecordPool(3, nil)
	assert.Equal(t, before+1, testutil.ToFloat64(poolsCreated.WithLabelValues("ok")))
}

func TestObserveRequest_UnmatchedPath(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	ObserveRequest("get", "", http.StatusNotFound, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandler(t *testing.T) {
	done := TrackInFlight()
	done()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fueleu_http_inflight_requests")
}
