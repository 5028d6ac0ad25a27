package obs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestStatusRecorder(t *testing.T) {
	rec := NewStatusRecorder(httptest.NewRecorder())
	require.Equal(t, http.StatusOK, rec.Status())

	rec.WriteHeader(http.StatusNotFound)
	n, err := rec.Write([]byte("nope"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, http.StatusNotFound, rec.Status())
	require.Equal(t, int64(4), rec.BytesWritten())
}

func TestRoutePatternContextRoundTrip(t *testing.T) {
	ctx := WithRoutePattern(context.Background(), "/rows/{id}")
	require.Equal(t, "/rows/{id}", RoutePatternFromContext(ctx))
	require.Empty(t, RoutePatternFromContext(context.Background()))
	require.Empty(t, RoutePatternFromContext(nil))
}

func TestHTTPObsCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics("quote_test", nil, reg)

	handler := HTTPObs{Metrics: metrics}.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	req := httptest.NewRequest(http.MethodPost, "/rows", nil)
	req = req.WithContext(WithRoutePattern(req.Context(), "/rows"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	count := testutil.ToFloat64(metrics.ReqTotal.WithLabelValues(http.MethodPost, "/rows", "201"))
	require.Equal(t, float64(1), count)
}
