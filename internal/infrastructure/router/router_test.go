package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"pnr-parser-service/internal/interface/httpapi"
	interfacerepo "pnr-parser-service/internal/interface/repository"
	"pnr-parser-service/internal/usecase"
	"pnr-parser-service/pkg/logger"
	"pnr-parser-service/pkg/metrics"
	"pnr-parser-service/pkg/pnr"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	log := logger.NewNop()
	svc := usecase.NewPNRService(
		pnr.NewParser(nil, log),
		interfacerepo.NewNoopParseAuditRepository(),
		metrics.NewMetrics("pnr_parser", reg),
		log,
	)
	return NewRouter(httpapi.NewPNRHandler(svc, 1<<16, log), Options{Gatherer: reg})
}

func TestRouter(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Should serve health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})
	t.Run("Should parse through the full stack and expose metrics", func(t *testing.T) {
		body := `{"pnr_data": "ABC123\nSMITH/JOHN MR\n1 AA 100 Y 01JAN JFKLAX 0800 1100 MEAL"}`
		req := httptest.NewRequest(http.MethodPost, "/parse_pnr", strings.NewReader(body)).WithContext(context.Background())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"record_locator":"ABC123"`)

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `pnr_parser_parse_requests_total{outcome="ok"} 1`)
		require.Contains(t, rec.Body.String(), `pnr_parser_segments_parsed_total 1`)
	})
	t.Run("Should reject GET on parse endpoint", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/parse_pnr", nil))
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
