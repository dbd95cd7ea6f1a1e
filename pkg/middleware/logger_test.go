package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-booking/pkg/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerRecordsStatusAndSize(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	handler := middleware.Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/packages/nope?full=true", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/packages/nope", fields["path"])
	assert.Equal(t, "full=true", fields["query"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	assert.EqualValues(t, len("missing"), fields["bytes"])
}

func TestLoggerDefaultsToOK(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	handler := middleware.Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
}
