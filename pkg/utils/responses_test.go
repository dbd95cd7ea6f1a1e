package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestResponseSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseSuccess(rec, "Packages retrieved successfully", []string{"goa"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Status)
	assert.Equal(t, "Packages retrieved successfully", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Errors)
}

func TestResponseBadRequestCarriesErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseBadRequest(rec, "validation failed", map[string]string{"email": "required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Status)
	assert.Nil(t, resp.Data)
	assert.NotNil(t, resp.Errors)
}

func TestResponseErrorHelpersStatusCodes(t *testing.T) {
	cases := []struct {
		write func(http.ResponseWriter, string)
		code  int
	}{
		{ResponseUnauthorized, http.StatusUnauthorized},
		{ResponseForbidden, http.StatusForbidden},
		{ResponseNotFound, http.StatusNotFound},
		{ResponseInternalError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		tc.write(rec, "nope")
		assert.Equal(t, tc.code, rec.Code)
		assert.False(t, decodeEnvelope(t, rec).Status)
	}
}
