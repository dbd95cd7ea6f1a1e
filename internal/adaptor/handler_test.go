package adaptor

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", errors.New("package 123 not found"), http.StatusNotFound},
		{"validation", errors.New("validation failed: Title: This field is required"), http.StatusBadRequest},
		{"invalid id", errors.New("invalid package ID format: xyz"), http.StatusBadRequest},
		{"missing field", errors.New("package IDs are required for comparison"), http.StatusBadRequest},
		{"duplicate", errors.New("email a@b.c already registered"), http.StatusBadRequest},
		{"bad credentials", errors.New("invalid credentials"), http.StatusUnauthorized},
		{"blocked", errors.New("account is blocked"), http.StatusForbidden},
		{"unknown", errors.New("mongo: connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, tc.err)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
