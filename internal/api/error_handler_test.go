package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nexline/accounts-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrUserExists, http.StatusConflict, domain.ErrUserExists.Error()},
		{domain.ErrResourceNotFound, http.StatusNotFound, domain.ErrResourceNotFound.Error()},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()},
		{domain.ErrInvalidToken, http.StatusUnauthorized, domain.ErrInvalidToken.Error()},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, domain.ErrUnauthenticated.Error()},
		{domain.ErrForbidden, http.StatusForbidden, domain.ErrForbidden.Error()},
		{domain.ErrUnexpectedState, http.StatusInternalServerError, domain.ErrUnexpectedState.Error()},
		{fmt.Errorf("lookup: %w", domain.ErrUserExists), http.StatusConflict, domain.ErrUserExists.Error()},
		{errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var resp errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%v: invalid json: %v", tc.err, err)
		}
		if resp.Error != tc.msg {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.msg, resp.Error)
		}
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts"), c)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}
