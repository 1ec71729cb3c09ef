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

	"github.com/electromart/marketplace-api/internal/core/domain"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "user already exists"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
		{"notification not found", domain.ErrNotificationNotFound, http.StatusNotFound, "notification not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"invalid category", domain.ErrInvalidCategory, http.StatusBadRequest, domain.ErrInvalidCategory.Error()},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest, domain.ErrInvalidID.Error()},
		{"unsupported image", ports.ErrUnsupportedImage, http.StatusBadRequest, ports.ErrUnsupportedImage.Error()},
		{"image too large", ports.ErrImageTooLarge, http.StatusBadRequest, ports.ErrImageTooLarge.Error()},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["message"] != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, resp["message"])
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(fmt.Errorf("delete user: %w", domain.ErrUserNotFound), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "invalid payload" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestHTTPErrorHandler_UnknownErrorIs500(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(errors.New("mongo: connection reset"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// Internal causes never leak to the client.
	if resp["message"] != "server error" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}
