package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/electromart/marketplace-api/internal/core/domain"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

type stubProfileService struct {
	getFn    func(ctx context.Context, userID string) (*domain.User, error)
	updateFn func(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error)
}

func (s *stubProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.getFn(ctx, userID)
}

func (s *stubProfileService) Update(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateFn(ctx, userID, input)
}

func TestProfileHandler_Get_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProfileService{
		getFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID != "user_1" {
				t.Fatalf("unexpected user id: %q", userID)
			}
			return &domain.User{ID: userID, Name: "alice", Email: "alice@example.com"}, nil
		},
	}
	handler := NewProfileHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "alice" {
		t.Fatalf("unexpected name: %v", resp["name"])
	}
	// The storefront relies on phone rendering as "" and profileImage as
	// null when unset.
	if v, ok := resp["phone"]; !ok || v != "" {
		t.Fatalf("expected empty phone, got %v (present=%v)", v, ok)
	}
	if v, ok := resp["profileImage"]; !ok || v != nil {
		t.Fatalf("expected null profileImage, got %v (present=%v)", v, ok)
	}
}

func TestProfileHandler_Get_MissingClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewProfileHandler(&stubProfileService{})

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Get(c)
	if code := httpErrorCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestProfileHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubProfileService{
		getFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewProfileHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "gone")

	if err := handler.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfileHandler_Update_PartialFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubProfileService{
		updateFn: func(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
			if input.Name == nil || *input.Name != "Alice B" {
				t.Fatalf("name not forwarded: %+v", input.Name)
			}
			if input.Email != nil {
				t.Fatalf("absent email must stay nil")
			}
			if input.Phone != nil {
				t.Fatalf("absent phone must stay nil")
			}
			return &domain.User{ID: userID, Name: "Alice B", Email: "alice@example.com"}, nil
		},
	}
	handler := NewProfileHandler(stub)

	req := multipartRequest(t, "/api/profile", map[string]string{"name": "Alice B"})
	req.Method = http.MethodPut
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Profile updated successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Alice B" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestProfileHandler_Update_ClearsPhone(t *testing.T) {
	e := newTestEcho()
	stub := &stubProfileService{
		updateFn: func(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
			// An empty phone field present in the form means "clear it",
			// unlike name and email where "" is ignored.
			if input.Phone == nil || *input.Phone != "" {
				t.Fatalf("expected explicit empty phone, got %+v", input.Phone)
			}
			return &domain.User{ID: userID, Name: "bob", Email: "bob@example.com"}, nil
		},
	}
	handler := NewProfileHandler(stub)

	req := multipartRequest(t, "/api/profile", map[string]string{"phone": ""})
	req.Method = http.MethodPut
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
