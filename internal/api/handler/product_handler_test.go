package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/electromart/marketplace-api/internal/core/domain"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

type stubProductService struct {
	addFn            func(ctx context.Context, input ports.AddProductInput) (*domain.Product, error)
	listAllFn        func(ctx context.Context) ([]*domain.Product, error)
	listByCategoryFn func(ctx context.Context, category string) ([]*domain.Product, error)
	listBySellerFn   func(ctx context.Context, sellerID string) ([]*domain.Product, error)
}

func (s *stubProductService) Add(ctx context.Context, input ports.AddProductInput) (*domain.Product, error) {
	return s.addFn(ctx, input)
}

func (s *stubProductService) ListAll(ctx context.Context) ([]*domain.Product, error) {
	return s.listAllFn(ctx)
}

func (s *stubProductService) ListByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.listByCategoryFn(ctx, category)
}

func (s *stubProductService) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Product, error) {
	return s.listBySellerFn(ctx, sellerID)
}

// multipartRequest builds a multipart/form-data POST from plain field values,
// the shape every upload-capable endpoint accepts.
func multipartRequest(t *testing.T, target string, fields map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestProductHandler_Add_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		addFn: func(ctx context.Context, input ports.AddProductInput) (*domain.Product, error) {
			if input.SellerID != "user_1" {
				t.Fatalf("seller id not taken from claims: %q", input.SellerID)
			}
			if input.Price != 3.5 {
				t.Fatalf("price not parsed: %v", input.Price)
			}
			if input.ContactEmail != "seller@example.com" || input.ContactPhone != "555-0100" {
				t.Fatalf("contact details lost: %+v", input)
			}
			return &domain.Product{
				ID:       "prod_1",
				Name:     input.Name,
				Category: input.Category,
				Price:    input.Price,
				Seller:   domain.Seller{UserID: input.SellerID},
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := multipartRequest(t, "/api/products/add", map[string]string{
		"name":     "SG90 Servo",
		"category": "Servo Motor",
		"price":    "3.5",
		"email":    "seller@example.com",
		"phone":    "555-0100",
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["productId"] != "prod_1" {
		t.Fatalf("expected productId, got %v", resp["productId"])
	}
	if resp["message"] != "Product added successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestProductHandler_Add_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		addFn: func(ctx context.Context, input ports.AddProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	req := multipartRequest(t, "/api/products/add", map[string]string{"name": "SG90 Servo"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	err := handler.Add(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestProductHandler_Add_BadPrice(t *testing.T) {
	for _, price := range []string{"cheap", "-1"} {
		e := newTestEcho()
		stub := &stubProductService{
			addFn: func(ctx context.Context, input ports.AddProductInput) (*domain.Product, error) {
				t.Fatalf("should not be called")
				return nil, nil
			},
		}
		handler := NewProductHandler(stub)

		req := multipartRequest(t, "/api/products/add", map[string]string{
			"name":     "SG90 Servo",
			"category": "Servo Motor",
			"price":    price,
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", "user_1")

		err := handler.Add(c)
		if code := httpErrorCode(t, err); code != http.StatusBadRequest {
			t.Fatalf("price %q: expected 400, got %d", price, code)
		}
	}
}

func TestProductHandler_Add_MissingClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewProductHandler(&stubProductService{})

	req := multipartRequest(t, "/api/products/add", map[string]string{
		"name":     "SG90 Servo",
		"category": "Servo Motor",
		"price":    "3.5",
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Add(c)
	if code := httpErrorCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestProductHandler_Add_InvalidCategory(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		addFn: func(ctx context.Context, input ports.AddProductInput) (*domain.Product, error) {
			return nil, domain.ErrInvalidCategory
		},
	}
	handler := NewProductHandler(stub)

	req := multipartRequest(t, "/api/products/add", map[string]string{
		"name":     "Mystery Box",
		"category": "Time Machine",
		"price":    "10",
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	if err := handler.Add(c); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestProductHandler_ListAll_EmptyIsArray(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		listAllFn: func(ctx context.Context) ([]*domain.Product, error) {
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products/all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty json array, got %q", got)
	}
}

func TestProductHandler_ListByCategory(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		listByCategoryFn: func(ctx context.Context, category string) ([]*domain.Product, error) {
			if category != "Arduino" {
				t.Fatalf("unexpected category: %q", category)
			}
			return []*domain.Product{{ID: "prod_1", Name: "Uno R3", Category: category}}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products/category/Arduino", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues("Arduino")

	if err := handler.ListByCategory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var products []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(products) != 1 || products[0]["name"] != "Uno R3" {
		t.Fatalf("unexpected payload: %+v", products)
	}
}

func TestProductHandler_ListMine(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		listBySellerFn: func(ctx context.Context, sellerID string) ([]*domain.Product, error) {
			if sellerID != "user_5" {
				t.Fatalf("unexpected seller: %q", sellerID)
			}
			return []*domain.Product{{ID: "prod_9"}}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/products/my-products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_5")

	if err := handler.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
