package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func cartCookie(id string) *http.Cookie {
	return &http.Cookie{Name: CartCookie, Value: id}
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) CartResponse {
	t.Helper()

	var body CartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return body
}

func TestCartIssuesCookieOnFirstTouch(t *testing.T) {
	env := newTestEnv()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	issued := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == CartCookie && cookie.Value != "" {
			issued = true
		}
	}
	if !issued {
		t.Error("expected a cart cookie on first touch")
	}
}

func TestCartAddMergeAndCount(t *testing.T) {
	env := newTestEnv()

	post := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
		req.AddCookie(cartCookie("visitor"))
		env.router.ServeHTTP(rec, req)
		return rec
	}

	post(`{"product_id":1,"name":"Lighter","quantity":2}`)
	rec := post(`{"product_id":1,"name":"Lighter","quantity":3}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeCart(t, rec)
	if len(body.Items) != 1 || body.Items[0].Quantity != 5 {
		t.Errorf("expected merged line with quantity 5, got %+v", body.Items)
	}
	if body.TotalCount != 5 {
		t.Errorf("expected total 5, got %d", body.TotalCount)
	}
}

func TestCartAddRejectsMissingFields(t *testing.T) {
	env := newTestEnv()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"quantity":2}`))
	req.AddCookie(cartCookie("visitor"))
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing product, got %d", rec.Code)
	}
}

func TestCartUpdateToZeroRemovesLine(t *testing.T) {
	env := newTestEnv()
	env.carts.Get("visitor").AddItem(1, "Lighter", nil, 3)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/1", strings.NewReader(`{"quantity":0}`))
	req.AddCookie(cartCookie("visitor"))
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeCart(t, rec); len(body.Items) != 0 {
		t.Errorf("expected line removed, got %+v", body.Items)
	}
}

func TestCartUpdateUnknownIDIsNoOp(t *testing.T) {
	env := newTestEnv()
	env.carts.Get("visitor").AddItem(1, "Lighter", nil, 3)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/99", strings.NewReader(`{"quantity":7}`))
	req.AddCookie(cartCookie("visitor"))
	env.router.ServeHTTP(rec, req)

	body := decodeCart(t, rec)
	if len(body.Items) != 1 || body.Items[0].Quantity != 3 {
		t.Errorf("cart changed on unknown id: %+v", body.Items)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	env := newTestEnv()
	env.carts.Get("visitor").AddItem(1, "Lighter", nil, 1)
	env.carts.Get("visitor").AddItem(2, "Incense", nil, 1)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/1", nil)
	req.AddCookie(cartCookie("visitor"))
	env.router.ServeHTTP(rec, req)

	if body := decodeCart(t, rec); len(body.Items) != 1 {
		t.Errorf("expected 1 line after removal, got %+v", body.Items)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil)
	req.AddCookie(cartCookie("visitor"))
	env.router.ServeHTTP(rec, req)

	if body := decodeCart(t, rec); len(body.Items) != 0 || body.TotalCount != 0 {
		t.Errorf("expected empty cart, got %+v", body)
	}
}
