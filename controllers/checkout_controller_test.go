package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bibek1604/epsalae-storefront/config"
	"github.com/Bibek1604/epsalae-storefront/controllers"
	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/routes"
)

// checkoutBackend fakes the upstream API for the controller tests
type checkoutBackend struct {
	placed     []models.Order
	products   []models.Product
	flashSales []models.FlashSale
	banners    []models.Banner
}

func (b *checkoutBackend) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/products/":
		json.NewEncoder(w).Encode(map[string]interface{}{"data": b.products})

	case r.Method == http.MethodGet && r.URL.Path == "/flash-sales/":
		json.NewEncoder(w).Encode(map[string]interface{}{"data": b.flashSales})

	case r.Method == http.MethodGet && r.URL.Path == "/banners/":
		json.NewEncoder(w).Encode(map[string]interface{}{"data": b.banners})

	case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] != "correct-password" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]interface{}{
			"token": "opaque-admin-token",
			"user":  models.User{ID: "u1", Name: "Admin", Email: creds["email"], Role: "admin"},
		}})

	case r.Method == http.MethodPost && r.URL.Path == "/orders/":
		var o models.Order
		json.NewDecoder(r.Body).Decode(&o)
		o.ID = models.EntityIDFromInt(len(b.placed) + 1)
		o.Status = models.OrderStatusPending
		b.placed = append(b.placed, o)
		json.NewEncoder(w).Encode(map[string]interface{}{"data": o})

	case r.Method == http.MethodPost && r.URL.Path == "/coupons/validate":
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["code"] != "DASHAIN500" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Coupon not found"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"data": models.Coupon{
			Code:           "DASHAIN500",
			DiscountAmount: 500,
			ValidFrom:      time.Now().Add(-time.Hour),
			ValidTo:        time.Now().Add(time.Hour),
			IsActive:       true,
		}})

	case r.Method == http.MethodGet && r.URL.Path == "/orders/":
		json.NewEncoder(w).Encode(map[string]interface{}{"data": b.placed})

	case r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/status"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/orders/"), "/status")
		var body struct {
			Status string `json:"status"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		for i := range b.placed {
			if b.placed[i].ID.String() == id {
				b.placed[i].Status = body.Status
				json.NewEncoder(w).Encode(map[string]interface{}{"data": b.placed[i]})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Order not found"}`))

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/orders/track/"):
		id := strings.TrimPrefix(r.URL.Path, "/orders/track/")
		for _, o := range b.placed {
			if o.ID.String() == id {
				json.NewEncoder(w).Encode(map[string]interface{}{"data": o})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Order not found"}`))

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/orders/"):
		id := strings.TrimPrefix(r.URL.Path, "/orders/")
		for _, o := range b.placed {
			if o.ID.String() == id {
				json.NewEncoder(w).Encode(map[string]interface{}{"data": o})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Order not found"}`))

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// checkoutHarness drives the router while carrying the session cookie the way
// a browser would across checkout steps.
type checkoutHarness struct {
	t       *testing.T
	router  *gin.Engine
	app     *controllers.App
	backend *checkoutBackend
	cookies []string
}

func newCheckoutHarness(t *testing.T) *checkoutHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := &checkoutBackend{}
	upstream := httptest.NewServer(http.HandlerFunc(backend.handle))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		APIBaseURL:    upstream.URL,
		AppName:       "Epsalae",
		Port:          "8080",
		SessionSecret: "test-secret",
		Env:           "test",
	}
	config.App = cfg

	db, err := config.OpenStorage(filepath.Join(t.TempDir(), "storage.db"))
	require.NoError(t, err)

	app := controllers.NewApp(cfg, db)
	return &checkoutHarness{
		t:       t,
		router:  routes.SetupRouter(app),
		app:     app,
		backend: backend,
	}
}

func (h *checkoutHarness) do(method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	h.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range h.cookies {
		req.Header.Add("Cookie", cookie)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		h.cookies = h.cookies[:0]
		for _, c := range set {
			h.cookies = append(h.cookies, c.Name+"="+c.Value)
		}
	}

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func (h *checkoutHarness) seedCart(items ...models.CartItem) {
	h.t.Helper()
	for _, item := range items {
		_, _, err := h.app.Cart.Add(item)
		require.NoError(h.t, err)
	}
}

var shippingForm = map[string]string{
	"firstName": "Sita",
	"lastName":  "Shrestha",
	"phone":     "+977-9860056658",
	"address":   "Baneshwor",
	"city":      "Kathmandu",
	"district":  "Kathmandu",
}

func TestCheckoutFlowWithPromoAndCOD(t *testing.T) {
	h := newCheckoutHarness(t)
	h.seedCart(models.CartItem{ItemID: "p1", Name: "Keyboard", Price: 1500, Quantity: 2})

	w, _ := h.do(http.MethodPost, "/checkout/shipping", shippingForm)
	require.Equal(t, http.StatusOK, w.Code)

	// Subtotal 3000, SAVE10 takes 300 off.
	w, resp := h.do(http.MethodPost, "/checkout/coupon", map[string]string{"code": "save10"})
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "SAVE10", data["code"])
	assert.Equal(t, 300.0, data["discount"])

	// 3000 + 100 shipping - 300 discount + 50 COD handling.
	w, resp = h.do(http.MethodPost, "/checkout/place", map[string]string{"paymentMethod": "cod"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, 2850.0, data["totalAmount"])
	assert.Equal(t, "pending", data["status"])
	assert.NotContains(t, data, "paymentRedirect")

	require.Len(t, h.backend.placed, 1)
	placed := h.backend.placed[0]
	assert.Equal(t, 2850.0, placed.TotalAmount)
	assert.Equal(t, "cod", placed.PaymentMethod)
	assert.Equal(t, "Sita", placed.FirstName)
	require.Len(t, placed.Items, 1)
	assert.Equal(t, 2, placed.Items[0].Quantity)

	// Placement clears the cart.
	items, err := h.app.Cart.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCheckoutFreeShippingAndGatewayRedirect(t *testing.T) {
	h := newCheckoutHarness(t)
	h.seedCart(models.CartItem{ItemID: "p1", Name: "Sofa", Price: 6000, Quantity: 1})

	w, _ := h.do(http.MethodPost, "/checkout/shipping", shippingForm)
	require.Equal(t, http.StatusOK, w.Code)

	// Subtotal 6000 clears the free-shipping threshold; no COD fee for esewa.
	w, resp := h.do(http.MethodPost, "/checkout/place", map[string]string{"paymentMethod": "esewa"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 6000.0, data["totalAmount"])
	assert.Contains(t, data["paymentRedirect"], "/payment/gateway?order=")
}

func TestCheckoutServerCouponFlatDiscount(t *testing.T) {
	h := newCheckoutHarness(t)
	h.seedCart(models.CartItem{ItemID: "p1", Name: "Jacket", Price: 3000, Quantity: 1})

	w, _ := h.do(http.MethodPost, "/checkout/shipping", shippingForm)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := h.do(http.MethodPost, "/checkout/coupon", map[string]string{"code": "dashain500"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 500.0, data["discount"])

	// 3000 + 100 shipping - 500 flat.
	w, resp = h.do(http.MethodPost, "/checkout/place", map[string]string{"paymentMethod": "khalti"})
	require.Equal(t, http.StatusCreated, w.Code)
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, 2600.0, data["totalAmount"])
}

func TestCheckoutRejectsUnknownCoupon(t *testing.T) {
	h := newCheckoutHarness(t)
	h.seedCart(models.CartItem{ItemID: "p1", Name: "Jacket", Price: 3000, Quantity: 1})

	w, _ := h.do(http.MethodPost, "/checkout/coupon", map[string]string{"code": "BOGUS99"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutPlaceRequiresShippingStep(t *testing.T) {
	h := newCheckoutHarness(t)
	h.seedCart(models.CartItem{ItemID: "p1", Name: "Jacket", Price: 3000, Quantity: 1})

	w, _ := h.do(http.MethodPost, "/checkout/place", map[string]string{"paymentMethod": "cod"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutPlaceRequiresNonEmptyCart(t *testing.T) {
	h := newCheckoutHarness(t)

	w, _ := h.do(http.MethodPost, "/checkout/shipping", shippingForm)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(http.MethodPost, "/checkout/place", map[string]string{"paymentMethod": "cod"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	h := newCheckoutHarness(t)
	h.seedCart(models.CartItem{ItemID: "p1", Name: "Jacket", Price: 3000, Quantity: 1})

	h.do(http.MethodPost, "/checkout/shipping", shippingForm)
	w, _ := h.do(http.MethodPost, "/checkout/place", map[string]string{"paymentMethod": "paypal"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackOrderPhoneCrossCheck(t *testing.T) {
	h := newCheckoutHarness(t)
	h.seedCart(models.CartItem{ItemID: "p1", Name: "Keyboard", Price: 1500, Quantity: 1})

	h.do(http.MethodPost, "/checkout/shipping", shippingForm)
	w, resp := h.do(http.MethodPost, "/checkout/place", map[string]string{"paymentMethod": "cod"})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := resp["data"].(map[string]interface{})["orderId"].(string)

	// The bare local number matches the +977-prefixed one on the order.
	w, resp = h.do(http.MethodGet, "/track/"+orderID+"?phone=9860056658", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 1.0, data["step"])

	// A wrong phone renders the same not-found state as an unknown order.
	w, _ = h.do(http.MethodGet, "/track/"+orderID+"?phone=9811111111", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = h.do(http.MethodGet, "/track/999?phone=9860056658", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Phone is required.
	w, _ = h.do(http.MethodGet, "/track/"+orderID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
