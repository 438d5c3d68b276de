package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bibek1604/epsalae-storefront/models"
)

func loginAdmin(t *testing.T, h *checkoutHarness) {
	t.Helper()
	w, _ := h.do(http.MethodPost, "/login", map[string]string{
		"email": "admin@epsalae.com", "password": "correct-password"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func seedOrder(h *checkoutHarness, status string) models.Order {
	order := models.Order{
		ID:     models.EntityIDFromInt(len(h.backend.placed) + 1),
		Status: status,
		Phone:  "9860056658",
	}
	h.backend.placed = append(h.backend.placed, order)
	return order
}

func TestAdminOrderLifecycle(t *testing.T) {
	h := newCheckoutHarness(t)
	loginAdmin(t, h)
	order := seedOrder(h, models.OrderStatusPending)

	w, resp := h.do(http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, resp["data"].([]interface{}), 1)

	id := order.ID.String()
	for _, want := range []string{"processing", "shipped", "delivered"} {
		w, resp = h.do(http.MethodPut, "/admin/orders/"+id+"/advance", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, want, resp["data"].(map[string]interface{})["status"])
	}

	// Advancing past delivered stays put.
	w, resp = h.do(http.MethodPut, "/admin/orders/"+id+"/advance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "delivered", resp["data"].(map[string]interface{})["status"])

	// Delivered orders cannot be cancelled.
	w, _ = h.do(http.MethodPut, "/admin/orders/"+id+"/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminOrderCancel(t *testing.T) {
	h := newCheckoutHarness(t)
	loginAdmin(t, h)
	order := seedOrder(h, models.OrderStatusShipped)

	w, resp := h.do(http.MethodPut, "/admin/orders/"+order.ID.String()+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "cancelled", resp["data"].(map[string]interface{})["status"])

	w, _ = h.do(http.MethodPut, "/admin/orders/"+order.ID.String()+"/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminGetOrder(t *testing.T) {
	h := newCheckoutHarness(t)
	loginAdmin(t, h)
	order := seedOrder(h, models.OrderStatusShipped)

	w, resp := h.do(http.MethodGet, "/admin/orders/"+order.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 3.0, data["step"])

	w, _ = h.do(http.MethodGet, "/admin/orders/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminOrderUnknownID(t *testing.T) {
	h := newCheckoutHarness(t)
	loginAdmin(t, h)

	w, _ := h.do(http.MethodPut, "/admin/orders/999/advance", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
