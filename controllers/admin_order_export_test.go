package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bibek1604/epsalae-storefront/models"
)

func TestSummarizeOrders(t *testing.T) {
	orders := []models.Order{
		{TotalAmount: 2850, Status: models.OrderStatusDelivered,
			Items: []models.OrderItem{{Quantity: 2}, {Quantity: 1}}},
		{TotalAmount: 1200, Status: models.OrderStatusCancelled,
			Items: []models.OrderItem{{Quantity: 1}}},
		{TotalAmount: 6000, Status: models.OrderStatusShipped,
			Items: []models.OrderItem{{Quantity: 4}}},
	}

	s := summarizeOrders(orders)
	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, 10050.0, s.TotalRevenue)
	assert.Equal(t, 8, s.TotalItems)
	assert.Equal(t, 1, s.Delivered)
	assert.Equal(t, 1, s.Cancelled)
	assert.Equal(t, 3350.0, s.AverageOrderVal)
}

func TestSummarizeOrdersEmpty(t *testing.T) {
	s := summarizeOrders(nil)
	assert.Equal(t, 0, s.TotalOrders)
	assert.Equal(t, 0.0, s.AverageOrderVal)
}
