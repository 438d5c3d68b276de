package models

import (
	"time"
)

// Order status constants, in forward order
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// statusSequence is the forward path an order walks after placement
var statusSequence = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// IsTerminalStatus reports whether no further transitions are allowed
func IsTerminalStatus(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusCancelled
}

// NextStatus returns the next status in the forward sequence. Terminal
// statuses and unknown values return the input unchanged (advance is a no-op).
func NextStatus(status string) string {
	for i, s := range statusSequence {
		if s == status && i+1 < len(statusSequence) {
			return statusSequence[i+1]
		}
	}
	return status
}

// CanCancel reports whether the order may still be cancelled. Cancellation is
// a side exit from any non-terminal state.
func CanCancel(status string) bool {
	return !IsTerminalStatus(status)
}

// StatusStep maps a status to the tracking progress step (1..4).
// Cancelled orders have no progress position and map to 0.
func StatusStep(status string) int {
	for i, s := range statusSequence {
		if s == status {
			return i + 1
		}
	}
	return 0
}

// Order represents a placed order as served by the backend
type Order struct {
	ID            EntityID    `json:"id"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	District      string      `json:"district"`
	DeliveryNotes string      `json:"deliveryNotes,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem is a denormalized snapshot of the product at order time, not a
// live reference; later product edits never change past orders.
type OrderItem struct {
	ProductID EntityID `json:"productId"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
	ImageURL  string   `json:"imageUrl"`
}
