package store

import (
	"context"
	"net/url"

	"github.com/Bibek1604/epsalae-storefront/api"
	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"
)

// OrderStore caches the order list and owns the status transitions
type OrderStore struct {
	*Resource[models.Order]
}

// NewOrderStore creates the order store
func NewOrderStore(client *api.Client) *OrderStore {
	return &OrderStore{
		Resource: NewResource(client, "/orders", func(o models.Order) string {
			return o.ID.String()
		}),
	}
}

// Place submits a new order built at checkout and returns the server's copy
func (s *OrderStore) Place(ctx context.Context, order models.Order) (models.Order, error) {
	var created models.Order
	if err := s.client.Post(ctx, "/orders/", order, &created); err != nil {
		return created, err
	}

	s.mu.Lock()
	s.items = append(s.items, created)
	s.err = nil
	s.mu.Unlock()
	return created, nil
}

// UpdateStatus sets an order's status on the backend and reconciles the cache
func (s *OrderStore) UpdateStatus(ctx context.Context, id, status string) (models.Order, error) {
	var updated models.Order
	body := map[string]string{"status": status}
	if err := s.client.Put(ctx, "/orders/"+url.PathEscape(id)+"/status", body, &updated); err != nil {
		return updated, err
	}
	if updated.ID == "" {
		// Some backends echo nothing useful on status updates; patch locally.
		if cached, ok := s.Find(id); ok {
			cached.Status = status
			updated = cached
		}
	}

	s.mu.Lock()
	for i, o := range s.items {
		if o.ID.String() == id {
			s.items[i] = updated
			break
		}
	}
	s.err = nil
	s.mu.Unlock()
	return updated, nil
}

// Advance moves the order to the next status in the forward sequence.
// A terminal order is returned unchanged without touching the backend.
func (s *OrderStore) Advance(ctx context.Context, id string) (models.Order, error) {
	order, ok := s.Find(id)
	if !ok {
		return models.Order{}, utils.NotFoundError(utils.ErrOrderNotFound, nil)
	}
	next := models.NextStatus(order.Status)
	if next == order.Status {
		return order, nil
	}
	return s.UpdateStatus(ctx, id, next)
}

// Cancel force-sets the order to cancelled unless it is already terminal
func (s *OrderStore) Cancel(ctx context.Context, id string) (models.Order, error) {
	order, ok := s.Find(id)
	if !ok {
		return models.Order{}, utils.NotFoundError(utils.ErrOrderNotFound, nil)
	}
	if !models.CanCancel(order.Status) {
		return order, utils.BadRequestError("Cannot cancel a delivered or already cancelled order", nil)
	}
	return s.UpdateStatus(ctx, id, models.OrderStatusCancelled)
}

// Track fetches one order through the public tracking endpoint (no auth).
// The phone cross-check happens in the caller, after the fetch.
func (s *OrderStore) Track(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	if err := s.client.Get(ctx, "/orders/track/"+url.PathEscape(orderID), nil, &order); err != nil {
		return order, err
	}
	return order, nil
}
