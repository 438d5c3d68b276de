package store

import (
	"sync"

	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"gorm.io/gorm"
)

// CartStore is the locally persisted cart. It never talks to the backend:
// every mutation writes through to the storage file synchronously, and the
// list survives restarts the way the browser cart survived reloads.
type CartStore struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewCartStore creates a cart store over the given local storage handle
func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// clampQuantity bounds a cart line quantity to [1, MaxCartQuantity]
func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	if q > utils.MaxCartQuantity {
		return utils.MaxCartQuantity
	}
	return q
}

// Add puts an item in the cart. An item with the same identity (product id
// plus variant color/size) merges by incrementing quantity; otherwise the
// item is appended with quantity defaulting to 1. Returns the merged line and
// the user-visible confirmation.
func (s *CartStore) Add(item models.CartItem) (models.CartItem, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.Quantity = clampQuantity(item.Quantity)

	var existing models.CartItem
	err := s.byKey(item.Key()).First(&existing).Error
	switch {
	case err == nil:
		existing.Quantity = clampQuantity(existing.Quantity + item.Quantity)
		if err := s.db.Save(&existing).Error; err != nil {
			return existing, "", utils.WrapError(err, "failed to persist cart")
		}
		return existing, utils.MsgAddedToCart, nil
	case err == gorm.ErrRecordNotFound:
		var maxPos int
		s.db.Model(&models.CartItem{}).Select("COALESCE(MAX(position), 0)").Scan(&maxPos)
		item.Position = maxPos + 1
		if err := s.db.Create(&item).Error; err != nil {
			return item, "", utils.WrapError(err, "failed to persist cart")
		}
		return item, utils.MsgAddedToCart, nil
	default:
		return item, "", utils.WrapError(err, "failed to read cart")
	}
}

// Remove drops the matching entry and returns the user-visible notice
func (s *CartStore) Remove(key models.CartKey) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.byKey(key).Delete(&models.CartItem{})
	if res.Error != nil {
		return "", utils.WrapError(res.Error, "failed to persist cart")
	}
	if res.RowsAffected == 0 {
		return "", utils.NotFoundError("Item not in cart", nil)
	}
	return utils.MsgRemovedFromCart, nil
}

// UpdateQuantity sets an item's quantity, floored at 1 and capped at
// MaxCartQuantity. Decrementing past 1 keeps the line in the cart; removal is
// always an explicit action.
func (s *CartStore) UpdateQuantity(key models.CartKey, quantity int) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quantity = clampQuantity(quantity)

	var item models.CartItem
	if err := s.byKey(key).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return item, utils.NotFoundError("Item not in cart", nil)
		}
		return item, utils.WrapError(err, "failed to read cart")
	}

	item.Quantity = quantity
	if err := s.db.Save(&item).Error; err != nil {
		return item, utils.WrapError(err, "failed to persist cart")
	}
	return item, nil
}

// Clear empties the cart, used after a successful order placement
func (s *CartStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Where("1 = 1").Delete(&models.CartItem{}).Error; err != nil {
		return utils.WrapError(err, "failed to persist cart")
	}
	return nil
}

// Items returns the cart lines in insertion order
func (s *CartStore) Items() ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.CartItem
	if err := s.db.Order("position asc").Find(&items).Error; err != nil {
		return nil, utils.WrapError(err, "failed to read cart")
	}
	return items, nil
}

// TotalPrice is the sum of price x quantity over all lines, recomputed fresh
// from storage on every call.
func (s *CartStore) TotalPrice() (float64, error) {
	items, err := s.Items()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return utils.RoundMoney(total), nil
}

// TotalItems is the sum of quantities over all lines
func (s *CartStore) TotalItems() (int, error) {
	items, err := s.Items()
	if err != nil {
		return 0, err
	}
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

func (s *CartStore) byKey(key models.CartKey) *gorm.DB {
	return s.db.Where("item_id = ? AND color = ? AND size = ?", key.ItemID, key.Color, key.Size)
}
