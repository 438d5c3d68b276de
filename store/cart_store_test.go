package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bibek1604/epsalae-storefront/config"
	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"
)

func newTestCart(t *testing.T) *CartStore {
	t.Helper()
	db, err := config.OpenStorage(filepath.Join(t.TempDir(), "storage.db"))
	require.NoError(t, err)
	return NewCartStore(db)
}

func TestCartAddMergesSameIdentity(t *testing.T) {
	cart := newTestCart(t)

	_, msg, err := cart.Add(models.CartItem{ItemID: "p1", Name: "Mouse", Price: 100, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, utils.MsgAddedToCart, msg)

	merged, _, err := cart.Add(models.CartItem{ItemID: "p1", Name: "Mouse", Price: 100, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, merged.Quantity)

	items, err := cart.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)

	total, err := cart.TotalPrice()
	require.NoError(t, err)
	assert.Equal(t, 300.0, total)
}

func TestCartVariantsDoNotMerge(t *testing.T) {
	cart := newTestCart(t)

	_, _, err := cart.Add(models.CartItem{ItemID: "p1", Name: "Kurta", Price: 2000, Color: "red", Size: "M"})
	require.NoError(t, err)
	_, _, err = cart.Add(models.CartItem{ItemID: "p1", Name: "Kurta", Price: 2000, Color: "blue", Size: "M"})
	require.NoError(t, err)
	_, _, err = cart.Add(models.CartItem{ItemID: "p1", Name: "Kurta", Price: 2000, Color: "red", Size: "L"})
	require.NoError(t, err)

	items, err := cart.Items()
	require.NoError(t, err)
	assert.Len(t, items, 3)

	// Same variant merges.
	merged, _, err := cart.Add(models.CartItem{ItemID: "p1", Name: "Kurta", Price: 2000, Color: "red", Size: "M", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, merged.Quantity)
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	cart := newTestCart(t)

	item, _, err := cart.Add(models.CartItem{ItemID: "p1", Name: "Mouse", Price: 100})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	item, _, err = cart.Add(models.CartItem{ItemID: "p2", Name: "Pad", Price: 50, Quantity: -3})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartUpdateQuantityClampsAtOne(t *testing.T) {
	cart := newTestCart(t)

	added, _, err := cart.Add(models.CartItem{ItemID: "p1", Name: "Mouse", Price: 100, Quantity: 5})
	require.NoError(t, err)

	item, err := cart.UpdateQuantity(added.Key(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	// Decrement past one keeps the line at quantity one.
	item, err = cart.UpdateQuantity(added.Key(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	items, err := cart.Items()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartQuantityCapsAtMax(t *testing.T) {
	cart := newTestCart(t)

	// A single oversized add caps immediately.
	item, _, err := cart.Add(models.CartItem{ItemID: "p1", Name: "Mouse", Price: 100, Quantity: 20})
	require.NoError(t, err)
	assert.Equal(t, utils.MaxCartQuantity, item.Quantity)

	// Merging never pushes past the cap either.
	item, _, err = cart.Add(models.CartItem{ItemID: "p1", Name: "Mouse", Price: 100, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, utils.MaxCartQuantity, item.Quantity)

	item, err = cart.UpdateQuantity(item.Key(), 99)
	require.NoError(t, err)
	assert.Equal(t, utils.MaxCartQuantity, item.Quantity)
}

func TestCartUpdateQuantityMissing(t *testing.T) {
	cart := newTestCart(t)
	_, err := cart.UpdateQuantity(models.CartKey{ItemID: "ghost"}, 2)
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
}

func TestCartRemove(t *testing.T) {
	cart := newTestCart(t)

	added, _, err := cart.Add(models.CartItem{ItemID: "p1", Name: "Mouse", Price: 100})
	require.NoError(t, err)

	msg, err := cart.Remove(added.Key())
	require.NoError(t, err)
	assert.Equal(t, utils.MsgRemovedFromCart, msg)

	items, err := cart.Items()
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = cart.Remove(added.Key())
	assert.True(t, utils.IsNotFoundError(err))
}

func TestCartClearAndTotals(t *testing.T) {
	cart := newTestCart(t)

	_, _, err := cart.Add(models.CartItem{ItemID: "p1", Name: "Mouse", Price: 100, Quantity: 2})
	require.NoError(t, err)
	_, _, err = cart.Add(models.CartItem{ItemID: "p2", Name: "Keyboard", Price: 2500, Quantity: 1})
	require.NoError(t, err)

	total, err := cart.TotalPrice()
	require.NoError(t, err)
	assert.Equal(t, 2700.0, total)

	count, err := cart.TotalItems()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, cart.Clear())
	total, err = cart.TotalPrice()
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestCartItemsKeepInsertionOrder(t *testing.T) {
	cart := newTestCart(t)

	for _, id := range []string{"p3", "p1", "p2"} {
		_, _, err := cart.Add(models.CartItem{ItemID: id, Name: id, Price: 10})
		require.NoError(t, err)
	}

	items, err := cart.Items()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "p3", items[0].ItemID)
	assert.Equal(t, "p1", items[1].ItemID)
	assert.Equal(t, "p2", items[2].ItemID)
}
