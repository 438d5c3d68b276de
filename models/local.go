package models

import (
	"time"
)

// The types below live only in the client's local storage file and never
// round-trip through the backend API.

// CartItem is one line of the locally persisted cart
type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	ItemID    string  `gorm:"index" json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
	Color     string  `json:"color,omitempty"`
	Size      string  `json:"size,omitempty"`
	Position  int     `json:"-"` // insertion order, cart stays ordered across reloads
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CartKey identifies a cart line. Items merge only when product id and both
// variant attributes match; products without variants leave color/size empty
// and so merge by id alone.
type CartKey struct {
	ItemID string
	Color  string
	Size   string
}

// Key returns the identity under which this item merges
func (i CartItem) Key() CartKey {
	return CartKey{ItemID: i.ItemID, Color: i.Color, Size: i.Size}
}

// Subtotal is price x quantity for this line
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Brand is a client-only entity with no server component
type Brand struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name,omitempty"`
	Logo      string    `json:"logo"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the persisted auth state. A single row (ID 1) mirrors the
// browser-localStorage original: token, user snapshot, logged-in flag.
type Session struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	Token      string    `json:"token"`
	UserJSON   string    `json:"-"`
	IsLoggedIn bool      `json:"isLoggedIn"`
	UpdatedAt  time.Time `json:"-"`
}
