package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// EntityID is the canonical identifier for server-backed entities. The
// backend is loose about identity: some endpoints return string ids, some
// numeric, and Mongo-era records use "_id" (rewritten to "id" at the API
// boundary). Domain code only ever sees this one field.
type EntityID string

// UnmarshalJSON accepts string and numeric id representations
func (id *EntityID) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = EntityID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = EntityID(n.String())
	return nil
}

// MarshalJSON emits the id as a string
func (id EntityID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id EntityID) String() string { return string(id) }

// EntityIDFromInt builds an EntityID from a numeric key
func EntityIDFromInt(n int) EntityID {
	return EntityID(strconv.Itoa(n))
}

// Product represents a catalog product as served by the backend
type Product struct {
	ID            EntityID        `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         float64         `json:"price"`
	DiscountPrice float64         `json:"discountPrice"`
	Stock         int             `json:"stock"`
	CategoryID    EntityID        `json:"category_id"`
	Category      json.RawMessage `json:"category,omitempty"`
	ImageURL      string          `json:"imageUrl"`
	IsActive      bool            `json:"isActive"`
	HasOffer      bool            `json:"hasOffer"`
	CreatedAt     time.Time       `json:"created_at"`
}

// EffectivePrice is the price shown and charged: a positive discount price
// wins over the base price; a discountPrice of 0 means no discount.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// CategoryName resolves the product's category reference to a comparable
// value. The backend returns the category as an id string, a numeric id, an
// embedded object, or a bare name depending on the endpoint.
func (p Product) CategoryName() string {
	if len(p.Category) == 0 {
		return p.CategoryID.String()
	}
	var s string
	if err := json.Unmarshal(p.Category, &s); err == nil {
		return s
	}
	var obj struct {
		ID   EntityID `json:"id"`
		Name string   `json:"name"`
	}
	if err := json.Unmarshal(p.Category, &obj); err == nil {
		if obj.Name != "" {
			return obj.Name
		}
		return obj.ID.String()
	}
	var n json.Number
	if err := json.Unmarshal(p.Category, &n); err == nil {
		return n.String()
	}
	return p.CategoryID.String()
}

// MatchesCategory reports whether the product belongs to the selected
// category filter, comparing against both the id and the resolved name.
func (p Product) MatchesCategory(filter string) bool {
	if filter == "" || filter == "all" {
		return true
	}
	return p.CategoryID.String() == filter || p.CategoryName() == filter
}

// Category represents a product category
type Category struct {
	ID          EntityID `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	IsActive    bool     `json:"isActive"`
}

// FlashSale represents a time-boxed discounted offer on one product
type FlashSale struct {
	ID           EntityID  `json:"id"`
	ProductID    EntityID  `json:"productId"`
	FlashPrice   float64   `json:"flashPrice"`
	CurrentStock int       `json:"currentStock"`
	MaxStock     int       `json:"maxStock"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	IsActive     bool      `json:"isActive"`
}

// IsLive reports whether the sale is inside its time window right now.
// Display logic keys off the window alone; isActive only gates admin lists.
func (f FlashSale) IsLive(now time.Time) bool {
	return !now.Before(f.StartTime) && !now.After(f.EndTime)
}

// Banner represents a storefront display banner
type Banner struct {
	ID       EntityID `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	ImageURL string   `json:"imageUrl"`
	IsActive bool     `json:"isActive"`
}

// User holds the profile echoed by the backend at login. The client never
// interprets it beyond display; it is stored verbatim alongside the token.
type User struct {
	ID    EntityID `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  string   `json:"role"`
}
