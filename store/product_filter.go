package store

import (
	"sort"
	"strings"

	"github.com/Bibek1604/epsalae-storefront/models"
)

// Sort options for the product listing
const (
	SortPopular   = "popular"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
	SortNewest    = "newest"
)

// FilterOptions is the storefront's listing filter state
type FilterOptions struct {
	Search   string
	Category string // "all" or empty skips the category pass
	MinPrice float64
	MaxPrice float64 // 0 means unbounded
	Sort     string
}

// FilterProducts runs the four listing passes over the in-memory catalog:
// search, category, price range, sort. The result is re-derived from the
// inputs on every call and the input slice is never mutated.
func FilterProducts(products []models.Product, opts FilterOptions) []models.Product {
	out := make([]models.Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(opts.Search))
	for _, p := range products {
		if search != "" {
			name := strings.ToLower(p.Name)
			desc := strings.ToLower(p.Description)
			if !strings.Contains(name, search) && !strings.Contains(desc, search) {
				continue
			}
		}
		if !p.MatchesCategory(opts.Category) {
			continue
		}
		price := p.EffectivePrice()
		if price < opts.MinPrice {
			continue
		}
		if opts.MaxPrice > 0 && price > opts.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch opts.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice() < out[j].EffectivePrice()
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice() > out[j].EffectivePrice()
		})
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	default:
		// "popular" keeps the input order
	}

	return out
}
