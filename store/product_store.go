package store

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Bibek1604/epsalae-storefront/api"
	"github.com/Bibek1604/epsalae-storefront/models"
)

// ProductQuery holds the listing parameters the backend understands
type ProductQuery struct {
	Page       int
	Limit      int
	Search     string
	CategoryID string
	Sort       string
}

// ProductStore caches the product catalog
type ProductStore struct {
	*Resource[models.Product]
}

// NewProductStore creates the product store
func NewProductStore(client *api.Client) *ProductStore {
	return &ProductStore{
		Resource: NewResource(client, "/products", func(p models.Product) string {
			return p.ID.String()
		}),
	}
}

// Fetch loads the catalog with the backend's listing parameters
func (s *ProductStore) Fetch(ctx context.Context, q ProductQuery) error {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.CategoryID != "" {
		values.Set("category_id", q.CategoryID)
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	return s.FetchAll(ctx, values)
}

// FetchByCategory loads the products of one category
func (s *ProductStore) FetchByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	var products []models.Product
	err := s.client.Get(ctx, "/products/category/"+url.PathEscape(categoryID), nil, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// FetchOffers loads the products currently carrying an offer
func (s *ProductStore) FetchOffers(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.client.Get(ctx, "/products/offers", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

