package store

import (
	"context"

	"github.com/Bibek1604/epsalae-storefront/api"
	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"
)

// CategoryStore caches the category list. The slug is a client-side
// derivation of the name, injected into every create and update payload.
type CategoryStore struct {
	*Resource[models.Category]
}

// NewCategoryStore creates the category store
func NewCategoryStore(client *api.Client) *CategoryStore {
	return &CategoryStore{
		Resource: NewResource(client, "/categories", func(c models.Category) string {
			return c.ID.String()
		}),
	}
}

// Create derives the slug from the name before posting
func (s *CategoryStore) Create(ctx context.Context, payload Payload) (models.Category, error) {
	withSlug(payload)
	return s.Resource.Create(ctx, payload)
}

// Update derives the slug from the name before putting
func (s *CategoryStore) Update(ctx context.Context, id string, payload Payload) (models.Category, error) {
	withSlug(payload)
	return s.Resource.Update(ctx, id, payload)
}

func withSlug(payload Payload) {
	if payload.Fields == nil {
		return
	}
	if name, ok := payload.Fields["name"].(string); ok && name != "" {
		payload.Fields["slug"] = utils.Slugify(name)
	}
}
