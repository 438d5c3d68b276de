package store

import (
	"github.com/Bibek1604/epsalae-storefront/api"
	"github.com/Bibek1604/epsalae-storefront/models"
)

// BannerStore caches storefront banners
type BannerStore struct {
	*Resource[models.Banner]
}

// NewBannerStore creates the banner store
func NewBannerStore(client *api.Client) *BannerStore {
	return &BannerStore{
		Resource: NewResource(client, "/banners", func(b models.Banner) string {
			return b.ID.String()
		}),
	}
}

// Active returns only the banners flagged for display
func (s *BannerStore) Active() []models.Banner {
	var active []models.Banner
	for _, banner := range s.Items() {
		if banner.IsActive {
			active = append(active, banner)
		}
	}
	return active
}
