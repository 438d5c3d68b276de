package store

import (
	"time"

	"github.com/Bibek1604/epsalae-storefront/api"
	"github.com/Bibek1604/epsalae-storefront/models"
)

// FlashSaleStore caches flash sales
type FlashSaleStore struct {
	*Resource[models.FlashSale]
}

// NewFlashSaleStore creates the flash sale store
func NewFlashSaleStore(client *api.Client) *FlashSaleStore {
	return &FlashSaleStore{
		Resource: NewResource(client, "/flash-sales", func(f models.FlashSale) string {
			return f.ID.String()
		}),
	}
}

// Live returns the sales currently inside their time window. The isActive
// flag is ignored here; it only matters for admin listings.
func (s *FlashSaleStore) Live(now time.Time) []models.FlashSale {
	var live []models.FlashSale
	for _, sale := range s.Items() {
		if sale.IsLive(now) {
			live = append(live, sale)
		}
	}
	return live
}
