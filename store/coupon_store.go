package store

import (
	"context"
	"time"

	"github.com/Bibek1604/epsalae-storefront/api"
	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"
)

// CouponStore caches server-issued coupons, keyed by their uppercase code
// rather than an id.
type CouponStore struct {
	*Resource[models.Coupon]
}

// NewCouponStore creates the coupon store
func NewCouponStore(client *api.Client) *CouponStore {
	return &CouponStore{
		Resource: NewResource(client, "/coupons", func(c models.Coupon) string {
			return c.Code
		}),
	}
}

// Create normalizes the code before posting
func (s *CouponStore) Create(ctx context.Context, payload Payload) (models.Coupon, error) {
	normalizeCode(payload)
	return s.Resource.Create(ctx, payload)
}

// Update normalizes the code before putting
func (s *CouponStore) Update(ctx context.Context, code string, payload Payload) (models.Coupon, error) {
	normalizeCode(payload)
	return s.Resource.Update(ctx, models.NormalizeCouponCode(code), payload)
}

// Validate asks the backend whether the code is redeemable and double-checks
// the validity window locally. The predicate is stateless: active and now
// within [validFrom, validTo].
func (s *CouponStore) Validate(ctx context.Context, code string) (models.Coupon, error) {
	var coupon models.Coupon
	body := map[string]string{"code": models.NormalizeCouponCode(code)}
	if err := s.client.Post(ctx, "/coupons/validate", body, &coupon); err != nil {
		return coupon, err
	}
	if !coupon.IsValid(time.Now()) {
		return coupon, utils.BadRequestError(utils.ErrCouponInvalid, nil)
	}
	return coupon, nil
}

func normalizeCode(payload Payload) {
	if payload.Fields == nil {
		return
	}
	if code, ok := payload.Fields["code"].(string); ok {
		payload.Fields["code"] = models.NormalizeCouponCode(code)
	}
}
