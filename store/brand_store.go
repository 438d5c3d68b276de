package store

import (
	"sync"
	"time"

	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BrandStore is a local-only repository. Brands have no server component:
// the list lives entirely in the client storage file and every operation is
// an immediate local write.
type BrandStore struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewBrandStore creates the brand store
func NewBrandStore(db *gorm.DB) *BrandStore {
	return &BrandStore{db: db}
}

// Items returns all brands, oldest first
func (s *BrandStore) Items() ([]models.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var brands []models.Brand
	if err := s.db.Order("created_at asc").Find(&brands).Error; err != nil {
		return nil, utils.WrapError(err, "failed to read brands")
	}
	return brands, nil
}

// Create stores a brand under a generated id
func (s *BrandStore) Create(name, logo string) (models.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	brand := models.Brand{
		ID:        uuid.New().String(),
		Name:      name,
		Logo:      logo,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&brand).Error; err != nil {
		return brand, utils.WrapError(err, "failed to persist brand")
	}
	return brand, nil
}

// Update replaces a brand's mutable fields
func (s *BrandStore) Update(id, name, logo string) (models.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return brand, utils.NotFoundError("Brand not found", nil)
		}
		return brand, utils.WrapError(err, "failed to read brands")
	}

	brand.Name = name
	brand.Logo = logo
	if err := s.db.Save(&brand).Error; err != nil {
		return brand, utils.WrapError(err, "failed to persist brand")
	}
	return brand, nil
}

// Delete removes a brand
func (s *BrandStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.db.Delete(&models.Brand{}, "id = ?", id)
	if res.Error != nil {
		return utils.WrapError(res.Error, "failed to persist brand")
	}
	if res.RowsAffected == 0 {
		return utils.NotFoundError("Brand not found", nil)
	}
	return nil
}
