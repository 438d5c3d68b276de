package config

import (
	"fmt"

	"github.com/Bibek1604/epsalae-storefront/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage is the embedded local-state database. It plays the role browser
// localStorage plays in the original client: cart lines, the auth session and
// the brand list live here; everything else is refetched from the backend.
var Storage *gorm.DB

// InitStorage opens the local storage file and migrates the client-only models
func InitStorage() error {
	if App == nil {
		if _, err := LoadConfig(); err != nil {
			return err
		}
	}

	db, err := gorm.Open(sqlite.Open(App.StoragePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open local storage: %v", err)
	}

	if err := db.AutoMigrate(
		&models.CartItem{},
		&models.Brand{},
		&models.Session{},
	); err != nil {
		return fmt.Errorf("failed to migrate local storage: %v", err)
	}

	Storage = db
	return nil
}

// OpenStorage opens an isolated storage handle, used by tests to avoid
// sharing the package-level instance.
func OpenStorage(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.CartItem{}, &models.Brand{}, &models.Session{}); err != nil {
		return nil, err
	}
	return db, nil
}
