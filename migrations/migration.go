package migrations

import (
	"fmt"

	"countrydb/models"
	"countrydb/store"

	"gorm.io/gorm"
)

// Migrate ensures the countries table exists. Existing rows are never
// dropped or rewritten, so calling it again is a no-op.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Country{}); err != nil {
		return fmt.Errorf("%w: %v", store.ErrStoreUnavailable, err)
	}
	return nil
}
