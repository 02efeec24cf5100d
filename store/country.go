package store

import (
	"errors"
	"fmt"

	"countrydb/models"

	"gorm.io/gorm"
)

// InsertCountry stages one row and commits it as a single transaction.
// It returns the id assigned by the store.
func InsertCountry(db *gorm.DB, name, continent string, population int64) (uint, error) {
	if name == "" {
		return 0, errors.New("country name must not be empty")
	}

	country := models.Country{
		Name:       name,
		Continent:  continent,
		Population: population,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&country).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return country.ID, nil
}

// CountryByName returns the row with the given name.
func CountryByName(db *gorm.DB, name string) (*models.Country, error) {
	var country models.Country
	err := db.Where(&models.Country{Name: name}).First(&country).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &country, nil
}

// CountCountries returns the number of persisted rows.
func CountCountries(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&models.Country{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return count, nil
}
