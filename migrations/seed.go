package migrations

import (
	"errors"
	"log"

	"countrydb/models"
	"countrydb/store"

	"gorm.io/gorm"
)

// Seed inserts the initial country rows. Rows that already exist are
// skipped, so re-running the entry point leaves the table unchanged.
func Seed(db *gorm.DB) error {
	seeds := []models.Country{
		{Name: "India", Continent: "Asia", Population: 1438054073},
		{Name: "Nepal", Continent: "Asia", Population: 31143833},
	}

	for _, seed := range seeds {
		id, err := store.InsertCountry(db, seed.Name, seed.Continent, seed.Population)
		if errors.Is(err, store.ErrDuplicateName) {
			// already seeded
			continue
		}
		if err != nil {
			return err
		}
		log.Printf("Added %s successfully (id=%d)", seed.Name, id)
	}

	return nil
}
